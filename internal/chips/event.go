package chips

import "github.com/ruminaider/chip-select/internal/directory"

// Event is an input delivered to the Reducer. The set of events is closed.
type Event interface {
	// Kind names the event for logs and scripts.
	Kind() string
	event()
}

// Key names follow bubbletea's KeyMsg.String spelling.
const KeyBackspace = "backspace"

// TextChanged carries the new text field value.
type TextChanged struct{ Value string }

// Focused is sent when the text field gains focus.
type Focused struct{}

// Blurred is sent when the text field loses focus.
type Blurred struct{}

// KeyDown is sent for every key press in the text field, before the key
// edits the text.
type KeyDown struct{ Key string }

// SuggestionClicked is sent when a suggestion is chosen.
type SuggestionClicked struct{ Entry directory.Entry }

// ChipClicked is sent when a chip's remove control is activated.
type ChipClicked struct{ Name string }

// HoverEntered is sent when the pointer moves onto the suggestion panel.
type HoverEntered struct{}

// HoverLeft is sent when the pointer leaves the suggestion panel.
type HoverLeft struct{}

func (TextChanged) Kind() string       { return "text" }
func (Focused) Kind() string           { return "focus" }
func (Blurred) Kind() string           { return "blur" }
func (KeyDown) Kind() string           { return "key" }
func (SuggestionClicked) Kind() string { return "suggestion" }
func (ChipClicked) Kind() string       { return "chip" }
func (HoverEntered) Kind() string      { return "hover-enter" }
func (HoverLeft) Kind() string         { return "hover-leave" }

func (TextChanged) event()       {}
func (Focused) event()           {}
func (Blurred) event()           {}
func (KeyDown) event()           {}
func (SuggestionClicked) event() {}
func (ChipClicked) event()       {}
func (HoverEntered) event()      {}
func (HoverLeft) event()         {}
