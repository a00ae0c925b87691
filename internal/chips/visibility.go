package chips

import "strings"

// Visibility decides whether the suggestion panel is open.
//
// Hosts must deliver the pointer's hover-enter before the blur caused by a
// click on the panel; otherwise the blur closes the panel before the click
// lands.
type Visibility struct {
	Focus       bool // text field has focus, or a blur is being held off
	Hover       bool // pointer is over the suggestion panel
	BlurPending bool // a blur arrived while hovering and is not yet applied
}

// Visible reports whether the panel is shown for the given query.
func (v Visibility) Visible(query string) bool {
	return v.Focus || strings.TrimSpace(query) != ""
}

// Focused handles the text field gaining focus.
func (v Visibility) Focused() Visibility {
	v.Focus = true
	v.BlurPending = false
	return v
}

// Blurred handles the text field losing focus. While the pointer is over the
// panel the blur is held until hover ends.
func (v Visibility) Blurred() Visibility {
	if v.Hover {
		v.BlurPending = v.Focus
		return v
	}
	v.Focus = false
	v.BlurPending = false
	return v
}

// HoverEntered marks the pointer as over the panel.
func (v Visibility) HoverEntered() Visibility {
	v.Hover = true
	return v
}

// HoverLeft marks the pointer as off the panel and applies any held blur.
func (v Visibility) HoverLeft() Visibility {
	v.Hover = false
	if v.BlurPending {
		v.Focus = false
		v.BlurPending = false
	}
	return v
}

// Closed drops focus after a selection, discarding any held blur.
func (v Visibility) Closed() Visibility {
	v.Focus = false
	v.BlurPending = false
	return v
}
