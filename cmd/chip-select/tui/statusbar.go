package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StatusBar renders the bottom row with the selection count and keyboard
// shortcuts.
type StatusBar struct {
	selected    int
	armed       bool
	focused     bool
	deletionKey string
	width       int
	styles      Styles
}

// NewStatusBar creates a status bar. deletionKey is named in the hint shown
// while a removal is armed; empty means backspace.
func NewStatusBar(styles Styles, deletionKey string) StatusBar {
	if deletionKey == "" {
		deletionKey = "backspace"
	}
	return StatusBar{styles: styles, deletionKey: deletionKey}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the counts shown and whether the text field has focus.
func (s *StatusBar) Update(selected int, armed, focused bool) {
	s.selected = selected
	s.armed = armed
	s.focused = focused
}

// View renders the status bar.
func (s StatusBar) View() string {
	left := fmt.Sprintf("%d selected", s.selected)
	if s.armed {
		left += " · " + s.deletionKey + " again to remove"
	}

	// Esc leaves the field before it cancels.
	esc := "cancel"
	if s.focused {
		esc = "leave field"
	}
	key := s.styles.StatusBarKey
	shortcuts := []string{
		key.Render("Enter") + ": add",
		key.Render("Ctrl+S") + ": done",
		key.Render("Esc") + ": " + esc,
	}
	right := strings.Join(shortcuts, " · ")

	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	gap := s.width - 2 - leftWidth - rightWidth // StatusBar style pads 1 each side
	if gap < 1 {
		gap = 1
	}

	content := left + strings.Repeat(" ", gap) + right
	if s.width <= 0 {
		return s.styles.StatusBar.Render(content)
	}
	return s.styles.StatusBar.Width(s.width).Render(content)
}
