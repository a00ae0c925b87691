package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds every style the picker renders with, derived from one
// catppuccin flavor.
type Styles struct {
	// Chip is used for a selected name.
	Chip lipgloss.Style
	// ChipHighlighted marks the last chip while a deletion is armed.
	ChipHighlighted lipgloss.Style
	// Empty is the placeholder shown when nothing is selected.
	Empty lipgloss.Style

	// Suggestion is a panel row; SuggestionCursor is the row under the cursor.
	Suggestion       lipgloss.Style
	SuggestionCursor lipgloss.Style
	SuggestionLabel  lipgloss.Style
	ScrollHint       lipgloss.Style

	// Panel wraps the suggestion rows.
	Panel lipgloss.Style

	StatusBar    lipgloss.Style
	StatusBarKey lipgloss.Style

	Prompt lipgloss.Style
}

// NewStyles builds Styles from a catppuccin flavor.
func NewStyles(flavor catppuccin.Flavor) Styles {
	var (
		colorBase     = lipgloss.Color(flavor.Base().Hex)
		colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
		colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
		colorText     = lipgloss.Color(flavor.Text().Hex)
		colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
		colorBlue     = lipgloss.Color(flavor.Blue().Hex)
		colorRed      = lipgloss.Color(flavor.Red().Hex)
		colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
		colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
		colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
	)

	return Styles{
		Chip: lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface1).
			Padding(0, 1),
		ChipHighlighted: lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorRed).
			Bold(true).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Italic(true),

		Suggestion: lipgloss.NewStyle().
			Foreground(colorText),
		SuggestionCursor: lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true),
		SuggestionLabel: lipgloss.NewStyle().
			Foreground(colorOverlay0),
		ScrollHint: lipgloss.NewStyle().
			Foreground(colorOverlay0),

		Panel: lipgloss.NewStyle().
			PaddingLeft(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1),
		StatusBarKey: lipgloss.NewStyle().
			Foreground(colorYellow).
			Background(colorSurface0).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true),
	}
}

// DefaultStyles uses the Mocha flavor.
func DefaultStyles() Styles {
	return NewStyles(catppuccin.Mocha)
}
