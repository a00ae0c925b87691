package chips

import "github.com/ruminaider/chip-select/internal/directory"

// Chip is one selected name as rendered.
type Chip struct {
	Name        string `json:"name" yaml:"name"`
	Highlighted bool   `json:"highlighted,omitempty" yaml:"highlighted,omitempty"`
}

// Suggestion is one candidate in the suggestion panel.
type Suggestion struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label" yaml:"label"`
}

// View is what a rendering sink receives after each event. Suggestions are
// filled even when the panel is hidden.
type View struct {
	Chips              []Chip       `json:"chips" yaml:"chips"`
	Query              string       `json:"query" yaml:"query"`
	Focused            bool         `json:"focused" yaml:"focused"`
	SuggestionsVisible bool         `json:"suggestions_visible" yaml:"suggestions_visible"`
	Suggestions        []Suggestion `json:"suggestions" yaml:"suggestions"`
}

// Selected returns the chip names in order.
func (v View) Selected() []string {
	out := make([]string, 0, len(v.Chips))
	for _, c := range v.Chips {
		out = append(out, c.Name)
	}
	return out
}

// NewView projects s onto dir.
func NewView(dir directory.Directory, s State) View {
	names := s.Selection.Names()
	highlight := s.Highlighted()

	v := View{
		Chips:              make([]Chip, 0, len(names)),
		Query:              s.Query,
		Focused:            s.Visibility.Focus,
		SuggestionsVisible: s.SuggestionsVisible(),
		Suggestions:        []Suggestion{},
	}
	for i, n := range names {
		v.Chips = append(v.Chips, Chip{
			Name:        n,
			Highlighted: highlight && i == len(names)-1,
		})
	}
	for _, e := range Filter(dir, s.Query, s.Selection) {
		v.Suggestions = append(v.Suggestions, Suggestion{ID: e.ID, Name: e.Name, Label: e.Label})
	}
	return v
}

// Sink receives a View after every dispatched event.
type Sink interface {
	Render(View)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(View)

// Render calls f(v).
func (f SinkFunc) Render(v View) { f(v) }
