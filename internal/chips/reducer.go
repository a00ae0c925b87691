package chips

import "strings"

// State is the complete interaction state of one chip input. It is a value:
// transitions return a new State and never modify the old one.
type State struct {
	Query      string
	Selection  Selection
	Backspace  Backspace
	Visibility Visibility
}

// Highlighted reports whether the last chip is marked for removal.
func (s State) Highlighted() bool {
	return s.Backspace.Highlighted() && s.Selection.Len() > 0
}

// SuggestionsVisible reports whether the suggestion panel is shown.
func (s State) SuggestionsVisible() bool {
	return s.Visibility.Visible(s.Query)
}

// Reducer applies events to states. The zero value treats only backspace as a
// deletion key.
type Reducer struct {
	deletionKeys map[string]struct{}
}

// NewReducer returns a Reducer whose deletion keys are keys, or backspace when
// keys is empty.
func NewReducer(keys ...string) Reducer {
	if len(keys) == 0 {
		return Reducer{}
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return Reducer{deletionKeys: set}
}

// IsDeletionKey reports whether key drives the backspace protocol.
func (r Reducer) IsDeletionKey(key string) bool {
	if r.deletionKeys == nil {
		return key == KeyBackspace
	}
	_, ok := r.deletionKeys[key]
	return ok
}

// Reduce returns the state that follows s after ev. It is total: unknown
// events, duplicate adds and removals of absent names return a state that
// differs from s at most by a reset backspace protocol.
func (r Reducer) Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case TextChanged:
		s.Query = ev.Value
		s.Backspace = Idle
	case Focused:
		s.Visibility = s.Visibility.Focused()
		s.Backspace = Idle
	case Blurred:
		s.Visibility = s.Visibility.Blurred()
		s.Backspace = Idle
	case HoverEntered:
		s.Visibility = s.Visibility.HoverEntered()
		s.Backspace = Idle
	case HoverLeft:
		s.Visibility = s.Visibility.HoverLeft()
		s.Backspace = Idle
	case KeyDown:
		qualifying := r.IsDeletionKey(ev.Key) &&
			strings.TrimSpace(s.Query) == "" &&
			s.Selection.Len() > 0
		next, removeLast := s.Backspace.Press(qualifying)
		s.Backspace = next
		if removeLast {
			last, _ := s.Selection.Last()
			s = remove(s, last)
		}
	case SuggestionClicked:
		s = add(s, ev.Entry.Name)
	case ChipClicked:
		s = remove(s, ev.Name)
	}
	return s
}

// add selects name. A successful add ends the deletion protocol and closes
// the panel.
func add(s State, name string) State {
	next, ok := s.Selection.Add(name)
	if !ok {
		return s
	}
	s.Selection = next
	s.Query = ""
	s.Visibility = s.Visibility.Closed()
	s.Backspace = Idle
	return s
}

// remove deselects name. The backspace protocol resets even when name was not
// selected.
func remove(s State, name string) State {
	s.Selection, _ = s.Selection.Remove(name)
	s.Backspace = Idle
	return s
}
