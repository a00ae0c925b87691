package chips

// Selection holds the selected names twice: as an insertion-ordered slice and
// as a membership set. Both views change together or not at all. A Selection
// is immutable; Add and Remove return a new value.
type Selection struct {
	order []string
	set   map[string]struct{}
}

// NewSelection builds a Selection from names in order. Duplicates after the
// first occurrence are dropped.
func NewSelection(names ...string) Selection {
	var s Selection
	for _, n := range names {
		s, _ = s.Add(n)
	}
	return s
}

// Add appends name. The second return is false when name was already
// selected, in which case the receiver is returned unchanged.
func (s Selection) Add(name string) (Selection, bool) {
	if s.Has(name) {
		return s, false
	}
	order := make([]string, len(s.order), len(s.order)+1)
	copy(order, s.order)
	order = append(order, name)

	set := make(map[string]struct{}, len(s.set)+1)
	for k := range s.set {
		set[k] = struct{}{}
	}
	set[name] = struct{}{}

	return Selection{order: order, set: set}, true
}

// Remove drops name. The second return is false when name was not selected.
func (s Selection) Remove(name string) (Selection, bool) {
	if !s.Has(name) {
		return s, false
	}
	order := make([]string, 0, len(s.order)-1)
	for _, n := range s.order {
		if n != name {
			order = append(order, n)
		}
	}
	set := make(map[string]struct{}, len(order))
	for k := range s.set {
		if k != name {
			set[k] = struct{}{}
		}
	}
	return Selection{order: order, set: set}, true
}

// Has reports whether name is selected.
func (s Selection) Has(name string) bool {
	_, ok := s.set[name]
	return ok
}

// Names returns the selected names in insertion order.
func (s Selection) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of selected names.
func (s Selection) Len() int {
	return len(s.order)
}

// Last returns the most recently added name.
func (s Selection) Last() (string, bool) {
	if len(s.order) == 0 {
		return "", false
	}
	return s.order[len(s.order)-1], true
}

// Consistent reports whether the ordered view and the set view hold exactly
// the same names with no duplicates in the ordered view.
func (s Selection) Consistent() bool {
	if len(s.order) != len(s.set) {
		return false
	}
	seen := make(map[string]struct{}, len(s.order))
	for _, n := range s.order {
		if _, ok := s.set[n]; !ok {
			return false
		}
		if _, dup := seen[n]; dup {
			return false
		}
		seen[n] = struct{}{}
	}
	return true
}

// excluded exposes the membership set to Filter without copying.
func (s Selection) excluded() map[string]struct{} {
	return s.set
}
