package chips

// Backspace tracks consecutive deletion-key presses on an empty query. The
// first qualifying press arms the protocol and highlights the last chip; the
// second removes it.
type Backspace int

const (
	Idle  Backspace = iota // count 0, nothing highlighted
	Armed                  // count 1, last chip highlighted
)

// String returns the state name.
func (b Backspace) String() string {
	switch b {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	default:
		return "unknown"
	}
}

// Count returns the number of consecutive qualifying presses seen.
func (b Backspace) Count() int {
	if b == Armed {
		return 1
	}
	return 0
}

// Highlighted reports whether the last chip is marked for removal.
func (b Backspace) Highlighted() bool {
	return b == Armed
}

// Press advances the protocol for one key-down. qualifying is true only for a
// deletion key pressed while the query is blank and at least one chip exists.
// removeLast is true when the press confirms removal of the last chip.
//
// A non-qualifying press always lands in Idle. For a deletion key that is the
// same as no change, since Armed can only be reached with a blank query and a
// non-empty selection and leaving either condition resets the protocol.
func (b Backspace) Press(qualifying bool) (next Backspace, removeLast bool) {
	if !qualifying {
		return Idle, false
	}
	if b == Armed {
		return Idle, true
	}
	return Armed, false
}
