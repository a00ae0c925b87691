package chips_test

import (
	"testing"

	"github.com/ruminaider/chip-select/internal/chips"
	"github.com/ruminaider/chip-select/internal/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(t *testing.T, name string) directory.Entry {
	t.Helper()
	e, ok := directory.Sample().Lookup(name)
	require.True(t, ok, "sample has %s", name)
	return e
}

// run folds events over the zero state with the default reducer.
func run(events ...chips.Event) chips.State {
	r := chips.NewReducer()
	var s chips.State
	for _, ev := range events {
		s = r.Reduce(s, ev)
	}
	return s
}

func TestReduce_InitialState(t *testing.T) {
	var s chips.State
	assert.Equal(t, "", s.Query)
	assert.Equal(t, 0, s.Selection.Len())
	assert.Equal(t, chips.Idle, s.Backspace)
	assert.False(t, s.Visibility.Focus)
	assert.False(t, s.Visibility.Hover)
	assert.False(t, s.SuggestionsVisible())
}

func TestReduce_TextChanged(t *testing.T) {
	s := run(chips.TextChanged{Value: "al"})
	assert.Equal(t, "al", s.Query)
	assert.True(t, s.SuggestionsVisible(), "non-blank query shows panel without focus")
}

func TestReduce_AddClearsQueryAndFocus(t *testing.T) {
	s := run(
		chips.Focused{},
		chips.TextChanged{Value: "jo"},
		chips.SuggestionClicked{Entry: entry(t, "John")},
	)
	assert.Equal(t, []string{"John"}, s.Selection.Names())
	assert.Equal(t, "", s.Query)
	assert.False(t, s.Visibility.Focus)
	assert.False(t, s.SuggestionsVisible())
	assert.Equal(t, chips.Idle, s.Backspace)
}

func TestReduce_AddIsIdempotent(t *testing.T) {
	once := run(chips.SuggestionClicked{Entry: entry(t, "Jane")})
	twice := run(
		chips.SuggestionClicked{Entry: entry(t, "Jane")},
		chips.SuggestionClicked{Entry: entry(t, "Jane")},
	)
	assert.Equal(t, once.Selection.Names(), twice.Selection.Names())
	assert.True(t, twice.Selection.Consistent())
}

func TestReduce_DuplicateAddKeepsQuery(t *testing.T) {
	s := run(
		chips.SuggestionClicked{Entry: entry(t, "Jane")},
		chips.Focused{},
		chips.TextChanged{Value: "ja"},
		chips.SuggestionClicked{Entry: entry(t, "Jane")},
	)
	assert.Equal(t, "ja", s.Query, "duplicate add is a no-op")
	assert.True(t, s.Visibility.Focus)
}

func TestReduce_ChipClicked(t *testing.T) {
	s := run(
		chips.SuggestionClicked{Entry: entry(t, "John")},
		chips.SuggestionClicked{Entry: entry(t, "Jane")},
		chips.SuggestionClicked{Entry: entry(t, "Doe")},
		chips.ChipClicked{Name: "Jane"},
	)
	assert.Equal(t, []string{"John", "Doe"}, s.Selection.Names())

	same := chips.NewReducer().Reduce(s, chips.ChipClicked{Name: "Nobody"})
	assert.Equal(t, s.Selection.Names(), same.Selection.Names())
}

func TestReduce_DoubleBackspaceRemovesLast(t *testing.T) {
	s := run(
		chips.SuggestionClicked{Entry: entry(t, "Alice")},
		chips.SuggestionClicked{Entry: entry(t, "Bob")},
	)
	r := chips.NewReducer()

	s = r.Reduce(s, chips.KeyDown{Key: chips.KeyBackspace})
	assert.Equal(t, []string{"Alice", "Bob"}, s.Selection.Names())
	assert.Equal(t, 1, s.Backspace.Count())
	assert.True(t, s.Highlighted())

	s = r.Reduce(s, chips.KeyDown{Key: chips.KeyBackspace})
	assert.Equal(t, []string{"Alice"}, s.Selection.Names())
	assert.Equal(t, 0, s.Backspace.Count())
	assert.False(t, s.Highlighted())
}

func TestReduce_SingleBackspaceThenOtherKey(t *testing.T) {
	s := run(
		chips.SuggestionClicked{Entry: entry(t, "Alice")},
		chips.SuggestionClicked{Entry: entry(t, "Bob")},
		chips.KeyDown{Key: chips.KeyBackspace},
		chips.KeyDown{Key: "a"},
	)
	assert.Equal(t, []string{"Alice", "Bob"}, s.Selection.Names())
	assert.False(t, s.Highlighted())
	assert.Equal(t, chips.Idle, s.Backspace)
}

func TestReduce_BackspaceWithQueryEditsText(t *testing.T) {
	s := run(
		chips.SuggestionClicked{Entry: entry(t, "Alice")},
		chips.TextChanged{Value: "b"},
		chips.KeyDown{Key: chips.KeyBackspace},
		chips.KeyDown{Key: chips.KeyBackspace},
	)
	assert.Equal(t, []string{"Alice"}, s.Selection.Names())
	assert.Equal(t, chips.Idle, s.Backspace)
}

func TestReduce_BackspaceWhitespaceQueryQualifies(t *testing.T) {
	s := run(
		chips.SuggestionClicked{Entry: entry(t, "Alice")},
		chips.TextChanged{Value: "  "},
		chips.KeyDown{Key: chips.KeyBackspace},
	)
	assert.True(t, s.Highlighted())
}

func TestReduce_BackspaceOnEmptySelection(t *testing.T) {
	s := run(
		chips.KeyDown{Key: chips.KeyBackspace},
		chips.KeyDown{Key: chips.KeyBackspace},
	)
	assert.Equal(t, chips.Idle, s.Backspace)
	assert.False(t, s.Highlighted())
}

func TestReduce_RemoveClearsArm(t *testing.T) {
	s := run(
		chips.SuggestionClicked{Entry: entry(t, "Alice")},
		chips.SuggestionClicked{Entry: entry(t, "Bob")},
		chips.KeyDown{Key: chips.KeyBackspace},
		chips.ChipClicked{Name: "Alice"},
	)
	assert.Equal(t, []string{"Bob"}, s.Selection.Names())
	assert.False(t, s.Highlighted())

	// The next press arms again instead of removing.
	s = chips.NewReducer().Reduce(s, chips.KeyDown{Key: chips.KeyBackspace})
	assert.Equal(t, []string{"Bob"}, s.Selection.Names())
	assert.True(t, s.Highlighted())
}

func TestReduce_ThreePressesRemoveOneThenArm(t *testing.T) {
	s := run(
		chips.SuggestionClicked{Entry: entry(t, "John")},
		chips.SuggestionClicked{Entry: entry(t, "Jane")},
		chips.KeyDown{Key: chips.KeyBackspace},
		chips.KeyDown{Key: chips.KeyBackspace},
		chips.KeyDown{Key: chips.KeyBackspace},
	)
	assert.Equal(t, []string{"John"}, s.Selection.Names())
	assert.True(t, s.Highlighted())
}

func TestReduce_CustomDeletionKeys(t *testing.T) {
	r := chips.NewReducer("ctrl+h", "delete")
	assert.True(t, r.IsDeletionKey("ctrl+h"))
	assert.True(t, r.IsDeletionKey("delete"))
	assert.False(t, r.IsDeletionKey(chips.KeyBackspace))

	var s chips.State
	s = r.Reduce(s, chips.SuggestionClicked{Entry: entry(t, "Bob")})
	s = r.Reduce(s, chips.KeyDown{Key: chips.KeyBackspace})
	assert.False(t, s.Highlighted())
	s = r.Reduce(s, chips.KeyDown{Key: "delete"})
	s = r.Reduce(s, chips.KeyDown{Key: "ctrl+h"})
	assert.Equal(t, 0, s.Selection.Len())
}

func TestReduce_ZeroReducerUsesBackspace(t *testing.T) {
	var r chips.Reducer
	assert.True(t, r.IsDeletionKey(chips.KeyBackspace))
	assert.False(t, r.IsDeletionKey("delete"))
}

func TestReduce_VisibilityProperties(t *testing.T) {
	t.Run("hidden without focus or query", func(t *testing.T) {
		s := run(chips.Focused{}, chips.Blurred{})
		assert.False(t, s.SuggestionsVisible())
	})

	t.Run("visible with query and no focus", func(t *testing.T) {
		s := run(chips.TextChanged{Value: "al"}, chips.Blurred{})
		assert.True(t, s.SuggestionsVisible())
	})

	t.Run("blur while hovering holds panel open", func(t *testing.T) {
		s := run(chips.Focused{}, chips.HoverEntered{}, chips.Blurred{})
		assert.True(t, s.SuggestionsVisible())

		s = chips.NewReducer().Reduce(s, chips.HoverLeft{})
		assert.False(t, s.SuggestionsVisible())
	})

	t.Run("click during held blur adds and closes", func(t *testing.T) {
		s := run(
			chips.Focused{},
			chips.HoverEntered{},
			chips.Blurred{},
			chips.SuggestionClicked{Entry: entry(t, "Doe")},
		)
		assert.Equal(t, []string{"Doe"}, s.Selection.Names())
		assert.False(t, s.SuggestionsVisible())
		assert.False(t, s.Visibility.BlurPending)
	})
}

func TestReduce_HoverDoesNotTouchSelectionOrQuery(t *testing.T) {
	s := run(
		chips.SuggestionClicked{Entry: entry(t, "Doe")},
		chips.TextChanged{Value: "x"},
		chips.HoverEntered{},
		chips.HoverLeft{},
	)
	assert.Equal(t, []string{"Doe"}, s.Selection.Names())
	assert.Equal(t, "x", s.Query)
}

type unknownEvent struct{ chips.Focused }

func (unknownEvent) Kind() string { return "unknown" }

func TestReduce_UnknownEventIsIgnored(t *testing.T) {
	before := run(chips.TextChanged{Value: "q"})
	after := chips.NewReducer().Reduce(before, unknownEvent{})
	assert.Equal(t, before.Query, after.Query)
	assert.Equal(t, before.Visibility, after.Visibility)
}

func TestReduce_DoesNotMutatePreviousState(t *testing.T) {
	r := chips.NewReducer()
	var s0 chips.State
	s1 := r.Reduce(s0, chips.SuggestionClicked{Entry: entry(t, "John")})
	s2 := r.Reduce(s1, chips.SuggestionClicked{Entry: entry(t, "Jane")})
	s3 := r.Reduce(s2, chips.ChipClicked{Name: "John"})

	assert.Empty(t, s0.Selection.Names())
	assert.Equal(t, []string{"John"}, s1.Selection.Names())
	assert.Equal(t, []string{"John", "Jane"}, s2.Selection.Names())
	assert.Equal(t, []string{"Jane"}, s3.Selection.Names())
}
