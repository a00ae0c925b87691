package chips_test

import (
	"testing"

	"github.com/ruminaider/chip-select/internal/chips"
	"github.com/ruminaider/chip-select/internal/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryNames(entries []directory.Entry) []string {
	out := []string{}
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	dir := directory.Sample()

	tests := []struct {
		name     string
		query    string
		excluded chips.Selection
		want     []string
	}{
		{"prefix match", "jo", chips.Selection{}, []string{"John"}},
		{"blank query excludes selected", "", chips.NewSelection("John"), []string{"Jane", "Doe", "Alice", "Bob"}},
		{"whitespace query is blank", "   ", chips.Selection{}, []string{"John", "Jane", "Doe", "Alice", "Bob"}},
		{"case insensitive", "JA", chips.Selection{}, []string{"Jane"}},
		{"substring", "o", chips.Selection{}, []string{"John", "Doe", "Bob"}},
		{"match minus excluded", "o", chips.NewSelection("Doe"), []string{"John", "Bob"}},
		{"no match", "zz", chips.Selection{}, []string{}},
		{"everything excluded", "", chips.NewSelection("John", "Jane", "Doe", "Alice", "Bob"), []string{}},
		{"untrimmed query must match literally", " al", chips.Selection{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chips.Filter(dir, tt.query, tt.excluded)
			assert.Equal(t, tt.want, entryNames(got))
		})
	}
}

func TestFilter_KeepsDirectoryOrder(t *testing.T) {
	dir, err := directory.New([]directory.Entry{
		{ID: 9, Name: "Zara"},
		{ID: 1, Name: "Anna"},
		{ID: 5, Name: "Mara"},
	})
	require.NoError(t, err)

	got := chips.Filter(dir, "ar", chips.Selection{})
	assert.Equal(t, []string{"Zara", "Mara"}, entryNames(got))
}

func TestFilter_EmptyDirectory(t *testing.T) {
	dir, err := directory.New(nil)
	require.NoError(t, err)
	assert.Empty(t, chips.Filter(dir, "", chips.Selection{}))
	assert.Empty(t, chips.Filter(dir, "x", chips.NewSelection("x")))
}
