package directory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// Entry is a single selectable item.
type Entry struct {
	ID    int    `yaml:"id" toml:"id" json:"id"`
	Name  string `yaml:"name" toml:"name" json:"name"`
	Label string `yaml:"label" toml:"label" json:"label"`
}

// Directory is the read-only, ordered pool of candidate entries. Order is the
// order entries were declared in and is never re-sorted.
type Directory struct {
	entries []Entry
	byName  map[string]int
}

// file is the on-disk shape shared by the YAML and TOML formats.
type file struct {
	Entries []Entry `yaml:"entries" toml:"entries"`
}

// Format identifies a directory file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// New builds a Directory from entries. Names must be non-empty and unique
// because selections are keyed by name.
func New(entries []Entry) (Directory, error) {
	d := Directory{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return Directory{}, fmt.Errorf("entry %d has an empty name", e.ID)
		}
		if _, dup := d.byName[e.Name]; dup {
			return Directory{}, fmt.Errorf("duplicate entry name %q", e.Name)
		}
		d.byName[e.Name] = len(d.entries)
		d.entries = append(d.entries, e)
	}
	return d, nil
}

// Sample returns the built-in directory used when none is configured.
func Sample() Directory {
	d, _ := New([]Entry{
		{ID: 1, Name: "John", Label: "john@example.com"},
		{ID: 2, Name: "Jane", Label: "jane@example.com"},
		{ID: 3, Name: "Doe", Label: "doe@example.com"},
		{ID: 4, Name: "Alice", Label: "alice@example.com"},
		{ID: 5, Name: "Bob", Label: "bob@example.com"},
	})
	return d
}

// Entries returns a copy of the entries in directory order.
func (d Directory) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Len returns the number of entries.
func (d Directory) Len() int {
	return len(d.entries)
}

// Lookup returns the entry with the given name.
func (d Directory) Lookup(name string) (Entry, bool) {
	i, ok := d.byName[name]
	if !ok {
		return Entry{}, false
	}
	return d.entries[i], true
}

// NextID returns one more than the largest ID in the directory.
func (d Directory) NextID() int {
	max := 0
	for _, e := range d.entries {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

// With returns a new Directory with e appended.
func (d Directory) With(e Entry) (Directory, error) {
	return New(append(d.Entries(), e))
}

// FormatFor picks the encoding from a file extension. Anything that is not
// .toml is treated as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Parse decodes directory bytes in the given format.
func Parse(data []byte, format Format) (Directory, error) {
	var f file
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return Directory{}, fmt.Errorf("parsing directory: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return Directory{}, fmt.Errorf("parsing directory: %w", err)
		}
	}
	d, err := New(f.Entries)
	if err != nil {
		return Directory{}, fmt.Errorf("parsing directory: %w", err)
	}
	return d, nil
}

// Marshal encodes the directory in the given format.
func Marshal(d Directory, format Format) ([]byte, error) {
	f := file{Entries: d.Entries()}
	if format == FormatTOML {
		return toml.Marshal(f)
	}
	return yaml.Marshal(f)
}

// Load reads a directory file, choosing the format from its extension.
func Load(path string) (Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Directory{}, fmt.Errorf("reading directory: %w", err)
	}
	return Parse(data, FormatFor(path))
}

// Save writes the directory to path, creating parent directories as needed.
func Save(d Directory, path string) error {
	data, err := Marshal(d, FormatFor(path))
	if err != nil {
		return fmt.Errorf("marshaling directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory folder: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing directory: %w", err)
	}
	return nil
}
