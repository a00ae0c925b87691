package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ruminaider/chip-select/internal/chips"
	"go.yaml.in/yaml/v3"
)

// Output formats accepted by FormatSelection and FormatView.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// FormatSelection renders the chosen names: one per line for text, a list for
// json and yaml.
func FormatSelection(names []string, format string) (string, error) {
	if names == nil {
		names = []string{}
	}
	switch format {
	case OutputText, "":
		if len(names) == 0 {
			return "", nil
		}
		return strings.Join(names, "\n") + "\n", nil
	case OutputJSON:
		data, err := json.Marshal(names)
		if err != nil {
			return "", fmt.Errorf("marshaling selection: %w", err)
		}
		return string(data) + "\n", nil
	case OutputYAML:
		data, err := yaml.Marshal(names)
		if err != nil {
			return "", fmt.Errorf("marshaling selection: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// FormatView renders a view as JSON or YAML; text is a compact summary.
func FormatView(v chips.View, format string) (string, error) {
	switch format {
	case OutputText, "":
		var b strings.Builder
		chipNames := make([]string, 0, len(v.Chips))
		for _, c := range v.Chips {
			if c.Highlighted {
				chipNames = append(chipNames, "["+c.Name+"]")
			} else {
				chipNames = append(chipNames, c.Name)
			}
		}
		fmt.Fprintf(&b, "chips:   %s\n", strings.Join(chipNames, ", "))
		fmt.Fprintf(&b, "query:   %q\n", v.Query)
		fmt.Fprintf(&b, "focused: %t\n", v.Focused)
		if v.SuggestionsVisible {
			names := make([]string, 0, len(v.Suggestions))
			for _, s := range v.Suggestions {
				names = append(names, s.Name)
			}
			fmt.Fprintf(&b, "panel:   %s\n", strings.Join(names, ", "))
		} else {
			b.WriteString("panel:   (hidden)\n")
		}
		return b.String(), nil
	case OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling view: %w", err)
		}
		return string(data) + "\n", nil
	case OutputYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("marshaling view: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// TraceSink writes every view it receives as one JSON line.
type TraceSink struct {
	mu  sync.Mutex
	enc *json.Encoder
	err error
}

// NewTraceSink returns a sink writing to w.
func NewTraceSink(w io.Writer) *TraceSink {
	return &TraceSink{enc: json.NewEncoder(w)}
}

// Render implements chips.Sink. The first write error is kept and later
// views are dropped.
func (t *TraceSink) Render(v chips.View) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return
	}
	t.err = t.enc.Encode(v)
}

// Err returns the first write error, if any.
func (t *TraceSink) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
