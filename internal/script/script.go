// Package script reads replay scripts: YAML lists of chip input events that
// can be fed through a chips.Controller without a terminal.
//
// A script looks like:
//
//	- event: focus
//	- event: text
//	  text: jo
//	- event: suggestion
//	  name: John
//	- event: key
//	  key: backspace
//	- event: chip
//	  name: John
//	- event: hover-enter
//	- event: blur
//	- event: hover-leave
package script

import (
	"fmt"
	"os"

	"github.com/ruminaider/chip-select/internal/chips"
	"github.com/ruminaider/chip-select/internal/directory"
	"go.yaml.in/yaml/v3"
)

// Step is one scripted event as written in YAML.
type Step struct {
	Event string `yaml:"event"`
	Text  string `yaml:"text,omitempty"`
	Key   string `yaml:"key,omitempty"`
	Name  string `yaml:"name,omitempty"`
}

// Parse decodes script bytes into steps.
func Parse(data []byte) ([]Step, error) {
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	return steps, nil
}

// Load reads and parses a script file.
func Load(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return Parse(data)
}

// Events converts steps to chip events. Suggestion steps are resolved against
// dir because a suggestion can only be clicked if the directory has it; chip
// steps are not, since removing an unknown name is a valid no-op.
func Events(steps []Step, dir directory.Directory) ([]chips.Event, error) {
	events := make([]chips.Event, 0, len(steps))
	for i, s := range steps {
		ev, err := s.toEvent(dir)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func (s Step) toEvent(dir directory.Directory) (chips.Event, error) {
	switch s.Event {
	case chips.TextChanged{}.Kind():
		return chips.TextChanged{Value: s.Text}, nil
	case chips.Focused{}.Kind():
		return chips.Focused{}, nil
	case chips.Blurred{}.Kind():
		return chips.Blurred{}, nil
	case chips.KeyDown{}.Kind():
		if s.Key == "" {
			return nil, fmt.Errorf("key event needs a key")
		}
		return chips.KeyDown{Key: s.Key}, nil
	case chips.SuggestionClicked{}.Kind():
		e, ok := dir.Lookup(s.Name)
		if !ok {
			return nil, fmt.Errorf("suggestion %q is not in the directory", s.Name)
		}
		return chips.SuggestionClicked{Entry: e}, nil
	case chips.ChipClicked{}.Kind():
		return chips.ChipClicked{Name: s.Name}, nil
	case chips.HoverEntered{}.Kind():
		return chips.HoverEntered{}, nil
	case chips.HoverLeft{}.Kind():
		return chips.HoverLeft{}, nil
	default:
		return nil, fmt.Errorf("unknown event %q", s.Event)
	}
}
