package commands

import (
	"github.com/ruminaider/chip-select/internal/chips"
	"github.com/ruminaider/chip-select/internal/config"
	"github.com/ruminaider/chip-select/internal/script"
	"go.uber.org/zap"
)

// ReplayResult holds the view after every scripted event.
type ReplayResult struct {
	Steps []chips.View
	Final chips.View
}

// ReplayOptions configures Replay.
type ReplayOptions struct {
	Config   config.Config
	Selected []string    // names selected before the first event
	Sink     chips.Sink  // optional, receives every view
	Logger   *zap.Logger // optional
}

// Replay runs the script at scriptPath against the configured directory.
func Replay(scriptPath string, opts ReplayOptions) (*ReplayResult, error) {
	dir, err := LoadDirectory(opts.Config)
	if err != nil {
		return nil, err
	}
	steps, err := script.Load(scriptPath)
	if err != nil {
		return nil, err
	}
	events, err := script.Events(steps, dir)
	if err != nil {
		return nil, err
	}

	result := &ReplayResult{}
	ctrlOpts := []chips.Option{
		chips.WithDeletionKeys(opts.Config.DeletionKeys...),
		chips.WithSelected(opts.Selected...),
		chips.WithLogger(opts.Logger),
		chips.WithSink(chips.SinkFunc(func(v chips.View) {
			result.Steps = append(result.Steps, v)
			if opts.Sink != nil {
				opts.Sink.Render(v)
			}
		})),
	}
	ctrl := chips.New(dir, ctrlOpts...)
	for _, ev := range events {
		ctrl.Dispatch(ev)
	}
	result.Final = ctrl.View()
	return result, nil
}
