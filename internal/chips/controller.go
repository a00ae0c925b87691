package chips

import (
	"github.com/ruminaider/chip-select/internal/directory"
	"go.uber.org/zap"
)

// Controller owns the state of one chip input and applies events to it one at
// a time. It is not safe for concurrent use; drive it from a single goroutine.
type Controller struct {
	dir     directory.Directory
	reducer Reducer
	state   State
	sink    Sink
	logger  *zap.Logger
	initial []string
}

// Option configures a Controller.
type Option func(*Controller)

// WithSink registers the sink notified after every event.
func WithSink(s Sink) Option {
	return func(c *Controller) { c.sink = s }
}

// WithLogger sets the logger used for event tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDeletionKeys replaces the keys that drive the backspace protocol.
func WithDeletionKeys(keys ...string) Option {
	return func(c *Controller) { c.reducer = NewReducer(keys...) }
}

// WithSelected seeds the selection. Names missing from the directory and
// repeated names are skipped.
func WithSelected(names ...string) Option {
	return func(c *Controller) { c.initial = append(c.initial, names...) }
}

// New creates a Controller over dir in the initial state: empty query, no
// selection, unfocused.
func New(dir directory.Directory, opts ...Option) *Controller {
	c := &Controller{
		dir:    dir,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, n := range c.initial {
		if _, ok := dir.Lookup(n); !ok {
			c.logger.Debug("skipping unknown initial selection", zap.String("name", n))
			continue
		}
		c.state.Selection, _ = c.state.Selection.Add(n)
	}
	return c
}

// Dispatch applies ev, notifies the sink and returns the new view. A nil
// event is ignored and the sink is not notified.
func (c *Controller) Dispatch(ev Event) View {
	if ev == nil {
		return c.View()
	}
	before := c.state
	c.state = c.reducer.Reduce(c.state, ev)

	if !c.state.Selection.Consistent() {
		c.logger.Error("selection views out of sync",
			zap.Strings("order", c.state.Selection.Names()),
			zap.String("event", ev.Kind()))
	}

	c.logger.Debug("event",
		zap.String("event", ev.Kind()),
		zap.String("query", c.state.Query),
		zap.Int("selected", c.state.Selection.Len()),
		zap.Int("selected_before", before.Selection.Len()),
		zap.Stringer("backspace", c.state.Backspace),
		zap.Bool("visible", c.state.SuggestionsVisible()))

	v := NewView(c.dir, c.state)
	if c.sink != nil {
		c.sink.Render(v)
	}
	return v
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// View returns the view of the current state without dispatching.
func (c *Controller) View() View {
	return NewView(c.dir, c.state)
}

// Directory returns the directory the controller selects from.
func (c *Controller) Directory() directory.Directory {
	return c.dir
}
