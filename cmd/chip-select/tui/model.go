package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/chip-select/internal/chips"
	"github.com/ruminaider/chip-select/internal/directory"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a Model.
type Options struct {
	Placeholder    string
	MaxSuggestions int // rows shown in the panel; 0 means 8
	Styles         *Styles
	// AutoFocus focuses the text field when the program starts.
	AutoFocus bool
	// DeletionKey names the key shown in the remove hint; empty means
	// backspace.
	DeletionKey string
}

// Model is the interactive chip picker. It translates terminal input into
// chips events and renders the resulting view.
type Model struct {
	ctrl  *chips.Controller
	view  chips.View
	input textinput.Model

	styles         Styles
	statusBar      StatusBar
	maxSuggestions int
	autoFocus      bool

	cursor int // index into view.Suggestions
	offset int // first suggestion shown

	// hover mirrors the pointer-over-panel flag sent to the controller;
	// pointerY is the last row the mouse reported, -1 before any.
	hover    bool
	pointerY int

	width, height int

	// refocus is set when the terminal window lost focus while the field
	// was focused.
	refocus bool

	// Confirmed is true when the user finished with ctrl+s.
	Confirmed bool
	// Quitting is true once the program is exiting, by confirm or cancel.
	Quitting bool
}

// NewModel creates a picker over ctrl.
func NewModel(ctrl *chips.Controller, opts Options) Model {
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	limit := opts.MaxSuggestions
	if limit <= 0 {
		limit = 8
	}

	ti := textinput.New()
	ti.Prompt = "› "
	ti.PromptStyle = styles.Prompt
	ti.Placeholder = opts.Placeholder
	ti.SetValue(ctrl.State().Query)

	m := Model{
		ctrl:           ctrl,
		input:          ti,
		styles:         styles,
		statusBar:      NewStatusBar(styles, opts.DeletionKey),
		maxSuggestions: limit,
		autoFocus:      opts.AutoFocus,
		pointerY:       -1,
	}
	m.sync(ctrl.View())
	return m
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	if m.autoFocus {
		return func() tea.Msg { return tea.FocusMsg{} }
	}
	return nil
}

// Selected returns the chosen names in order.
func (m Model) Selected() []string {
	return m.view.Selected()
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	l := m.computeLayout()

	var b strings.Builder
	for _, row := range l.chipRows {
		if len(row) == 0 {
			b.WriteString(m.styles.Empty.Render("No one selected"))
		} else {
			b.WriteString(strings.Join(row, " "))
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.input.View())
	b.WriteByte('\n')

	if len(l.panelRows) > 0 {
		lines := make([]string, 0, len(l.panelRows))
		for _, r := range l.panelRows {
			lines = append(lines, m.renderPanelRow(r))
		}
		b.WriteString(m.styles.Panel.Render(strings.Join(lines, "\n")))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.statusBar.View())
	return b.String()
}

func (m Model) renderPanelRow(r panelRow) string {
	switch r.kind {
	case rowSuggestion:
		s := m.view.Suggestions[r.index]
		name := s.Name
		if pad := m.nameWidth() - ansi.StringWidth(name); pad > 0 {
			name += strings.Repeat(" ", pad)
		}
		if r.index == m.cursor {
			return m.styles.SuggestionCursor.Render("> "+name) + "  " + m.styles.SuggestionLabel.Render(s.Label)
		}
		return m.styles.Suggestion.Render("  "+name) + "  " + m.styles.SuggestionLabel.Render(s.Label)
	default:
		return m.styles.ScrollHint.Render("  " + r.text)
	}
}

func (m Model) nameWidth() int {
	w := 0
	for _, s := range m.view.Suggestions {
		w = max(w, ansi.StringWidth(s.Name))
	}
	return w
}

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-lipgloss.Width(m.input.Prompt)-1, 0)
		m.statusBar.SetWidth(msg.Width)
		return m, nil

	case tea.FocusMsg:
		if m.autoFocus || m.refocus {
			m.autoFocus = false
			m.refocus = false
			return m, m.dispatch(chips.Focused{})
		}
		return m, nil

	case tea.BlurMsg:
		if m.view.Focused {
			m.refocus = true
			return m, m.dispatch(chips.Blurred{})
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	if m.view.Focused {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit(false)
	case "ctrl+s", "ctrl+d":
		return m.quit(true)
	case "esc":
		if m.view.Focused {
			return m, m.dispatch(chips.Blurred{})
		}
		return m.quit(false)
	}

	if !m.view.Focused {
		switch {
		case msg.String() == "tab", msg.String() == "enter", msg.String() == "/":
			return m, m.dispatch(chips.Focused{})
		case msg.Type == tea.KeyRunes:
			cmd := m.dispatch(chips.Focused{})
			next, keyCmd := m.focusedKey(msg)
			return next, tea.Batch(cmd, keyCmd)
		case msg.String() == "up", msg.String() == "down":
			// The panel can be open on a non-blank query without focus.
			m.moveCursor(msg.String())
		}
		return m, nil
	}
	return m.focusedKey(msg)
}

// focusedKey handles a key pressed in the focused text field. KeyDown is
// always dispatched before the key edits the text.
func (m Model) focusedKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	cmd := m.dispatch(chips.KeyDown{Key: key})

	switch key {
	case "enter":
		if s, ok := m.current(); ok {
			cmd = tea.Batch(cmd, m.dispatch(chips.SuggestionClicked{Entry: entryOf(s)}))
			cmd = tea.Batch(cmd, m.dispatch(chips.Focused{}))
		}
		return m, cmd
	case "up", "down":
		m.moveCursor(key)
		return m, cmd
	case "tab", "shift+tab":
		return m, tea.Batch(cmd, m.dispatch(chips.Blurred{}))
	}

	before := m.input.Value()
	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmd = tea.Batch(cmd, inputCmd)
	if v := m.input.Value(); v != before {
		m.cursor, m.offset = 0, 0
		cmd = tea.Batch(cmd, m.dispatch(chips.TextChanged{Value: v}))
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.pointerY = msg.Y
	l := m.computeLayout()
	var cmds []tea.Cmd

	over := l.inPanel(msg.Y)
	if over != m.hover {
		m.hover = over
		if over {
			cmds = append(cmds, m.dispatch(chips.HoverEntered{}))
		} else {
			cmds = append(cmds, m.dispatch(chips.HoverLeft{}))
		}
		// The panel may have closed on HoverLeft.
		l = m.computeLayout()
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		if i, ok := l.suggestionAt(msg.Y); ok {
			m.cursor = i
		}

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			cmds = append(cmds, m.click(l, msg.X, msg.Y))
		case tea.MouseButtonWheelUp:
			m.moveCursor("up")
		case tea.MouseButtonWheelDown:
			m.moveCursor("down")
		}
	}
	return m, tea.Batch(cmds...)
}

// click dispatches the events for a left press at (x, y). A press anywhere
// but the input line takes focus away from the field first.
func (m *Model) click(l layout, x, y int) tea.Cmd {
	if y == l.inputRow {
		if m.view.Focused {
			return nil
		}
		return m.dispatch(chips.Focused{})
	}

	var cmds []tea.Cmd
	if m.view.Focused {
		cmds = append(cmds, m.dispatch(chips.Blurred{}))
	}
	if i, ok := l.suggestionAt(y); ok && i < len(m.view.Suggestions) {
		cmds = append(cmds, m.dispatch(chips.SuggestionClicked{Entry: entryOf(m.view.Suggestions[i])}))
	} else if name, ok := l.chipAt(x, y); ok {
		cmds = append(cmds, m.dispatch(chips.ChipClicked{Name: name}))
	}
	return tea.Batch(cmds...)
}

func (m Model) quit(confirmed bool) (tea.Model, tea.Cmd) {
	m.Confirmed = confirmed
	m.Quitting = true
	return m, tea.Quit
}

// dispatch sends ev to the controller and mirrors the new view into the
// text input. When the panel closes or shrinks away from under the pointer,
// the hover ends with it.
func (m *Model) dispatch(ev chips.Event) tea.Cmd {
	cmd := m.sync(m.ctrl.Dispatch(ev))
	if m.hover && !m.computeLayout().inPanel(m.pointerY) {
		m.hover = false
		cmd = tea.Batch(cmd, m.sync(m.ctrl.Dispatch(chips.HoverLeft{})))
	}
	return cmd
}

func (m *Model) sync(v chips.View) tea.Cmd {
	m.view = v
	if m.input.Value() != v.Query {
		m.input.SetValue(v.Query)
		m.input.CursorEnd()
	}

	var cmd tea.Cmd
	switch {
	case v.Focused && !m.input.Focused():
		cmd = m.input.Focus()
	case !v.Focused && m.input.Focused():
		m.input.Blur()
	}

	m.clampCursor()
	armed := false
	for _, c := range v.Chips {
		armed = armed || c.Highlighted
	}
	m.statusBar.Update(len(v.Chips), armed, v.Focused)
	return cmd
}

func (m Model) current() (chips.Suggestion, bool) {
	if !m.view.SuggestionsVisible || m.cursor >= len(m.view.Suggestions) {
		return chips.Suggestion{}, false
	}
	return m.view.Suggestions[m.cursor], true
}

func (m *Model) moveCursor(dir string) {
	if !m.view.SuggestionsVisible {
		return
	}
	switch dir {
	case "up":
		m.cursor--
	case "down":
		m.cursor++
	}
	m.clampCursor()
}

// clampCursor keeps the cursor on a suggestion and inside the shown window.
func (m *Model) clampCursor() {
	n := len(m.view.Suggestions)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.maxSuggestions {
		m.offset = m.cursor - m.maxSuggestions + 1
	}
	if maxOffset := max(n-m.maxSuggestions, 0); m.offset > maxOffset {
		m.offset = maxOffset
	}
}

func entryOf(s chips.Suggestion) directory.Entry {
	return directory.Entry{ID: s.ID, Name: s.Name, Label: s.Label}
}

