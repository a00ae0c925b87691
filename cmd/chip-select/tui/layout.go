package tui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
)

const chipRemoveMark = " ✕"

// chipZone is the clickable extent of one chip on screen. x1 is exclusive.
type chipZone struct {
	row    int
	x0, x1 int
	name   string
}

// layout records where each part of the picker lands, so that rendering and
// mouse hit-testing agree.
type layout struct {
	chipRows  [][]string // rendered chips per row
	zones     []chipZone
	inputRow  int
	panelTop  int
	panelRows []panelRow // empty when the panel is hidden
}

type panelRowKind int

const (
	rowSuggestion panelRowKind = iota
	rowMoreAbove
	rowMoreBelow
	rowNoMatches
)

type panelRow struct {
	kind  panelRowKind
	index int // index into View.Suggestions for rowSuggestion
	text  string
}

// computeLayout places chips (wrapping at width, no wrapping when width is 0),
// the input line and the visible window of suggestions.
func (m Model) computeLayout() layout {
	var l layout

	var row []string
	x := 0
	for _, c := range m.view.Chips {
		style := m.styles.Chip
		if c.Highlighted {
			style = m.styles.ChipHighlighted
		}
		rendered := style.Render(c.Name + chipRemoveMark)
		w := ansi.StringWidth(rendered)

		if len(row) > 0 && m.width > 0 && x+1+w > m.width {
			l.chipRows = append(l.chipRows, row)
			row = nil
			x = 0
		}
		if len(row) > 0 {
			x++ // separator
		}
		l.zones = append(l.zones, chipZone{row: len(l.chipRows), x0: x, x1: x + w, name: c.Name})
		row = append(row, rendered)
		x += w
	}
	if len(row) > 0 || len(l.chipRows) == 0 {
		l.chipRows = append(l.chipRows, row)
	}

	l.inputRow = len(l.chipRows)
	l.panelTop = l.inputRow + 1

	if !m.view.SuggestionsVisible {
		return l
	}
	n := len(m.view.Suggestions)
	if n == 0 {
		l.panelRows = []panelRow{{kind: rowNoMatches, text: "(no matches)"}}
		return l
	}

	start, end := m.window()
	if start > 0 {
		l.panelRows = append(l.panelRows, panelRow{kind: rowMoreAbove, text: fmt.Sprintf("↑ %d more", start)})
	}
	for i := start; i < end; i++ {
		l.panelRows = append(l.panelRows, panelRow{kind: rowSuggestion, index: i})
	}
	if end < n {
		l.panelRows = append(l.panelRows, panelRow{kind: rowMoreBelow, text: fmt.Sprintf("↓ %d more", n-end)})
	}
	return l
}

// window returns the half-open range of suggestions shown in the panel.
func (m Model) window() (start, end int) {
	n := len(m.view.Suggestions)
	start = m.offset
	if start > n {
		start = n
	}
	end = start + m.maxSuggestions
	if end > n {
		end = n
	}
	return start, end
}

// chipAt returns the chip under (x, y).
func (l layout) chipAt(x, y int) (string, bool) {
	for _, z := range l.zones {
		if z.row == y && x >= z.x0 && x < z.x1 {
			return z.name, true
		}
	}
	return "", false
}

// inPanel reports whether row y is part of the shown suggestion panel.
func (l layout) inPanel(y int) bool {
	return len(l.panelRows) > 0 && y >= l.panelTop && y < l.panelTop+len(l.panelRows)
}

// suggestionAt returns the suggestion index on row y.
func (l layout) suggestionAt(y int) (int, bool) {
	if !l.inPanel(y) {
		return 0, false
	}
	r := l.panelRows[y-l.panelTop]
	if r.kind != rowSuggestion {
		return 0, false
	}
	return r.index, true
}
