package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/humanspan/internal/parser"
)

// ResultComponent renders the live parse of the current input.
type ResultComponent struct {
	Trace parser.Trace
	Width int
}

// NewResultComponent creates a new result component.
func NewResultComponent(tr parser.Trace, width int) *ResultComponent {
	return &ResultComponent{Trace: tr, Width: width}
}

// View renders the result component.
func (rc *ResultComponent) View() string {
	box := StyleResultBox
	if rc.Trace.Result.Identified() {
		box = StyleIdentifiedBox
	}
	if rc.Width > 4 {
		box = box.Width(rc.Width - 4)
	}

	if strings.TrimSpace(rc.Trace.Input) == "" {
		return box.Render(StyleSubtitle.Render("Type a duration, e.g. 2 to 4 weeks"))
	}

	var lines []string
	lines = append(lines, FormatResult(rc.Trace.Result))
	if r := rc.Trace.Result; r.Identified() && r.Unit != parser.Day {
		lines = append(lines, StyleSubtitle.Render(fmt.Sprintf("≈ %.4g days", r.Days())))
	}
	lines = append(lines, "")
	lines = append(lines, StyleSubtitle.Render("normalized ")+rc.Trace.Normalized)
	lines = append(lines, StyleSubtitle.Render("branch     ")+string(rc.Trace.Branch))
	if s := rc.Trace.Strategy(); s != "" {
		lines = append(lines, StyleSubtitle.Render("strategy   ")+s)
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// HistoryEntry is an input the user confirmed with enter.
type HistoryEntry struct {
	Input  string
	Result parser.DurationResult
}

// HistoryComponent renders the most recent confirmed inputs, newest first.
type HistoryComponent struct {
	Entries []HistoryEntry
	Limit   int
}

// NewHistoryComponent creates a new history component.
func NewHistoryComponent(entries []HistoryEntry, limit int) *HistoryComponent {
	return &HistoryComponent{Entries: entries, Limit: limit}
}

// View renders the history component. It is empty when there is no history.
func (hc *HistoryComponent) View() string {
	if len(hc.Entries) == 0 {
		return ""
	}

	var lines []string
	for i := len(hc.Entries) - 1; i >= 0 && len(lines) < hc.Limit; i-- {
		e := hc.Entries[i]
		lines = append(lines, e.Input+StyleSubtitle.Render(" → ")+FormatResult(e.Result))
	}
	return StyleHistoryBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// HelpBar renders the keyboard shortcuts.
func HelpBar() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"enter", "keep"},
		{"ctrl+u", "clear"},
		{"esc", "quit"},
	}

	var parts []string
	for _, k := range keys {
		part := StyleHelpKey.Render(k.key) + " " + StyleHelpDesc.Render(k.desc)
		parts = append(parts, part)
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}
