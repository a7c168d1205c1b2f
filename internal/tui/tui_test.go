package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/humanspan/internal/parser"
)

func typeText(m *TryModel, s string) {
	for _, r := range s {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// =============================================================================
// TryModel Tests
// =============================================================================

func TestNewTryModel(t *testing.T) {
	m := NewTryModel(TryConfig{})
	assert.Equal(t, "", m.Input())
	assert.Equal(t, 5, m.maxHistory)
	assert.Equal(t, parser.BranchNoUnit, m.Trace().Branch)
	assert.Nil(t, m.Init())
}

func TestTryModelTyping(t *testing.T) {
	t.Run("live_parse", func(t *testing.T) {
		m := NewTryModel(TryConfig{})
		typeText(m, "2 to 4 days")
		assert.Equal(t, "2 to 4 days", m.Input())
		assert.Equal(t, parser.DurationResult{Quantity: 3, Unit: parser.Day}, m.Trace().Result)
		assert.Equal(t, "range_average", m.Trace().Strategy())
	})

	t.Run("backspace", func(t *testing.T) {
		m := NewTryModel(TryConfig{})
		typeText(m, "2 dayz")
		assert.False(t, m.Trace().Result.Identified())

		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		typeText(m, "s")
		assert.Equal(t, "2 days", m.Input())
		assert.True(t, m.Trace().Result.Identified())
	})

	t.Run("backspace_on_empty", func(t *testing.T) {
		m := NewTryModel(TryConfig{})
		m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
		assert.Equal(t, "", m.Input())
	})

	t.Run("clear_line", func(t *testing.T) {
		m := NewTryModel(TryConfig{})
		typeText(m, "3 weeks")
		m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
		assert.Equal(t, "", m.Input())
		assert.False(t, m.Trace().Result.Identified())
	})

	t.Run("input_limit", func(t *testing.T) {
		m := NewTryModel(TryConfig{MaxInputBytes: 3})
		typeText(m, "12 days")
		assert.Equal(t, "12 ", m.Input())
		assert.Contains(t, m.View(), "limited to 3 bytes")
	})
}

func TestTryModelHistory(t *testing.T) {
	m := NewTryModel(TryConfig{MaxHistory: 2})

	for _, s := range []string{"1 day", "2 weeks", "1 year 6 months"} {
		typeText(m, s)
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}

	// Blank lines are not kept
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	history := m.History()
	require.Len(t, history, 2)
	assert.Equal(t, "2 weeks", history[0].Input)
	assert.Equal(t, parser.DurationResult{Quantity: 545, Unit: parser.Day}, history[1].Result)
	assert.Equal(t, "", m.Input())
}

func TestTryModelQuit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := NewTryModel(TryConfig{})
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestTryModelWindowSize(t *testing.T) {
	m := NewTryModel(TryConfig{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.width)
}

func TestTryModelView(t *testing.T) {
	m := NewTryModel(TryConfig{})
	assert.Contains(t, m.View(), "Type a duration")

	typeText(m, "6-months")
	view := m.View()
	assert.Contains(t, view, "6-months")
	assert.Contains(t, view, "month")
	assert.Contains(t, view, "single_unit")
	assert.Contains(t, view, "esc")
}

// =============================================================================
// Component Tests
// =============================================================================

func TestResultComponent(t *testing.T) {
	t.Run("unidentified_without_unit", func(t *testing.T) {
		view := NewResultComponent(parser.NewParser().Explain("whenever"), 80).View()
		assert.Contains(t, view, "unidentified")
		assert.Contains(t, view, "no_unit")
	})

	t.Run("unidentified_with_unit", func(t *testing.T) {
		view := NewResultComponent(parser.NewParser().Explain("a few weeks"), 80).View()
		assert.Contains(t, view, "unidentified")
		assert.Contains(t, view, "single_unit")
		assert.NotContains(t, view, "no_unit")
	})

	t.Run("shows_days_for_other_units", func(t *testing.T) {
		view := NewResultComponent(parser.NewParser().Explain("2 weeks"), 80).View()
		assert.Contains(t, view, "≈ 14 days")
	})
}

func TestHistoryComponent(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", NewHistoryComponent(nil, 5).View())
	})

	t.Run("newest_first", func(t *testing.T) {
		view := NewHistoryComponent([]HistoryEntry{
			{Input: "first", Result: parser.Unidentified},
			{Input: "second", Result: parser.Unidentified},
		}, 5).View()
		assert.Less(t, strings.Index(view, "second"), strings.Index(view, "first"))
	})
}

func TestHelpBar(t *testing.T) {
	bar := HelpBar()
	assert.Contains(t, bar, "enter")
	assert.Contains(t, bar, "quit")
}

func TestFormatResult(t *testing.T) {
	assert.Contains(t, FormatResult(parser.DurationResult{Quantity: 1.5, Unit: parser.Day}), "1.5")
	assert.Contains(t, FormatResult(parser.Unidentified), "unidentified")
}
