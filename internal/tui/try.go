package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/humanspan/internal/parser"
	"github.com/manav03panchal/humanspan/internal/validate"
)

// TryModel is the bubbletea model behind "humanspan try": it re-parses the
// input on every keystroke and keeps the entries confirmed with enter.
type TryModel struct {
	parser *parser.Parser

	input   []rune
	trace   parser.Trace
	history []HistoryEntry

	// UI state
	width   int
	message string

	// Configuration
	maxHistory int
	maxInput   int
}

// TryConfig holds configuration for the try model.
type TryConfig struct {
	Parser     *parser.Parser
	MaxHistory int
	// MaxInputBytes caps the input line (default: validate.DefaultMaxInputBytes).
	MaxInputBytes int
}

// NewTryModel creates a new try model.
func NewTryModel(config TryConfig) *TryModel {
	if config.Parser == nil {
		config.Parser = parser.NewParser()
	}
	if config.MaxHistory == 0 {
		config.MaxHistory = 5
	}
	if config.MaxInputBytes <= 0 {
		config.MaxInputBytes = validate.DefaultMaxInputBytes
	}

	m := &TryModel{
		parser:     config.Parser,
		maxHistory: config.MaxHistory,
		maxInput:   config.MaxInputBytes,
	}
	m.reparse()
	return m
}

// Init initializes the model.
func (m *TryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *TryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *TryModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		m.keep()

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}

	case tea.KeyCtrlU:
		m.input = m.input[:0]

	case tea.KeySpace:
		m.insert([]rune{' '})

	case tea.KeyRunes:
		m.insert(msg.Runes)

	default:
		return m, nil
	}

	m.reparse()
	return m, nil
}

func (m *TryModel) insert(runes []rune) {
	if len(string(m.input))+len(string(runes)) > m.maxInput {
		m.message = fmt.Sprintf("Input is limited to %d bytes", m.maxInput)
		return
	}
	m.input = append(m.input, runes...)
}

// keep moves the current input to the history and clears the line.
func (m *TryModel) keep() {
	text, err := validate.Input(string(m.input), m.maxInput)
	if err != nil || text == "" {
		return
	}
	m.history = append(m.history, HistoryEntry{Input: text, Result: m.parser.Parse(text)})
	if len(m.history) > m.maxHistory {
		m.history = m.history[len(m.history)-m.maxHistory:]
	}
	m.input = m.input[:0]
}

func (m *TryModel) reparse() {
	m.trace = m.parser.Explain(string(m.input))
}

// Input returns the current input line.
func (m *TryModel) Input() string {
	return string(m.input)
}

// Trace returns the parse trace of the current input.
func (m *TryModel) Trace() parser.Trace {
	return m.trace
}

// History returns the confirmed entries, oldest first.
func (m *TryModel) History() []HistoryEntry {
	out := make([]HistoryEntry, len(m.history))
	copy(out, m.history)
	return out
}

// View renders the model.
func (m *TryModel) View() string {
	var sections []string

	sections = append(sections, StyleTitle.Render("humanspan try"))
	sections = append(sections, StylePrompt.Render("› ")+string(m.input)+"█")

	if m.message != "" {
		sections = append(sections, StyleError.Render(m.message))
	}

	sections = append(sections, NewResultComponent(m.trace, m.width).View())

	if history := NewHistoryComponent(m.history, m.maxHistory).View(); history != "" {
		sections = append(sections, history)
	}

	sections = append(sections, HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Run starts the try TUI and returns the entries kept during the session.
func Run(config TryConfig) ([]HistoryEntry, error) {
	model := NewTryModel(config)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(*TryModel); ok {
		return m.History(), nil
	}
	return nil, nil
}
