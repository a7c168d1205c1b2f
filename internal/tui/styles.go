// Package tui provides the terminal user interface components for humanspan.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/humanspan/internal/output"
	"github.com/manav03panchal/humanspan/internal/parser"
)

// Color palette for the TUI.
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorWarning   = lipgloss.Color("#F59E0B") // Yellow
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorActive    = lipgloss.Color("#3B82F6") // Blue
	ColorBorder    = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the TUI.
var (
	// StyleTitle is used for section titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleSubtitle is used for labels and secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StylePrompt is used for the input prompt.
	StylePrompt = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	StyleQuantity = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorActive)

	StyleUnit = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// StyleUnidentified is used when no duration was recognized.
	StyleUnidentified = lipgloss.NewStyle().
				Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// StyleHelpDesc is used for keyboard shortcut descriptions.
	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Box styles for different sections.
var (
	StyleResultBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginBottom(1)

	// StyleIdentifiedBox is used once the input parses to a duration.
	StyleIdentifiedBox = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorSecondary).
				Padding(1, 2).
				MarginBottom(1)

	StyleHistoryBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)
)

// FormatResult renders a result as a styled "<quantity> <unit>".
func FormatResult(r parser.DurationResult) string {
	if !r.Identified() {
		return StyleUnidentified.Render(parser.UnidentifiedLabel)
	}
	return StyleQuantity.Render(output.FormatQuantity(r.Quantity)) + " " + StyleUnit.Render(r.Unit.String())
}
