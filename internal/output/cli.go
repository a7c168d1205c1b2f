package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/humanspan/internal/parser"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#10B981") // Green
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning   = lipgloss.Color("#F59E0B") // Yellow
	colorError     = lipgloss.Color("#EF4444") // Red

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleQuantity = lipgloss.NewStyle().
			Bold(true)

	styleUnit = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleInput = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// Result formats a result as "<quantity> <unit>", or "unidentified".
func (c *CLIFormatter) Result(r parser.DurationResult) string {
	if !r.Identified() {
		return c.render(styleWarning, parser.UnidentifiedLabel)
	}
	return c.render(styleQuantity, FormatQuantity(r.Quantity)) + " " + c.render(styleUnit, r.Unit.String())
}

// PrintResult prints a single parse result.
func (c *CLIFormatter) PrintResult(input string, r parser.DurationResult) {
	c.Printf("%s → %s\n", c.render(styleInput, input), c.Result(r))
	if r.Identified() && r.Unit != parser.Day {
		c.Muted(fmt.Sprintf("  ≈ %s days", FormatQuantity(r.Days())))
	}
}

// PrintTrace prints every decision the parser made for one input.
func (c *CLIFormatter) PrintTrace(tr parser.Trace) {
	c.Title("Parse trace")
	c.Printf("  Input:      %s\n", c.render(styleInput, tr.Input))
	c.Printf("  Normalized: %s\n", tr.Normalized)

	units := make([]string, len(tr.Units))
	for i, u := range tr.Units {
		units[i] = u.String()
	}
	c.Printf("  Units:      %d [%s]\n", tr.UnitCount, strings.Join(units, " "))
	c.Printf("  Branch:     %s\n", tr.Branch)

	for _, a := range tr.Attempts {
		if a.Err != nil {
			c.Println("  " + c.render(styleMuted, "✗ "+a.Strategy+": "+a.Err.Error()))
			continue
		}
		c.Println("  " + c.render(styleSuccess, "✓ "+a.Strategy))
	}
	c.Printf("  Result:     %s\n", c.Result(tr.Result))
}

// PrintBatch prints batch results as a table followed by a summary line.
func (c *CLIFormatter) PrintBatch(items []BatchItem) {
	if len(items) == 0 {
		c.Muted("No input lines.")
		return
	}

	rows := make([]TableRow, 0, len(items))
	for _, it := range items {
		quantity, unit := "", parser.UnidentifiedLabel
		switch {
		case it.Err != nil:
			unit = "rejected"
		case it.Result.Identified():
			quantity = FormatQuantity(it.Result.Quantity)
			unit = it.Result.Unit.String()
		}
		rows = append(rows, TableRow{Columns: []string{fmt.Sprintf("%d", it.Line), it.Input, quantity, unit}})
	}
	RenderTable(c.Writer, []string{"LINE", "INPUT", "QUANTITY", "UNIT"}, rows)

	s := Summarize(items)
	msg := fmt.Sprintf("%d identified, %d unidentified", s.Identified, s.Unidentified)
	if s.Rejected > 0 {
		msg += fmt.Sprintf(", %d rejected", s.Rejected)
	}
	if s.Identified == s.Total {
		c.Success(msg)
	} else {
		c.Warning(msg)
	}
}

// PrintUnits prints the canonical units with their day factors and synonyms.
func (c *CLIFormatter) PrintUnits(table *parser.UnitTable) {
	rows := make([]TableRow, 0, len(parser.Units))
	for _, u := range parser.Units {
		rows = append(rows, TableRow{Columns: []string{
			u.String(),
			FormatQuantity(parser.DaysPer(u)),
			strings.Join(table.Synonyms(u), ", "),
		}})
	}
	RenderTable(c.Writer, []string{"UNIT", "DAYS", "SYNONYMS"}, rows)
}
