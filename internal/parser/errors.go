package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/humanspan/internal/errors"
)

// DurationParseError reports text that does not describe a recognizable
// duration, with examples of what does.
type DurationParseError struct {
	Input      string
	Message    string
	Examples   []string
	Suggestion string
}

func (e *DurationParseError) Error() string {
	return fmt.Sprintf("invalid duration '%s': %s", e.Input, e.Message)
}

func (e *DurationParseError) Unwrap() error {
	return errors.ErrUnidentified
}

// DurationExamples provides example duration phrasings.
var DurationExamples = []string{
	"2 days",
	"2 to 4 days",
	"2 or 3 weeks",
	"1 and 1/2 day",
	"one and a half months",
	"6-months",
	"1 year 6 months",
	"1 day to 2 weeks",
}

// NewDurationError creates a duration parse error with standard examples.
func NewDurationError(input string) *DurationParseError {
	return &DurationParseError{
		Input:      input,
		Message:    "no duration recognized",
		Examples:   DurationExamples,
		Suggestion: "Write a number followed by a unit (hours, days, weeks, months or years).",
	}
}

// FormatWithExamples returns the error message with example suggestions.
func (e *DurationParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// Validate parses text with p and returns a DurationParseError when nothing
// was recognized.
func (p *Parser) Validate(text string) (DurationResult, error) {
	res := p.Parse(text)
	if !res.Identified() {
		return res, NewDurationError(text)
	}
	return res, nil
}
