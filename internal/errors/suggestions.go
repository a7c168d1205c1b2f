package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// User input errors
	ErrIllegalWord:    "Spell numbers as digits (2, 1.5) or English words (two, one and a half).",
	ErrUnknownUnit:    "Units are hour, day, week, month and year. Run 'humanspan units' for synonyms.",
	ErrUnidentified:   "Write a number followed by a unit, e.g. '2 days' or '2 to 4 weeks'.",
	ErrInputTooLarge:  "Split the input into one duration per line, or raise input.max_bytes (HUMANSPAN_MAX_INPUT).",
	ErrNoInput:        "Pass text as arguments, a file path, or pipe lines on stdin.",
	ErrInvalidConfig:  "Check the units section of your config file. Run 'humanspan config' to see the effective config.",
	ErrInvalidFormat:  "Use --format cli, json or plain.",
	ErrConfigNotFound: "Create the file or unset HUMANSPAN_CONFIG to use the default location.",

	// System errors
	ErrPermissionDenied: "Check file permissions on the input file and config directory.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// A UserError carries the most specific suggestion
	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}

// GetCategorySuggestion returns a generic suggestion based on error category.
func GetCategorySuggestion(err error) string {
	switch GetCategory(err) {
	case CategoryUser:
		return "Check your input and try again. Use --help for usage information."
	case CategorySystem:
		return "This is a system error. Check file permissions and try again."
	default:
		return ""
	}
}

// CommandExamples provides example commands for common errors.
var CommandExamples = map[error][]string{
	ErrUnidentified: {
		"humanspan parse 2 to 4 days",
		"humanspan parse \"1 year 6 months\"",
		"humanspan parse --explain \"one and a half weeks\"",
	},
	ErrNoInput: {
		"humanspan batch durations.txt",
		"cat durations.txt | humanspan batch",
	},
	ErrInvalidConfig: {
		"humanspan config",
		"humanspan units",
	},
}

// GetExamples returns example commands for an error.
func GetExamples(err error) []string {
	for knownErr, examples := range CommandExamples {
		if errors.Is(err, knownErr) {
			return examples
		}
	}
	return nil
}
