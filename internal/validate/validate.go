// Package validate provides input validation helpers for humanspan.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/manav03panchal/humanspan/internal/errors"
)

// DefaultMaxInputBytes is the input limit used when none is configured.
const DefaultMaxInputBytes = 4096

// Input sanitizes one piece of duration text and checks it against maxBytes.
// A non-positive maxBytes means DefaultMaxInputBytes.
func Input(text string, maxBytes int) (string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxInputBytes
	}
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "")
	}
	text = SanitizeInput(text)
	if len(text) > maxBytes {
		ue := errors.NewUserErrorWithField("input", Preview(text, 40),
			fmt.Sprintf("longer than %d bytes", maxBytes),
			"Split the input into one duration per line, or raise input.max_bytes.")
		return "", fmt.Errorf("%w: %w", errors.ErrInputTooLarge, ue)
	}
	return text, nil
}

// NonEmpty validates that a string is not empty. The error matches
// errors.ErrNoInput.
func NonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		ue := errors.NewUserError(
			field+" cannot be empty",
			"Provide a value for "+field)
		return fmt.Errorf("%w: %w", errors.ErrNoInput, ue)
	}
	return nil
}

// Preview returns at most n runes of s followed by "..." when clipped.
func Preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
