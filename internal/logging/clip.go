package logging

import "unicode/utf8"

// MaxLoggedInput is how many runes of free text are kept in log records.
const MaxLoggedInput = 120

// ClipSuffix marks a clipped value.
const ClipSuffix = "..."

// Clip shortens free-text input for logging, keeping at most MaxLoggedInput
// runes.
func Clip(s string) string {
	if utf8.RuneCountInString(s) <= MaxLoggedInput {
		return s
	}
	runes := []rune(s)
	return string(runes[:MaxLoggedInput]) + ClipSuffix
}
