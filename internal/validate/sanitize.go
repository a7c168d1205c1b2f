package validate

import (
	"strings"
	"unicode"
)

// SanitizeInput cleans free text before parsing. Control characters become
// spaces so that words on either side stay separate; surrounding whitespace
// is trimmed.
func SanitizeInput(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(r)
	}

	return strings.TrimSpace(sb.String())
}

// IsComment reports whether a batch line is blank or a '#' comment.
func IsComment(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, "#")
}
