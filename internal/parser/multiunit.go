package parser

import (
	"regexp"
	"strings"
)

// twoUnitPattern matches canonical "<N> <unit> <N> <unit>" token streams.
var twoUnitPattern = regexp.MustCompile(`^[0-9]+ (hour|day|week|month|year) [0-9]+ (hour|day|week|month|year)$`)

// MatchesTwoUnitPattern reports whether text is exactly two number/unit pairs
// written with canonical unit names, e.g. "1 year 6 month".
func MatchesTwoUnitPattern(text string) bool {
	return twoUnitPattern.MatchString(text)
}

// GroupIntoPairs regroups a token stream into consecutive two-word groups.
// A trailing odd word forms a group of its own.
func GroupIntoPairs(text string) []string {
	words := strings.Fields(text)
	pairs := make([]string, 0, (len(words)+1)/2)
	for i := 0; i < len(words); i += 2 {
		end := min(i+2, len(words))
		pairs = append(pairs, strings.Join(words[i:end], " "))
	}
	return pairs
}
