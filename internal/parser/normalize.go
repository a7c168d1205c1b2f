package parser

import (
	"regexp"
	"strings"
)

// falseHyphenPattern matches a hyphen gluing a number to a word, as in "6-months".
var falseHyphenPattern = regexp.MustCompile(`[0-9]-[A-Za-z]`)

// numericLiteralPattern matches integers and decimals.
var numericLiteralPattern = regexp.MustCompile(`[0-9]+(\.[0-9]+)?`)

// HasFalseHyphen reports whether text joins a number to a word with a hyphen.
// Such a hyphen attaches a unit rather than separating a range.
func HasFalseHyphen(text string) bool {
	return falseHyphenPattern.MatchString(text)
}

// SpaceNumbers surrounds every numeric literal with spaces so it tokenizes
// separately from adjacent letters ("3week" -> " 3 week").
func SpaceNumbers(text string) string {
	return numericLiteralPattern.ReplaceAllString(text, " $0 ")
}

// NormalizeText prepares raw input for tokenizing: false hyphens become
// spaces, numbers are spaced out, the text is lowercased and leading or
// trailing "." and "," are dropped.
func NormalizeText(text string) string {
	if HasFalseHyphen(text) {
		text = strings.ReplaceAll(text, "-", " ")
	}
	text = SpaceNumbers(text)
	text = strings.ToLower(text)
	text = strings.TrimSpace(text)
	return strings.Trim(text, ".,")
}

// NormalizeFraction rewrites the spaced-out fraction "1 / 2" as ".5" and
// removes all whitespace. It is meant for short chunks such as "3 1 / 2",
// not whole sentences.
func NormalizeFraction(chunk string) string {
	chunk = strings.ReplaceAll(chunk, "1 / 2", ".5")
	return strings.Join(strings.Fields(chunk), "")
}
