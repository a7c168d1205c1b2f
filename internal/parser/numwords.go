package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/manav03panchal/humanspan/internal/errors"
)

// numberWord is the (scale, increment) pair applied when a word is read.
type numberWord struct {
	scale     float64
	increment float64
}

// numberWords is built on first use and never modified afterwards.
var numberWords = sync.OnceValue(buildNumberWords)

func buildNumberWords() map[string]numberWord {
	units := map[string]float64{
		"zero":      0,
		"half":      0.5,
		"one":       1,
		"a":         1,
		"two":       2,
		"three":     3,
		"four":      4,
		"five":      5,
		"six":       6,
		"seven":     7,
		"eight":     8,
		"nine":      9,
		"ten":       10,
		"eleven":    11,
		"twelve":    12,
		"thirteen":  13,
		"fourteen":  14,
		"fifteen":   15,
		"sixteen":   16,
		"seventeen": 17,
		"eighteen":  18,
		"nineteen":  19,
	}
	tens := []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
	scales := []string{"hundred", "thousand", "million", "billion", "trillion"}

	words := make(map[string]numberWord, len(units)+len(tens)+len(scales)+1)
	words["and"] = numberWord{scale: 1, increment: 0}
	for w, v := range units {
		words[w] = numberWord{scale: 1, increment: v}
	}
	for i, w := range tens {
		if w == "" {
			continue
		}
		words[w] = numberWord{scale: 1, increment: float64(i * 10)}
	}
	for i, w := range scales {
		exp := i * 3
		if exp == 0 {
			exp = 2
		}
		words[w] = numberWord{scale: math.Pow10(exp), increment: 0}
	}
	return words
}

// IllegalWordError reports a word that is neither a numeral nor a number word.
type IllegalWordError struct {
	Word string
}

func (e *IllegalWordError) Error() string {
	return fmt.Sprintf("illegal word: %q", e.Word)
}

func (e *IllegalWordError) Unwrap() error {
	return errors.ErrIllegalWord
}

// parseLiteral parses a plain integer or decimal. Surrounding whitespace is
// ignored; NaN and infinities are rejected.
func parseLiteral(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: non-finite number %q", errors.ErrIllegalWord, s)
	}
	return v, nil
}

// ResolveNumber converts a numeral or a phrase of English number words into
// its value, e.g. "1.5", "twenty one", "one thousand five hundred".
// "a half" and "half" both read as 0.5; "a" alone reads as 1. Text with no
// words at all reads as 0, so an empty range endpoint counts as zero.
func ResolveNumber(text string) (float64, error) {
	if v, err := parseLiteral(text); err == nil {
		return v, nil
	}

	text = strings.ReplaceAll(text, "a half", "half")
	fields := strings.Fields(text)

	table := numberWords()
	var current, result float64
	for _, word := range fields {
		nw, ok := table[word]
		if !ok {
			return 0, &IllegalWordError{Word: word}
		}
		current = current*nw.scale + nw.increment
		if nw.scale > 100 {
			result += current
			current = 0
		}
	}
	return result + current, nil
}
