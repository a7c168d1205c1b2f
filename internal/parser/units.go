package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/manav03panchal/humanspan/internal/errors"
)

// Unit is one of the five canonical duration units.
// The zero value is not a valid unit.
type Unit uint8

const (
	Hour Unit = iota + 1
	Day
	Week
	Month
	Year
)

// UnidentifiedLabel is the unit label reported when no duration was recognized.
const UnidentifiedLabel = "unidentified"

// Units lists the canonical units in ascending size.
var Units = []Unit{Hour, Day, Week, Month, Year}

// String returns the canonical unit name.
func (u Unit) String() string {
	switch u {
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// Valid reports whether u is one of the canonical units.
func (u Unit) Valid() bool {
	return u >= Hour && u <= Year
}

// ParseUnit returns the unit with the given canonical name.
func ParseUnit(name string) (Unit, error) {
	for _, u := range Units {
		if u.String() == name {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errors.ErrUnknownUnit, name)
}

// defaultSynonyms holds the surface forms recognized for each unit,
// including the common misspellings seen in free-text duration fields.
var defaultSynonyms = map[Unit][]string{
	Hour:  {"hour", "hours", "hr", "hrs", "h"},
	Day:   {"day", "days", "d"},
	Week:  {"week", "weeks", "wks", "w"},
	Month: {"mont", "month", "months", "montths", "monnths", "m", "mo", "mths"},
	Year:  {"year", "years", "yr", "y", "yrs"},
}

// ParsedToken is the result of classifying a single word.
type ParsedToken struct {
	Matched  bool   // the word is a unit keyword
	Key      string // canonical unit name when matched, the word otherwise
	Leftover string // the original word when unmatched, empty otherwise
	Unit     Unit   // set when matched
}

// UnitTable maps surface forms to canonical units. It is immutable once built
// and safe for concurrent use.
type UnitTable struct {
	lookup   map[string]Unit
	synonyms map[Unit][]string
}

var defaultTable = mustUnitTable(nil)

// DefaultUnitTable returns the built-in synonym table.
func DefaultUnitTable() *UnitTable {
	return defaultTable
}

// NewUnitTable builds a table from the built-in synonyms plus extra ones.
// Extra synonyms are lowercased and trimmed; a synonym already claimed by a
// different unit is rejected.
func NewUnitTable(extra map[Unit][]string) (*UnitTable, error) {
	for u := range extra {
		if !u.Valid() {
			return nil, fmt.Errorf("%w: %s", errors.ErrUnknownUnit, u)
		}
	}

	t := &UnitTable{
		lookup:   make(map[string]Unit),
		synonyms: make(map[Unit][]string, len(Units)),
	}
	for _, u := range Units {
		for _, s := range defaultSynonyms[u] {
			t.add(u, s)
		}
	}

	// Deterministic order so conflicts are reported the same way every time.
	for _, u := range Units {
		words, ok := extra[u]
		if !ok {
			continue
		}
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" || strings.ContainsAny(w, " \t\n,") {
				return nil, fmt.Errorf("%w: synonym %q for %s", errors.ErrInvalidConfig, w, u)
			}
			if owner, ok := t.lookup[w]; ok {
				if owner != u {
					return nil, fmt.Errorf("%w: synonym %q already maps to %s", errors.ErrInvalidConfig, w, owner)
				}
				continue
			}
			t.add(u, w)
		}
	}
	return t, nil
}

func mustUnitTable(extra map[Unit][]string) *UnitTable {
	t, err := NewUnitTable(extra)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *UnitTable) add(u Unit, s string) {
	t.lookup[s] = u
	t.synonyms[u] = append(t.synonyms[u], s)
}

// Match classifies a token as a unit keyword. Matching is exact; callers are
// expected to have lowercased the text already.
func (t *UnitTable) Match(token string) ParsedToken {
	if u, ok := t.lookup[token]; ok {
		return ParsedToken{Matched: true, Key: u.String(), Unit: u}
	}
	return ParsedToken{Key: token, Leftover: token}
}

// Synonyms returns a copy of the surface forms registered for u.
func (t *UnitTable) Synonyms(u Unit) []string {
	out := make([]string, len(t.synonyms[u]))
	copy(out, t.synonyms[u])
	return out
}

// Words returns every registered surface form, sorted.
func (t *UnitTable) Words() []string {
	out := make([]string, 0, len(t.lookup))
	for w := range t.lookup {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// MatchUnit classifies token against the built-in table.
func MatchUnit(token string) ParsedToken {
	return defaultTable.Match(token)
}
