package parser

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"

	"github.com/manav03panchal/humanspan/internal/errors"
)

// checkResult verifies the shape every parse result must have.
func checkResult(r DurationResult) bool {
	if !r.Identified() {
		return r == Unidentified
	}
	return !math.IsNaN(r.Quantity) && !math.IsInf(r.Quantity, 0)
}

func TestParseDurationProperties(t *testing.T) {
	cfg := &quick.Config{MaxCount: 2000}

	t.Run("well_formed_result", func(t *testing.T) {
		f := func(s string) bool {
			return checkResult(ParseDuration(s))
		}
		assert.NoError(t, quick.Check(f, cfg))
	})

	t.Run("deterministic", func(t *testing.T) {
		f := func(s string) bool {
			return ParseDuration(s) == ParseDuration(s)
		}
		assert.NoError(t, quick.Check(f, cfg))
	})

	t.Run("number_then_unit", func(t *testing.T) {
		f := func(n uint16, pick uint8) bool {
			u := Units[int(pick)%len(Units)]
			syn := DefaultUnitTable().Synonyms(u)
			word := syn[int(pick)%len(syn)]
			r := ParseDuration(formatCount(n) + " " + word)
			return r == DurationResult{Quantity: float64(n), Unit: u}
		}
		assert.NoError(t, quick.Check(f, cfg))
	})

	t.Run("range_is_average", func(t *testing.T) {
		f := func(a, b uint16) bool {
			r := ParseDuration(formatCount(a) + " to " + formatCount(b) + " weeks")
			return r.Unit == Week && r.Quantity == (float64(a)+float64(b))/2
		}
		assert.NoError(t, quick.Check(f, cfg))
	})
}

func formatCount(n uint16) string {
	return strconv.Itoa(int(n))
}

func TestParseDurationOverflow(t *testing.T) {
	t.Run("number_words", func(t *testing.T) {
		text := "one" + strings.Repeat(" hundred", 160) + " days"
		tr := NewParser().Explain(text)
		assert.ErrorIs(t, tr.Attempts[2].Err, errors.ErrIllegalWord)
		assert.True(t, checkResult(tr.Result))
	})

	t.Run("converted_to_days", func(t *testing.T) {
		text := strings.Repeat("9", 307) + " years 1 month"
		assert.Equal(t, Unidentified, ParseDuration(text))
	})
}

func TestParserConcurrentUse(t *testing.T) {
	table, err := NewUnitTable(map[Unit][]string{Week: {"wk"}})
	assert.NoError(t, err)
	p := NewParser(WithUnitTable(table))

	inputs := map[string]DurationResult{
		"2 to 4 days":     {Quantity: 3, Unit: Day},
		"3 wk":            {Quantity: 3, Unit: Week},
		"1 year 6 months": {Quantity: 545, Unit: Day},
		"a few weeks":     Unidentified,
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				for in, want := range inputs {
					if got := p.Parse(in); got != want {
						t.Errorf("Parse(%q) = %v, want %v", in, got, want)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
