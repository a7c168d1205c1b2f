package parser

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/humanspan/internal/errors"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		quantity float64
		unit     Unit
	}{
		// Plain quantities
		{"integer_days", "2 days", 2, Day},
		{"decimal_hours", "2.5 hours", 2.5, Hour},
		{"abbreviation", "3 wks", 3, Week},
		{"misspelling", "4 montths", 4, Month},
		{"uppercase", "3 Weeks", 3, Week},
		{"article", "A Day", 1, Day},
		{"trailing_period", "a day.", 1, Day},
		{"false_hyphen", "6-months", 6, Month},
		{"glued_number", "3week", 3, Week},

		// Ranges
		{"range_to", "2 to 4 days", 3, Day},
		{"range_or", "2 or 3 weeks", 2.5, Week},
		{"range_words", "A day or two", 1.5, Day},
		{"range_hyphen_fraction", "3 1/2 - 4 months", 3.75, Month},

		// Empty range endpoints count as zero
		{"leading_hyphen", "-5 days", 2.5, Day},
		{"open_range", "to 4 days", 2, Day},
		{"bare_hyphen", "- days", 0, Day},
		{"unit_only", "days", 0, Day},

		// Fractions and number words
		{"and_fraction", "1 and 1/2 day", 1.5, Day},
		{"and_a_half", "1 and a half day", 1.5, Day},
		{"run_together_fraction", "11/2 day", 1.5, Day},
		{"number_words", "twenty one days", 21, Day},
		{"scaled_words", "one and a half thousand days", 1500, Day},
		{"half_words", "one and a half months", 1.5, Month},

		// Several units
		{"two_unit_sum", "1 year 6 months", 545, Day},
		{"two_unit_sum_days", "2 weeks 3 days", 17, Day},
		{"cross_unit_average", "1 day to 2 weeks", 7.5, Day},
		{"cross_unit_or", "2 weeks or 1 month", 22, Day},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDuration(tt.input)
			assert.True(t, got.Identified(), "expected %q to be identified", tt.input)
			assert.Equal(t, tt.unit, got.Unit)
			assert.InDelta(t, tt.quantity, got.Quantity, 1e-9)
		})
	}
}

func TestParseDurationUnidentified(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"bare_number", "128"},
		{"nan", "NaN"},
		{"vague_quantity", "a few weeks"},
		{"relative", "last 12 hours"},
		{"unknown_unit_word", "1weekend"},
		{"three_units", "1 year 2 months 3 days"},
		{"comma_glued_units", "5 months,3week"},
		{"prose", "whenever you like"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDuration(tt.input)
			assert.Equal(t, Unidentified, got)
			q, unit := got.Values()
			assert.Equal(t, 0.0, q)
			assert.Equal(t, "unidentified", unit)
		})
	}
}

func TestDurationResultMethods(t *testing.T) {
	t.Run("identified", func(t *testing.T) {
		r := DurationResult{Quantity: 2.5, Unit: Week}
		assert.True(t, r.Identified())
		assert.Equal(t, "week", r.UnitLabel())
		q, u := r.Values()
		assert.Equal(t, 2.5, q)
		assert.Equal(t, "week", u)
		assert.Equal(t, 17.5, r.Days())
		assert.Equal(t, time.Duration(17.5*float64(24*time.Hour)), r.Duration())
		assert.Equal(t, "2.5 week", r.String())
	})

	t.Run("hours", func(t *testing.T) {
		r := DurationResult{Quantity: 36, Unit: Hour}
		assert.Equal(t, 36*time.Hour, r.Duration())
		assert.Equal(t, "36 hour", r.String())
	})

	t.Run("unidentified", func(t *testing.T) {
		assert.False(t, Unidentified.Identified())
		assert.Equal(t, "unidentified", Unidentified.UnitLabel())
		assert.Equal(t, 0.0, Unidentified.Days())
		assert.Equal(t, time.Duration(0), Unidentified.Duration())
		assert.Equal(t, "unidentified", Unidentified.String())
	})

	t.Run("quantity_without_unit", func(t *testing.T) {
		q, u := DurationResult{Quantity: 7}.Values()
		assert.Equal(t, 0.0, q)
		assert.Equal(t, "unidentified", u)
	})
}

func TestExplain(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name      string
		input     string
		branch    Branch
		strategy  string
		attempts  int
		unitCount int
	}{
		{"literal", "2 days", BranchSingleUnit, "literal", 1, 1},
		{"range_average", "2 to 4 days", BranchSingleUnit, "range_average", 2, 1},
		{"chunk_sum", "twenty one days", BranchSingleUnit, "chunk_sum", 3, 1},
		{"and_fraction_sum", "1 and 1/2 day", BranchSingleUnit, "and_fraction_sum", 4, 1},
		{"and_word_sum", "1 and a half day", BranchSingleUnit, "and_word_sum", 5, 1},
		{"empty_endpoint", "to 4 days", BranchSingleUnit, "range_average", 2, 1},
		{"unit_only", "days", BranchSingleUnit, "range_average", 2, 1},
		{"all_failed", "a few weeks", BranchSingleUnit, "", 5, 1},
		{"no_unit", "128", BranchNoUnit, "", 0, 0},
		{"two_unit_sum", "1 year 6 months", BranchMultiUnit, "two_unit_sum", 1, 2},
		{"cross_unit_average", "1 day to 2 weeks", BranchMultiUnit, "cross_unit_average", 1, 2},
		{"multi_unit_failed", "1 year 2 months 3 days", BranchMultiUnit, "", 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := p.Explain(tt.input)
			assert.Equal(t, tt.input, tr.Input)
			assert.Equal(t, tt.branch, tr.Branch)
			assert.Equal(t, tt.strategy, tr.Strategy())
			assert.Len(t, tr.Attempts, tt.attempts)
			assert.Equal(t, tt.unitCount, tr.UnitCount)
			assert.Len(t, tr.Units, tt.unitCount)
			assert.Equal(t, p.Parse(tt.input), tr.Result)
		})
	}
}

func TestExplainDetails(t *testing.T) {
	t.Run("normalized_text", func(t *testing.T) {
		tr := NewParser().Explain("6-Months.")
		assert.Equal(t, "6  months", tr.Normalized)
		assert.Equal(t, []Unit{Month}, tr.Units)
	})

	t.Run("failed_attempts_carry_errors", func(t *testing.T) {
		tr := NewParser().Explain("a few weeks")
		require.Len(t, tr.Attempts, len(SingleUnitStrategies()))
		for i, a := range tr.Attempts {
			assert.Equal(t, SingleUnitStrategies()[i], a.Strategy)
			assert.Error(t, a.Err)
		}
		var iwe *IllegalWordError
		assert.ErrorAs(t, tr.Attempts[2].Err, &iwe)
		assert.Equal(t, "few", iwe.Word)
	})

	t.Run("multi_unit_error", func(t *testing.T) {
		tr := NewParser().Explain("1 year 2 months 3 days")
		require.Len(t, tr.Attempts, 1)
		assert.ErrorIs(t, tr.Attempts[0].Err, errors.ErrUnidentified)
	})
}

func TestSingleUnitStrategies(t *testing.T) {
	assert.Equal(t,
		[]string{"literal", "range_average", "chunk_sum", "and_fraction_sum", "and_word_sum"},
		SingleUnitStrategies())
}

func TestParserWithUnitTable(t *testing.T) {
	table, err := NewUnitTable(map[Unit][]string{Week: {"wk"}, Day: {"dys"}})
	require.NoError(t, err)
	p := NewParser(WithUnitTable(table))

	assert.Same(t, table, p.Units())
	assert.Equal(t, DurationResult{Quantity: 3, Unit: Week}, p.Parse("3 wk"))
	assert.Equal(t, DurationResult{Quantity: 9, Unit: Day}, p.Parse("1 wk 2 dys"))
	assert.Equal(t, Unidentified, ParseDuration("3 wk"))

	t.Run("nil_table_ignored", func(t *testing.T) {
		p := NewParser(WithUnitTable(nil))
		assert.Same(t, DefaultUnitTable(), p.Units())
	})
}

func TestParserWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := NewParser(WithLogger(logger))

	p.Parse("2 to 4 days")
	out := buf.String()
	assert.Contains(t, out, `"msg":"duration parsed"`)
	assert.Contains(t, out, `"branch":"single_unit"`)
	assert.Contains(t, out, `"strategy":"range_average"`)
	assert.Contains(t, out, `"quantity":3`)
	assert.Contains(t, out, `"unit":"day"`)

	t.Run("quiet_above_debug", func(t *testing.T) {
		var quiet bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelInfo}))
		NewParser(WithLogger(logger)).Parse("2 days")
		assert.Empty(t, quiet.String())
	})
}

func BenchmarkParseDuration(b *testing.B) {
	inputs := []string{"2 days", "2 to 4 days", "one and a half months", "1 year 6 months", "a few weeks"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseDuration(inputs[i%len(inputs)])
	}
}
