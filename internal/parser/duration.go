package parser

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/manav03panchal/humanspan/internal/errors"
	"github.com/manav03panchal/humanspan/internal/logging"
)

// DurationResult is the normalized duration extracted from a piece of text.
// The zero value is the unidentified result: no unit and a zero quantity.
type DurationResult struct {
	Quantity float64
	Unit     Unit
}

// Unidentified is returned whenever no duration could be recognized.
var Unidentified = DurationResult{}

// Identified reports whether a unit was recognized.
func (r DurationResult) Identified() bool {
	return r.Unit.Valid()
}

// UnitLabel returns the canonical unit name, or "unidentified".
func (r DurationResult) UnitLabel() string {
	if !r.Identified() {
		return UnidentifiedLabel
	}
	return r.Unit.String()
}

// Values returns the result as a (quantity, unit label) pair.
func (r DurationResult) Values() (float64, string) {
	if !r.Identified() {
		return 0, UnidentifiedLabel
	}
	return r.Quantity, r.Unit.String()
}

// Days returns the day-equivalent of the result, or 0 when unidentified.
func (r DurationResult) Days() float64 {
	d, err := ToDays(r.Quantity, r.Unit)
	if err != nil {
		return 0
	}
	return d
}

// Duration returns the day-equivalent as a time.Duration.
func (r DurationResult) Duration() time.Duration {
	return time.Duration(r.Days() * float64(24*time.Hour))
}

func (r DurationResult) String() string {
	if !r.Identified() {
		return UnidentifiedLabel
	}
	return strconv.FormatFloat(r.Quantity, 'f', -1, 64) + " " + r.Unit.String()
}

// Branch names the decision taken on the number of unit keywords found.
type Branch string

const (
	BranchNoUnit     Branch = "no_unit"
	BranchSingleUnit Branch = "single_unit"
	BranchMultiUnit  Branch = "multi_unit"
)

// Attempt records one strategy tried while parsing. Err is nil for the
// strategy that produced the result.
type Attempt struct {
	Strategy string
	Err      error
}

// Trace describes how a result was reached.
type Trace struct {
	Input      string
	Normalized string
	UnitCount  int
	Units      []Unit
	Branch     Branch
	Attempts   []Attempt
	Result     DurationResult
}

// Strategy returns the name of the strategy that produced the result, or ""
// when the input was unidentified.
func (t Trace) Strategy() string {
	if !t.Result.Identified() {
		return ""
	}
	for _, a := range t.Attempts {
		if a.Err == nil {
			return a.Strategy
		}
	}
	return ""
}

// Parser extracts durations from free text. A Parser is immutable and safe
// for concurrent use.
type Parser struct {
	units  *UnitTable
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithUnitTable makes the parser recognize the synonyms in t.
func WithUnitTable(t *UnitTable) Option {
	return func(p *Parser) {
		if t != nil {
			p.units = t
		}
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = l
	}
}

// NewParser creates a parser using the built-in unit table unless overridden.
func NewParser(opts ...Option) *Parser {
	p := &Parser{units: defaultTable}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// ParseDuration extracts a duration from text using the built-in unit table.
// Supports inputs like:
//   - "2 days", "6-months", "a day."
//   - "2 to 4 days", "2 or 3 weeks" (ranges are averaged)
//   - "1 and 1/2 day", "one and a half day"
//   - "1 year 6 months", "1 day to 2 weeks" (converted to days)
//
// Anything else yields Unidentified; it never fails.
func ParseDuration(text string) DurationResult {
	return defaultParser.Parse(text)
}

// Units returns the table the parser matches unit keywords against.
func (p *Parser) Units() *UnitTable {
	return p.units
}

// Parse extracts a duration from text.
func (p *Parser) Parse(text string) DurationResult {
	return p.Explain(text).Result
}

// Explain parses text and reports the steps taken.
func (p *Parser) Explain(text string) Trace {
	tr := Trace{Input: text, Normalized: NormalizeText(text)}
	sc := p.scan(strings.Fields(tr.Normalized))
	tr.UnitCount = sc.unitCount
	tr.Units = sc.units

	switch {
	case sc.unitCount == 0:
		tr.Branch = BranchNoUnit
	case sc.unitCount == 1:
		tr.Branch = BranchSingleUnit
		tr.Result, tr.Attempts = p.parseSingleUnit(sc)
	default:
		tr.Branch = BranchMultiUnit
		tr.Result, tr.Attempts = p.parseMultiUnit(tr.Normalized)
	}

	p.log().Debug("duration parsed",
		logging.KeyInput, logging.Clip(text),
		logging.KeyBranch, string(tr.Branch),
		logging.KeyStrategy, tr.Strategy(),
		logging.KeyQuantity, tr.Result.Quantity,
		logging.KeyUnit, tr.Result.UnitLabel(),
	)
	return tr
}

func (p *Parser) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return logging.Logger()
}

// scanResult is the classification of a sequence of words.
type scanResult struct {
	unitCount  int
	units      []Unit
	leftWords  []string
	cleanWords []string
}

func (s scanResult) leftString() string { return strings.Join(s.leftWords, " ") }
func (s scanResult) cleanString() string { return strings.Join(s.cleanWords, " ") }

func (p *Parser) scan(words []string) scanResult {
	var sc scanResult
	for _, w := range words {
		tok := p.units.Match(w)
		sc.cleanWords = append(sc.cleanWords, tok.Key)
		if tok.Matched {
			sc.unitCount++
			sc.units = append(sc.units, tok.Unit)
			continue
		}
		sc.leftWords = append(sc.leftWords, tok.Leftover)
	}
	return sc
}

// Separators between range endpoints. The single-unit branch also splits on
// commas; the multi-unit branch tokenizes on commas instead.
var (
	rangeSeparators     = regexp.MustCompile(`-|to |or |,`)
	multiUnitSeparators = regexp.MustCompile(`-|to |or `)
	additiveSeparator   = "and "
)

// quantityStrategy turns the non-unit words of a single-unit phrase into a
// quantity.
type quantityStrategy struct {
	name    string
	resolve func(left string) (float64, error)
}

// singleUnitStrategies are tried in order; the first success wins.
var singleUnitStrategies = []quantityStrategy{
	{name: "literal", resolve: parseLiteral},
	{name: "range_average", resolve: averageRange},
	{name: "chunk_sum", resolve: sumChunks},
	{name: "and_fraction_sum", resolve: sumAndFractions},
	{name: "and_word_sum", resolve: sumAndWords},
}

// SingleUnitStrategies returns the names of the single-unit strategies in the
// order they are tried.
func SingleUnitStrategies() []string {
	names := make([]string, len(singleUnitStrategies))
	for i, s := range singleUnitStrategies {
		names[i] = s.name
	}
	return names
}

func (p *Parser) parseSingleUnit(sc scanResult) (DurationResult, []Attempt) {
	left := sc.leftString()
	attempts := make([]Attempt, 0, len(singleUnitStrategies))
	for _, s := range singleUnitStrategies {
		q, err := s.resolve(left)
		if err == nil {
			err = checkFinite(q)
		}
		attempts = append(attempts, Attempt{Strategy: s.name, Err: err})
		if err == nil {
			return DurationResult{Quantity: q, Unit: sc.units[0]}, attempts
		}
	}
	return Unidentified, attempts
}

// checkFinite rejects quantities that overflowed, e.g. a long run of
// "trillion" or a 300-digit year count converted to days.
func checkFinite(q float64) error {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return fmt.Errorf("%w: quantity out of range", errors.ErrIllegalWord)
	}
	return nil
}

// averageRange averages the endpoints of "2 to 4", "2 or 3", "3 1/2 - 4".
func averageRange(left string) (float64, error) {
	chunks := rangeSeparators.Split(left, -1)
	var sum float64
	for _, c := range chunks {
		v, err := ResolveNumber(NormalizeFraction(strings.TrimSpace(c)))
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum / float64(len(chunks)), nil
}

// sumChunks adds up word-number chunks such as "one and a half thousand".
func sumChunks(left string) (float64, error) {
	var sum float64
	for _, c := range rangeSeparators.Split(left, -1) {
		v, err := ResolveNumber(strings.TrimSpace(c))
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// andPieces drops range separators and splits on "and ".
func andPieces(left string) []string {
	joined := strings.Join(rangeSeparators.Split(left, -1), "")
	return strings.Split(joined, additiveSeparator)
}

// sumAndFractions handles "1 and 1 / 2".
func sumAndFractions(left string) (float64, error) {
	var sum float64
	for _, piece := range andPieces(left) {
		v, err := parseLiteral(NormalizeFraction(piece))
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// sumAndWords handles "1 and a half" by resolving every word on its own.
func sumAndWords(left string) (float64, error) {
	var sum float64
	var n int
	for _, piece := range andPieces(left) {
		piece = strings.ReplaceAll(piece, "a half", "half")
		for _, w := range strings.Fields(piece) {
			v, err := ResolveNumber(w)
			if err != nil {
				return 0, err
			}
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: no quantity in %q", errors.ErrIllegalWord, left)
	}
	return sum, nil
}

// Multi-unit strategy names.
const (
	strategyTwoUnitSum       = "two_unit_sum"
	strategyCrossUnitAverage = "cross_unit_average"
)

func splitWordsAndCommas(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

func (p *Parser) parseMultiUnit(normalized string) (DurationResult, []Attempt) {
	chunks := multiUnitSeparators.Split(normalized, -1)
	scans := make([]scanResult, len(chunks))
	oneEach := true
	for i, c := range chunks {
		scans[i] = p.scan(splitWordsAndCommas(c))
		if scans[i].unitCount != 1 {
			oneEach = false
		}
	}

	if !oneEach {
		res, err := sumTwoUnits(scans[0].cleanString())
		if err == nil {
			err = checkFinite(res.Quantity)
		}
		if err != nil {
			return Unidentified, []Attempt{{Strategy: strategyTwoUnitSum, Err: err}}
		}
		return res, []Attempt{{Strategy: strategyTwoUnitSum}}
	}

	res, err := averageAcrossUnits(scans)
	if err == nil {
		err = checkFinite(res.Quantity)
	}
	if err != nil {
		return Unidentified, []Attempt{{Strategy: strategyCrossUnitAverage, Err: err}}
	}
	return res, []Attempt{{Strategy: strategyCrossUnitAverage}}
}

// sumTwoUnits converts "1 year 6 month" to days and adds both parts.
func sumTwoUnits(clean string) (DurationResult, error) {
	if !MatchesTwoUnitPattern(clean) {
		return Unidentified, fmt.Errorf("%w: %q is not a two-unit phrase", errors.ErrUnidentified, clean)
	}
	var total float64
	for _, pair := range GroupIntoPairs(clean) {
		f := strings.Fields(pair)
		n, err := parseLiteral(f[0])
		if err != nil {
			return Unidentified, err
		}
		u, err := ParseUnit(f[1])
		if err != nil {
			return Unidentified, err
		}
		d, err := ToDays(n, u)
		if err != nil {
			return Unidentified, err
		}
		total += d
	}
	return DurationResult{Quantity: total, Unit: Day}, nil
}

// averageAcrossUnits averages the day-equivalents of chunks that carry
// exactly one unit each, as in "1 day to 2 weeks".
func averageAcrossUnits(scans []scanResult) (DurationResult, error) {
	var total float64
	for _, sc := range scans {
		n, err := ResolveNumber(sc.leftString())
		if err != nil {
			return Unidentified, err
		}
		d, err := ToDays(n, sc.units[0])
		if err != nil {
			return Unidentified, err
		}
		total += d
	}
	return DurationResult{Quantity: total / float64(len(scans)), Unit: Day}, nil
}
