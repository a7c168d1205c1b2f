package output

import (
	"strings"

	"github.com/manav03panchal/humanspan/internal/parser"
)

// PlainFormatter writes tab-separated lines for scripts.
type PlainFormatter struct {
	*Formatter
}

// NewPlainFormatter creates a new plain formatter.
func NewPlainFormatter(f *Formatter) *PlainFormatter {
	return &PlainFormatter{Formatter: f}
}

// PrintResult prints "<quantity>\t<unit>".
func (p *PlainFormatter) PrintResult(r parser.DurationResult) {
	q, unit := r.Values()
	p.Printf("%s\t%s\n", FormatQuantity(q), unit)
}

// PrintTrace prints one "key\tvalue" line per trace field.
func (p *PlainFormatter) PrintTrace(tr parser.Trace) {
	p.Printf("normalized\t%s\n", tr.Normalized)
	p.Printf("units\t%d\n", tr.UnitCount)
	p.Printf("branch\t%s\n", tr.Branch)
	for _, a := range tr.Attempts {
		status := "ok"
		if a.Err != nil {
			status = a.Err.Error()
		}
		p.Printf("attempt\t%s\t%s\n", a.Strategy, status)
	}
	q, unit := tr.Result.Values()
	p.Printf("result\t%s\t%s\n", FormatQuantity(q), unit)
}

// PrintBatch prints "<line>\t<input>\t<quantity>\t<unit>" per item. Tabs in
// the input are replaced so columns stay aligned.
func (p *PlainFormatter) PrintBatch(items []BatchItem) {
	for _, it := range items {
		q, unit := it.Result.Values()
		if it.Err != nil {
			unit = "rejected"
		}
		p.Printf("%d\t%s\t%s\t%s\n", it.Line, strings.ReplaceAll(it.Input, "\t", " "), FormatQuantity(q), unit)
	}
}

// PrintUnits prints "<unit>\t<days>\t<synonyms>" per unit.
func (p *PlainFormatter) PrintUnits(table *parser.UnitTable) {
	for _, u := range parser.Units {
		p.Printf("%s\t%s\t%s\n", u, FormatQuantity(parser.DaysPer(u)), strings.Join(table.Synonyms(u), ","))
	}
}
