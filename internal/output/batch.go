package output

import "github.com/manav03panchal/humanspan/internal/parser"

// BatchItem is the outcome for one line of batch input. Err is set when the
// line was rejected before parsing.
type BatchItem struct {
	Line   int
	Input  string
	Result parser.DurationResult
	Err    error
}

// BatchSummary counts batch outcomes.
type BatchSummary struct {
	Total        int `json:"total"`
	Identified   int `json:"identified"`
	Unidentified int `json:"unidentified"`
	Rejected     int `json:"rejected"`
}

// Summarize tallies items. Rejected lines are not counted as unidentified.
func Summarize(items []BatchItem) BatchSummary {
	s := BatchSummary{Total: len(items)}
	for _, it := range items {
		switch {
		case it.Err != nil:
			s.Rejected++
		case it.Result.Identified():
			s.Identified++
		default:
			s.Unidentified++
		}
	}
	return s
}
