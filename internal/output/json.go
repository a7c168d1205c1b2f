package output

import (
	"github.com/manav03panchal/humanspan/internal/parser"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// ResultOutput represents one parse result in JSON.
type ResultOutput struct {
	Input      string   `json:"input"`
	Quantity   float64  `json:"quantity"`
	Unit       string   `json:"unit"`
	Identified bool     `json:"identified"`
	Days       *float64 `json:"days,omitempty"`
}

// NewResultOutput creates a ResultOutput from a parse result.
func NewResultOutput(input string, r parser.DurationResult) *ResultOutput {
	q, unit := r.Values()
	out := &ResultOutput{
		Input:      input,
		Quantity:   q,
		Unit:       unit,
		Identified: r.Identified(),
	}
	if r.Identified() {
		days := r.Days()
		out.Days = &days
	}
	return out
}

// AttemptOutput represents one strategy attempt in JSON.
type AttemptOutput struct {
	Strategy string `json:"strategy"`
	OK       bool   `json:"ok"`
	Error    string `json:"error,omitempty"`
}

// TraceOutput represents a parse trace in JSON.
type TraceOutput struct {
	Normalized string           `json:"normalized"`
	UnitCount  int              `json:"unit_count"`
	Units      []string         `json:"units"`
	Branch     string           `json:"branch"`
	Attempts   []*AttemptOutput `json:"attempts"`
	Result     *ResultOutput    `json:"result"`
}

// NewTraceOutput creates a TraceOutput from a parse trace.
func NewTraceOutput(tr parser.Trace) *TraceOutput {
	out := &TraceOutput{
		Normalized: tr.Normalized,
		UnitCount:  tr.UnitCount,
		Units:      make([]string, len(tr.Units)),
		Branch:     string(tr.Branch),
		Attempts:   make([]*AttemptOutput, len(tr.Attempts)),
		Result:     NewResultOutput(tr.Input, tr.Result),
	}
	for i, u := range tr.Units {
		out.Units[i] = u.String()
	}
	for i, a := range tr.Attempts {
		ao := &AttemptOutput{Strategy: a.Strategy, OK: a.Err == nil}
		if a.Err != nil {
			ao.Error = a.Err.Error()
		}
		out.Attempts[i] = ao
	}
	return out
}

// BatchLineOutput represents one batch line in JSON.
type BatchLineOutput struct {
	Line int `json:"line"`
	*ResultOutput
	Error string `json:"error,omitempty"`
}

// BatchResponse represents a whole batch run in JSON.
type BatchResponse struct {
	RunID   string             `json:"run_id,omitempty"`
	Results []*BatchLineOutput `json:"results"`
	Summary BatchSummary       `json:"summary"`
}

// NewBatchResponse creates a BatchResponse from batch items.
func NewBatchResponse(runID string, items []BatchItem) *BatchResponse {
	resp := &BatchResponse{
		RunID:   runID,
		Results: make([]*BatchLineOutput, len(items)),
		Summary: Summarize(items),
	}
	for i, it := range items {
		line := &BatchLineOutput{Line: it.Line, ResultOutput: NewResultOutput(it.Input, it.Result)}
		if it.Err != nil {
			line.Error = it.Err.Error()
		}
		resp.Results[i] = line
	}
	return resp
}

// UnitOutput represents a canonical unit in JSON.
type UnitOutput struct {
	Unit     string   `json:"unit"`
	Days     float64  `json:"days"`
	Synonyms []string `json:"synonyms"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string   `json:"status"`
	Error      string   `json:"error"`
	Category   string   `json:"category,omitempty"`
	Op         string   `json:"op,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
	Examples   []string `json:"examples,omitempty"`
}

// PrintResult outputs a single result in JSON format.
func (j *JSONFormatter) PrintResult(input string, r parser.DurationResult) error {
	return j.JSON(NewResultOutput(input, r))
}

// PrintTrace outputs a parse trace in JSON format.
func (j *JSONFormatter) PrintTrace(tr parser.Trace) error {
	return j.JSON(NewTraceOutput(tr))
}

// PrintBatch outputs batch results in JSON format.
func (j *JSONFormatter) PrintBatch(runID string, items []BatchItem) error {
	return j.JSON(NewBatchResponse(runID, items))
}

// PrintUnits outputs the unit table in JSON format.
func (j *JSONFormatter) PrintUnits(table *parser.UnitTable) error {
	units := make([]*UnitOutput, 0, len(parser.Units))
	for _, u := range parser.Units {
		units = append(units, &UnitOutput{
			Unit:     u.String(),
			Days:     parser.DaysPer(u),
			Synonyms: table.Synonyms(u),
		})
	}
	return j.JSON(units)
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(resp ErrorResponse) error {
	if resp.Status == "" {
		resp.Status = "error"
	}
	return j.JSON(resp)
}
