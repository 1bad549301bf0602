package postlens

import (
	"context"
	"encoding/json"
	"strings"
)

// Analysis holds a provider's keywords and summary for a piece of content.
type Analysis struct {
	Keywords []string `json:"keywords"`
	Summary  string   `json:"summary"`
}

// Outcome is the per-provider result variant: either an analysis or an
// error reason. Exactly one side is populated.
type Outcome struct {
	Analysis *Analysis
	Err      string
}

// MarshalJSON renders the populated variant as either
// {"keywords":[...],"summary":"..."} or {"error":"..."}.
func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.Err != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{Error: o.Err})
	}

	a := o.Analysis
	if a == nil {
		a = &Analysis{}
	}
	if a.Keywords == nil {
		// Keywords must serialize as [] rather than null.
		a = &Analysis{Keywords: []string{}, Summary: a.Summary}
	}
	return json.Marshal(a)
}

// AnalysisMap maps provider name to its outcome for one request. It is
// assembled by the orchestrator and immutable once returned.
type AnalysisMap map[string]Outcome

// Analyzer produces keywords and a summary for extracted content.
// Implementations translate transport and API failures into errors; a
// malformed-but-present payload degrades via ParseAnalysis instead of
// failing.
type Analyzer interface {
	// Name returns the provider's identifier (e.g., "deepseek", "gemini").
	Name() string

	// Analyze sends a bounded excerpt of the content to the provider and
	// returns the normalized analysis.
	Analyze(ctx context.Context, content *Content) (*Analysis, error)
}

// Orchestrator runs every configured analyzer against one content record.
type Orchestrator interface {
	// RunAll dispatches all analyzers concurrently and returns one outcome
	// per analyzer. Per-provider failures are contained in the map and
	// never abort the batch.
	RunAll(ctx context.Context, content *Content) AnalysisMap
}

// ParseAnalysis normalizes a provider's text payload. It attempts a strict
// JSON decode into the keywords/summary shape. A payload that does not
// decode is still usable prose, so it degrades to an analysis with no
// keywords and the raw text as summary rather than reporting failure.
func ParseAnalysis(raw string) *Analysis {
	var a Analysis
	if err := json.Unmarshal([]byte(raw), &a); err != nil || (len(a.Keywords) == 0 && a.Summary == "") {
		return &Analysis{Keywords: []string{}, Summary: strings.TrimSpace(raw)}
	}
	if a.Keywords == nil {
		a.Keywords = []string{}
	}
	return &a
}
