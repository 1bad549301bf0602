// Package analyze provides the multi-provider analysis orchestrator.
// It fans one content record out to every configured provider concurrently
// and collects the per-provider outcomes into a single map.
package analyze

import (
	"context"
	"errors"
	"time"

	"github.com/postlens/postlens"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds a single provider call. Without it one stalled
// provider would hold the whole request open.
const DefaultTimeout = 30 * time.Second

// PlaceholderName keys the synthesized entry returned when no provider is
// configured.
const PlaceholderName = "demo"

// Ensure Runner implements postlens.Orchestrator at compile time.
var _ postlens.Orchestrator = (*Runner)(nil)

// Runner runs all configured analyzers against one content record.
type Runner struct {
	Analyzers []postlens.Analyzer

	// Timeout bounds each provider call. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// result pairs a provider name with its outcome for channel collection.
type result struct {
	name    string
	outcome postlens.Outcome
}

// RunAll dispatches every analyzer concurrently and waits for all of them
// to finish. Each analyzer produces exactly one entry under its own name;
// a failing or slow provider never prevents another provider's entry from
// appearing and never aborts the batch. With no analyzers configured it
// synthesizes a single placeholder entry so the response envelope is never
// empty.
func (r *Runner) RunAll(ctx context.Context, content *postlens.Content) postlens.AnalysisMap {
	if len(r.Analyzers) == 0 {
		return postlens.AnalysisMap{PlaceholderName: placeholderOutcome()}
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	resultCh := make(chan result, len(r.Analyzers))

	var g errgroup.Group
	for _, a := range r.Analyzers {
		g.Go(func() error {
			actx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			analysis, err := a.Analyze(actx, content)
			resultCh <- result{name: a.Name(), outcome: outcomeFor(analysis, err)}
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(resultCh)
	}()

	results := make(postlens.AnalysisMap, len(r.Analyzers))
	for res := range resultCh {
		results[res.name] = res.outcome
	}
	return results
}

// outcomeFor converts one analyzer invocation into its outcome variant.
func outcomeFor(analysis *postlens.Analysis, err error) postlens.Outcome {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return postlens.Outcome{Err: "timeout"}
	case err != nil:
		return postlens.Outcome{Err: errText(err)}
	default:
		return postlens.Outcome{Analysis: analysis}
	}
}

// errText keeps the full diagnostic for transport errors while using the
// clean message for application errors.
func errText(err error) string {
	var e *postlens.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// placeholderOutcome is the demo entry shown when no provider credential is
// configured.
func placeholderOutcome() postlens.Outcome {
	return postlens.Outcome{Analysis: &postlens.Analysis{
		Keywords: []string{"示例", "关键词", "内容分析"},
		Summary:  "No AI provider is configured. Set DEEPSEEK_API_KEY, MOONSHOT_API_KEY or GEMINI_API_KEY to enable analysis; this entry is sample output.",
	}}
}
