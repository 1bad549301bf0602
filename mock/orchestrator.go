package mock

import (
	"context"

	"github.com/postlens/postlens"
)

var _ postlens.Orchestrator = (*Orchestrator)(nil)

// Orchestrator is a mock implementation of postlens.Orchestrator.
type Orchestrator struct {
	RunAllFn func(ctx context.Context, content *postlens.Content) postlens.AnalysisMap
}

func (o *Orchestrator) RunAll(ctx context.Context, content *postlens.Content) postlens.AnalysisMap {
	return o.RunAllFn(ctx, content)
}
