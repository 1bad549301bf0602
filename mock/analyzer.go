package mock

import (
	"context"

	"github.com/postlens/postlens"
)

var _ postlens.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of postlens.Analyzer.
type Analyzer struct {
	NameFn    func() string
	AnalyzeFn func(ctx context.Context, content *postlens.Content) (*postlens.Analysis, error)
}

func (a *Analyzer) Name() string {
	return a.NameFn()
}

func (a *Analyzer) Analyze(ctx context.Context, content *postlens.Content) (*postlens.Analysis, error) {
	return a.AnalyzeFn(ctx, content)
}
