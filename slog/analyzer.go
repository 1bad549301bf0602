// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/postlens/postlens"
)

// Ensure LoggingAnalyzer implements postlens.Analyzer.
var _ postlens.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with per-call logging.
type LoggingAnalyzer struct {
	next   postlens.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next postlens.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Name delegates to the wrapped analyzer.
func (a *LoggingAnalyzer) Name() string {
	return a.next.Name()
}

// Analyze delegates to the wrapped analyzer and logs the call.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, content *postlens.Content) (analysis *postlens.Analysis, err error) {
	defer func(begin time.Time) {
		keywords := 0
		if analysis != nil {
			keywords = len(analysis.Keywords)
		}
		a.logger.Info("provider analysis",
			"provider", a.next.Name(),
			"keywords", keywords,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(ctx, content)
}
