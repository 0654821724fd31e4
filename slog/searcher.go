package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/snowdocs"
)

// Ensure LoggingSearcher implements snowdocs.Searcher.
var _ snowdocs.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   snowdocs.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next snowdocs.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the query and result count.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (results []snowdocs.Result, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
