package mock

import (
	"context"

	"github.com/fwojciec/snowdocs"
)

var _ snowdocs.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of snowdocs.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]snowdocs.Result, error)
}

func (s *Searcher) Search(ctx context.Context, query string) ([]snowdocs.Result, error) {
	return s.SearchFn(ctx, query)
}
