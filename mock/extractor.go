package mock

import "github.com/fwojciec/snowdocs"

var _ snowdocs.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of snowdocs.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]snowdocs.Result, error)
}

func (e *Extractor) Extract(html string) ([]snowdocs.Result, error) {
	return e.ExtractFn(html)
}
