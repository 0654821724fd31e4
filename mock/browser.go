package mock

import "github.com/fwojciec/snowdocs"

var _ snowdocs.Browser = (*Browser)(nil)

// Browser is a mock implementation of snowdocs.Browser.
type Browser struct {
	OpenFn func(url string) error
}

func (b *Browser) Open(url string) error {
	return b.OpenFn(url)
}
