// Package browser implements snowdocs.Browser by handing URLs to the
// operating system's default browser via github.com/pkg/browser.
package browser

import (
	"net/url"

	"github.com/fwojciec/snowdocs"
	pkgbrowser "github.com/pkg/browser"
)

// Ensure Browser implements snowdocs.Browser at compile time.
var _ snowdocs.Browser = (*Browser)(nil)

// Browser opens URLs in the user's default browser.
type Browser struct {
	open func(url string) error
}

// Option configures a Browser.
type Option func(*Browser)

// WithOpenFunc replaces the function that launches the browser.
// Defaults to pkgbrowser.OpenURL.
func WithOpenFunc(fn func(url string) error) Option {
	return func(b *Browser) {
		b.open = fn
	}
}

// NewBrowser creates a new Browser.
func NewBrowser(opts ...Option) *Browser {
	b := &Browser{open: pkgbrowser.OpenURL}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Open validates rawURL and opens it. Only absolute http(s) URLs are accepted.
// Returns ENOTFOUND when no browser could be launched.
func (b *Browser) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return snowdocs.Errorf(snowdocs.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return snowdocs.Errorf(snowdocs.EINVALID, "refusing to open non-web URL %q", rawURL)
	}
	if err := b.open(u.String()); err != nil {
		return snowdocs.Errorf(snowdocs.ENOTFOUND, "no browser available to open %s: %v", u, err)
	}
	return nil
}
