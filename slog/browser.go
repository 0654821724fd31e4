package slog

import (
	"log/slog"

	"github.com/fwojciec/snowdocs"
)

// Ensure LoggingBrowser implements snowdocs.Browser.
var _ snowdocs.Browser = (*LoggingBrowser)(nil)

// LoggingBrowser wraps a Browser with debug logging.
type LoggingBrowser struct {
	next   snowdocs.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next snowdocs.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// Open logs the URL and delegates to the wrapped browser.
func (b *LoggingBrowser) Open(url string) (err error) {
	defer func() {
		b.logger.Info("open", "url", url, "err", err)
	}()
	return b.next.Open(url)
}
