package snowdocs

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a single request and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
