package http

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/snowdocs"
)

// DefaultBaseURL is the documentation site root.
const DefaultBaseURL = "https://docs.snowflake.com"

// DefaultResultLimit is the number of results requested from the service.
// It is unrelated to the display page size.
const DefaultResultLimit = 100

// Ensure Searcher implements snowdocs.Searcher at compile time.
var _ snowdocs.Searcher = (*Searcher)(nil)

// Searcher queries the site's search page and extracts the results.
type Searcher struct {
	Fetcher   snowdocs.Fetcher
	Extractor snowdocs.Extractor

	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// Limit defaults to DefaultResultLimit.
	Limit int
}

// Search fetches the results page for query once and extracts its results.
func (s *Searcher) Search(ctx context.Context, query string) ([]snowdocs.Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, snowdocs.Errorf(snowdocs.EINVALID, "search prompt required")
	}

	baseURL := s.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	limit := s.Limit
	if limit <= 0 {
		limit = DefaultResultLimit
	}

	html, err := s.Fetcher.Fetch(ctx, SearchURL(baseURL, query, limit))
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	return s.Extractor.Extract(html)
}

// SearchURL builds the search endpoint URL with the query form-encoded.
func SearchURL(baseURL, query string, limit int) string {
	return strings.TrimRight(baseURL, "/") + "/search?q=" + url.QueryEscape(query) + "&limit=" + strconv.Itoa(limit)
}
