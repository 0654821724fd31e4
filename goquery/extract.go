// Package goquery implements snowdocs.Extractor for the documentation
// site's search results page using CSS selectors.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/snowdocs"
)

// Selectors for the search results page markup.
const (
	ResultSelector   = "a.text-link.cursor-pointer"
	TextSelector     = "span"
	CategorySelector = "div.text-xs.mt-1.text-green"
)

// Ensure ResultExtractor implements snowdocs.Extractor at compile time.
var _ snowdocs.Extractor = (*ResultExtractor)(nil)

// ResultExtractor extracts search results from the results page.
type ResultExtractor struct {
	base *url.URL
}

// NewResultExtractor creates a ResultExtractor. Relative result links are
// resolved against baseURL.
func NewResultExtractor(baseURL string) (*ResultExtractor, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, snowdocs.Errorf(snowdocs.EINVALID, "invalid base URL: %v", err)
	}
	return &ResultExtractor{base: base}, nil
}

// Extract parses HTML and returns results in document order.
// The first malformed result aborts extraction.
func (e *ResultExtractor) Extract(html string) ([]snowdocs.Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, snowdocs.Errorf(snowdocs.EINVALID, "failed to parse HTML: %v", err)
	}

	var results []snowdocs.Result
	var extractErr error
	doc.Find(ResultSelector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		r, err := e.extractResult(sel)
		if err != nil {
			extractErr = snowdocs.Errorf(snowdocs.EINVALID, "result %d: %s", i+1, snowdocs.ErrorMessage(err))
			return false
		}
		results = append(results, r)
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	return results, nil
}

// extractResult validates a single result anchor.
func (e *ResultExtractor) extractResult(sel *goquery.Selection) (snowdocs.Result, error) {
	span := sel.Find(TextSelector).First()
	if span.Length() == 0 {
		return snowdocs.Result{}, snowdocs.Errorf(snowdocs.EINVALID, "missing title")
	}

	href, ok := sel.Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return snowdocs.Result{}, snowdocs.Errorf(snowdocs.EINVALID, "missing link")
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return snowdocs.Result{}, snowdocs.Errorf(snowdocs.EINVALID, "invalid link %q", href)
	}

	marker := sel.Find(CategorySelector).First()
	if marker.Length() == 0 {
		return snowdocs.Result{}, snowdocs.Errorf(snowdocs.EINVALID, "missing category")
	}
	category, err := snowdocs.ParseCategory(marker.Text())
	if err != nil {
		return snowdocs.Result{}, err
	}

	return snowdocs.Result{
		Text:     strings.TrimSpace(span.Text()),
		URL:      e.base.ResolveReference(ref).String(),
		Category: category,
	}, nil
}
