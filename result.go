package snowdocs

import (
	"context"
	"strings"
)

// Category identifies which part of the documentation site a result links to.
type Category string

// Result categories. The values double as filter names on the command line.
const (
	CategoryDocumentation Category = "doc"
	CategoryKnowledgeBase Category = "k_base"
)

var categoryLabels = map[Category]string{
	CategoryDocumentation: "Documentation",
	CategoryKnowledgeBase: "Knowledge Base",
}

// Label returns the human-readable name shown next to a result.
func (c Category) Label() string {
	return categoryLabels[c]
}

// ParseCategory maps a label as rendered by the search page to a Category.
// Returns EINVALID for unrecognized labels.
func ParseCategory(label string) (Category, error) {
	label = strings.TrimSpace(label)
	for c, l := range categoryLabels {
		if l == label {
			return c, nil
		}
	}
	return "", Errorf(EINVALID, "unknown result category %q", label)
}

// Result is a single search hit.
type Result struct {
	Text     string
	URL      string
	Category Category
}

// FilterMode restricts results to a single category, or keeps both.
type FilterMode string

// Supported filter modes.
const (
	FilterDocumentation FilterMode = FilterMode(CategoryDocumentation)
	FilterKnowledgeBase FilterMode = FilterMode(CategoryKnowledgeBase)
	FilterBoth          FilterMode = "both"
)

// ParseFilterMode parses a filter name (doc, k_base, both).
func ParseFilterMode(s string) (FilterMode, error) {
	switch m := FilterMode(strings.ToLower(strings.TrimSpace(s))); m {
	case FilterDocumentation, FilterKnowledgeBase, FilterBoth:
		return m, nil
	}
	return "", Errorf(EINVALID, "invalid filter %q: expected doc, k_base or both", s)
}

// Filter returns the results matching mode, preserving their order.
// FilterBoth returns results unchanged.
func Filter(results []Result, mode FilterMode) []Result {
	if mode == FilterBoth {
		return results
	}
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if FilterMode(r.Category) == mode {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Extractor turns a search results page into results.
type Extractor interface {
	// Extract parses HTML and returns results in document order.
	// A result with missing text, link, or category fails the whole page.
	Extract(html string) ([]Result, error)
}

// Searcher runs a query against the documentation site.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// Browser opens URLs for the user.
type Browser interface {
	Open(url string) error
}
