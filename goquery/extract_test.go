package goquery_test

import (
	"testing"

	"github.com/fwojciec/snowdocs"
	"github.com/fwojciec/snowdocs/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractor(t *testing.T) *goquery.ResultExtractor {
	t.Helper()
	e, err := goquery.NewResultExtractor("https://docs.snowflake.com")
	require.NoError(t, err)
	return e
}

func TestResultExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts results in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<div class="results">
	<a class="text-link cursor-pointer" href="https://docs.snowflake.com/en/sql-reference/sql/create-table">
		<span>CREATE TABLE</span>
		<div class="text-xs mt-1 text-green">Documentation</div>
	</a>
	<a class="text-link cursor-pointer" href="https://community.snowflake.com/s/article/tables">
		<span>How tables work</span>
		<div class="text-xs mt-1 text-green">Knowledge Base</div>
	</a>
</div>
</body>
</html>`

		results, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, snowdocs.Result{
			Text:     "CREATE TABLE",
			URL:      "https://docs.snowflake.com/en/sql-reference/sql/create-table",
			Category: snowdocs.CategoryDocumentation,
		}, results[0])
		assert.Equal(t, snowdocs.Result{
			Text:     "How tables work",
			URL:      "https://community.snowflake.com/s/article/tables",
			Category: snowdocs.CategoryKnowledgeBase,
		}, results[1])
	})

	t.Run("resolves relative links against base URL", func(t *testing.T) {
		t.Parallel()

		html := `<a class="text-link cursor-pointer" href="/en/user-guide/warehouses">
	<span>Warehouses</span>
	<div class="text-xs mt-1 text-green">Documentation</div>
</a>`

		results, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "https://docs.snowflake.com/en/user-guide/warehouses", results[0].URL)
	})

	t.Run("ignores anchors without result classes", func(t *testing.T) {
		t.Parallel()

		html := `<nav><a href="/en/home">Home</a></nav>
<a class="text-link" href="/en/other"><span>Other</span></a>`

		results, err := newExtractor(t).Extract(html)

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("fails when title is missing", func(t *testing.T) {
		t.Parallel()

		html := `<a class="text-link cursor-pointer" href="/en/a">
	<div class="text-xs mt-1 text-green">Documentation</div>
</a>`

		_, err := newExtractor(t).Extract(html)

		require.Error(t, err)
		assert.Equal(t, snowdocs.EINVALID, snowdocs.ErrorCode(err))
		assert.Contains(t, snowdocs.ErrorMessage(err), "missing title")
	})

	t.Run("fails when link is missing", func(t *testing.T) {
		t.Parallel()

		html := `<a class="text-link cursor-pointer">
	<span>No href</span>
	<div class="text-xs mt-1 text-green">Documentation</div>
</a>`

		_, err := newExtractor(t).Extract(html)

		require.Error(t, err)
		assert.Contains(t, snowdocs.ErrorMessage(err), "missing link")
	})

	t.Run("fails when category marker is missing", func(t *testing.T) {
		t.Parallel()

		html := `<a class="text-link cursor-pointer" href="/en/a"><span>A</span></a>`

		_, err := newExtractor(t).Extract(html)

		require.Error(t, err)
		assert.Contains(t, snowdocs.ErrorMessage(err), "missing category")
	})

	t.Run("fails on unknown category label", func(t *testing.T) {
		t.Parallel()

		html := `<a class="text-link cursor-pointer" href="/en/a">
	<span>A</span>
	<div class="text-xs mt-1 text-green">Blog</div>
</a>`

		_, err := newExtractor(t).Extract(html)

		require.Error(t, err)
		assert.Equal(t, snowdocs.EINVALID, snowdocs.ErrorCode(err))
	})

	t.Run("reports position of the malformed result", func(t *testing.T) {
		t.Parallel()

		html := `<a class="text-link cursor-pointer" href="/en/a">
	<span>A</span>
	<div class="text-xs mt-1 text-green">Documentation</div>
</a>
<a class="text-link cursor-pointer" href="/en/b"><span>B</span></a>`

		_, err := newExtractor(t).Extract(html)

		require.Error(t, err)
		assert.Contains(t, snowdocs.ErrorMessage(err), "result 2")
	})
}

func TestNewResultExtractor(t *testing.T) {
	t.Parallel()

	_, err := goquery.NewResultExtractor("://bad")

	require.Error(t, err)
	assert.Equal(t, snowdocs.EINVALID, snowdocs.ErrorCode(err))
}
