package snowdocs_test

import (
	"testing"

	"github.com/fwojciec/snowdocs"
	"github.com/stretchr/testify/assert"
)

func TestStep(t *testing.T) {
	t.Parallel()

	t.Run("pages forward and back through twelve results", func(t *testing.T) {
		t.Parallel()

		p := snowdocs.NewPager(12, 5)
		w := p.First()
		assert.Equal(t, snowdocs.Window{Start: 0, End: 5}, w)

		out := snowdocs.Step(p, w, snowdocs.ParseCommand("more"))
		assert.Equal(t, snowdocs.OutcomeContinue, out.Kind)
		assert.Equal(t, snowdocs.Window{Start: 5, End: 10}, out.Window)

		out = snowdocs.Step(p, out.Window, snowdocs.ParseCommand("more"))
		assert.Equal(t, snowdocs.OutcomeMessage, out.Kind)
		assert.Equal(t, "this is the last page", out.Message)
		assert.Equal(t, snowdocs.Window{Start: 5, End: 10}, out.Window)

		out = snowdocs.Step(p, out.Window, snowdocs.ParseCommand("back"))
		assert.Equal(t, snowdocs.OutcomeContinue, out.Kind)
		assert.Equal(t, snowdocs.Window{Start: 0, End: 5}, out.Window)
	})

	t.Run("reports last page when results fit on one page", func(t *testing.T) {
		t.Parallel()

		p := snowdocs.NewPager(3, 5)

		out := snowdocs.Step(p, p.First(), snowdocs.ParseCommand("more"))

		assert.Equal(t, snowdocs.OutcomeMessage, out.Kind)
		assert.Equal(t, "this is the last page", out.Message)
		assert.Equal(t, p.First(), out.Window)
	})

	t.Run("reports cannot go back on first page", func(t *testing.T) {
		t.Parallel()

		p := snowdocs.NewPager(12, 5)

		out := snowdocs.Step(p, p.First(), snowdocs.ParseCommand("back"))

		assert.Equal(t, snowdocs.OutcomeMessage, out.Kind)
		assert.Equal(t, "cannot go back", out.Message)
	})

	t.Run("rejects a number outside the page", func(t *testing.T) {
		t.Parallel()

		p := snowdocs.NewPager(10, 5)

		out := snowdocs.Step(p, p.First(), snowdocs.ParseCommand("7"))

		assert.Equal(t, snowdocs.OutcomeMessage, out.Kind)
		assert.Equal(t, "please specify the correct number", out.Message)
		assert.Equal(t, snowdocs.Window{Start: 0, End: 5}, out.Window)
	})

	t.Run("selects a visible number as a zero-based index", func(t *testing.T) {
		t.Parallel()

		p := snowdocs.NewPager(10, 5)

		out := snowdocs.Step(p, p.First(), snowdocs.ParseCommand("2"))

		assert.Equal(t, snowdocs.OutcomeSelected, out.Kind)
		assert.Equal(t, 1, out.Index)
		assert.True(t, out.Done())
	})

	t.Run("cancels", func(t *testing.T) {
		t.Parallel()

		p := snowdocs.NewPager(10, 5)

		out := snowdocs.Step(p, p.First(), snowdocs.ParseCommand("Cancel"))

		assert.Equal(t, snowdocs.OutcomeCancelled, out.Kind)
		assert.True(t, out.Done())
	})

	t.Run("echoes unknown input", func(t *testing.T) {
		t.Parallel()

		p := snowdocs.NewPager(10, 5)

		out := snowdocs.Step(p, p.First(), snowdocs.ParseCommand("xyz"))

		assert.Equal(t, snowdocs.OutcomeMessage, out.Kind)
		assert.Equal(t, "unkown command xyz", out.Message)
		assert.False(t, out.Done())
	})
}
