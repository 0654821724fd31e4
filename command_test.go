package snowdocs_test

import (
	"testing"

	"github.com/fwojciec/snowdocs"
	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		line string
		want snowdocs.Command
	}{
		{"cancel", snowdocs.Command{Kind: snowdocs.CommandCancel}},
		{"CANCEL", snowdocs.Command{Kind: snowdocs.CommandCancel}},
		{"more", snowdocs.Command{Kind: snowdocs.CommandAdvance}},
		{"More", snowdocs.Command{Kind: snowdocs.CommandAdvance}},
		{"back", snowdocs.Command{Kind: snowdocs.CommandRetreat}},
		{"bAcK\n", snowdocs.Command{Kind: snowdocs.CommandRetreat}},
		{"3", snowdocs.Command{Kind: snowdocs.CommandSelect, N: 3}},
		{" 12 ", snowdocs.Command{Kind: snowdocs.CommandSelect, N: 12}},
		{"-1", snowdocs.Command{Kind: snowdocs.CommandSelect, N: -1}},
		{"xyz", snowdocs.Command{Kind: snowdocs.CommandUnknown, Text: "xyz"}},
		{"Next", snowdocs.Command{Kind: snowdocs.CommandUnknown, Text: "next"}},
		{"", snowdocs.Command{Kind: snowdocs.CommandUnknown, Text: ""}},
		{"3.5", snowdocs.Command{Kind: snowdocs.CommandUnknown, Text: "3.5"}},
	} {
		assert.Equal(t, tc.want, snowdocs.ParseCommand(tc.line), "line %q", tc.line)
	}
}
