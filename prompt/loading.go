package prompt

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// StartLoading shows a transient "Loading..." spinner on w while the search
// request runs. The returned func stops it and clears the line. When
// enabled is false nothing is written.
func StartLoading(w io.Writer, enabled bool) (stop func()) {
	if !enabled {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " Loading..."
	s.Start()
	return s.Stop
}
