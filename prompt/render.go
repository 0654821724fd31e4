// Package prompt implements the interactive result picker: it renders a page
// of results, reads one command per line, and applies it until the user
// selects a result or cancels.
package prompt

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/fwojciec/snowdocs"
	"github.com/mattn/go-isatty"
)

// Renderer writes picker output, optionally colored.
type Renderer struct {
	w     io.Writer
	green *color.Color
	red   *color.Color
	blue  *color.Color
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer, colored bool) *Renderer {
	r := &Renderer{
		w:     w,
		green: color.New(color.FgGreen),
		red:   color.New(color.FgRed),
		blue:  color.New(color.FgBlue, color.Bold),
	}
	for _, c := range []*color.Color{r.green, r.red, r.blue} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// ColorEnabled reports whether w is a terminal that should get colors.
// NO_COLOR disables colors regardless of the terminal.
func ColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Header prints the line shown once above the first page.
func (r *Renderer) Header() {
	fmt.Fprintln(r.w, r.blue.Sprint("Choose the topic"))
}

// Page prints the results visible in w followed by the navigation hints.
func (r *Renderer) Page(results []snowdocs.Result, w snowdocs.Window) {
	n := len(results)
	end := w.Clamp(n)
	for i := w.Start; i < end; i++ {
		fmt.Fprintf(r.w, "%d. %s -> %s\n", i+1, results[i].Text, r.green.Sprint(results[i].Category.Label()))
	}
	fmt.Fprintf(r.w, "%d-%d out of %d\n", w.Start, end, n)
	fmt.Fprintln(r.w)
	if w.End < n {
		fmt.Fprintln(r.w, "type `more` to see more results")
	}
	if w.Start != 0 {
		fmt.Fprintln(r.w, "type `back` to see previous page")
	}
	fmt.Fprintln(r.w, "type `cancel` to "+r.red.Sprint("cancel"))
}

// Prompt prints the input prompt without a trailing newline.
func (r *Renderer) Prompt() {
	fmt.Fprint(r.w, "Enter the number: ")
}

// Message prints a recoverable message such as a pager boundary notice.
func (r *Renderer) Message(msg string) {
	fmt.Fprintln(r.w, msg)
}

// Success prints text in green.
func (r *Renderer) Success(text string) {
	fmt.Fprintln(r.w, r.green.Sprint(text))
}

// Failure prints text in red.
func (r *Renderer) Failure(text string) {
	fmt.Fprintln(r.w, r.red.Sprint(text))
}
