package prompt

import (
	"bufio"
	"context"
	"io"

	"github.com/fwojciec/snowdocs"
)

// Loop drives the picker over a fixed result set.
type Loop struct {
	results  []snowdocs.Result
	pager    *snowdocs.Pager
	scanner  *bufio.Scanner
	renderer *Renderer
	lines    chan line
}

type line struct {
	text string
	err  error
}

// NewLoop creates a Loop over results, reading commands from in.
// pageSize must be positive.
func NewLoop(results []snowdocs.Result, pageSize int, in io.Reader, renderer *Renderer) *Loop {
	return &Loop{
		results:  results,
		pager:    snowdocs.NewPager(len(results), pageSize),
		scanner:  bufio.NewScanner(in),
		renderer: renderer,
	}
}

// Run renders pages and applies commands until the user selects a result
// or cancels. The returned outcome is either OutcomeSelected or
// OutcomeCancelled. Input ending before then is io.ErrUnexpectedEOF;
// cancelling ctx returns its error even while waiting for input.
func (l *Loop) Run(ctx context.Context) (snowdocs.Outcome, error) {
	w := l.pager.First()
	for {
		l.renderer.Page(l.results, w)
		l.renderer.Prompt()

		line, err := l.readLine(ctx)
		if err != nil {
			return snowdocs.Outcome{}, err
		}

		out := snowdocs.Step(l.pager, w, snowdocs.ParseCommand(line))
		if out.Done() {
			return out, nil
		}
		if out.Kind == snowdocs.OutcomeMessage {
			l.renderer.Message(out.Message)
		}
		w = out.Window
	}
}

func (l *Loop) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if l.lines == nil {
		l.lines = make(chan line)
		go l.scan(ctx)
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case ln := <-l.lines:
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return ln.text, ln.err
	}
}

// scan feeds input lines to readLine. A blocked read cannot be interrupted,
// so the goroutine exits on the first line or EOF after ctx is done.
func (l *Loop) scan(ctx context.Context) {
	send := func(ln line) bool {
		select {
		case l.lines <- ln:
			return true
		case <-ctx.Done():
			return false
		}
	}
	for l.scanner.Scan() {
		if !send(line{text: l.scanner.Text()}) {
			return
		}
	}
	err := l.scanner.Err()
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	send(line{err: err})
}
