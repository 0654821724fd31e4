package snowdocs

// Pager boundary errors. They are recoverable: the window stays unchanged
// and the message is shown to the user.
var (
	ErrAtLastPage   = &Error{Code: EINVALID, Message: "this is the last page"}
	ErrAtFirstPage  = &Error{Code: EINVALID, Message: "cannot go back"}
	ErrOutOfWindow  = &Error{Code: EINVALID, Message: "please specify the correct number"}
	ErrOutOfResults = &Error{Code: EINVALID, Message: "please specify the correct number"}
)

// Window is the half-open range [Start, End) of result indexes on screen.
// End may run past the result count; use Clamp for display.
type Window struct {
	Start int
	End   int
}

// Clamp returns End limited to n.
func (w Window) Clamp(n int) int {
	return min(w.End, n)
}

// Pager moves a Window over a fixed number of results one page at a time,
// so Start is always a multiple of the page size.
type Pager struct {
	total    int
	pageSize int
}

// NewPager returns a Pager over total results with the given page size.
// The page size must be positive.
func NewPager(total, pageSize int) *Pager {
	return &Pager{total: total, pageSize: pageSize}
}

// Total returns the number of results being paged.
func (p *Pager) Total() int { return p.total }

// PageSize returns the number of results per page.
func (p *Pager) PageSize() int { return p.pageSize }

// First returns the window for the first page.
func (p *Pager) First() Window {
	return Window{Start: 0, End: p.pageSize}
}

// Advance returns the next page. It reports ErrAtLastPage when the next page
// would run past the end of the results.
func (p *Pager) Advance(w Window) (Window, error) {
	if w.End+p.pageSize > p.total {
		return w, ErrAtLastPage
	}
	return Window{Start: w.Start + p.pageSize, End: w.End + p.pageSize}, nil
}

// Retreat returns the previous page, or ErrAtFirstPage on the first one.
func (p *Pager) Retreat(w Window) (Window, error) {
	if w.Start == 0 {
		return w, ErrAtFirstPage
	}
	return Window{Start: w.Start - p.pageSize, End: w.End - p.pageSize}, nil
}

// Select converts the 1-based number n typed by the user into a 0-based
// result index. n must be visible in w and refer to an existing result.
func (p *Pager) Select(w Window, n int) (int, error) {
	if n <= w.Start || n > w.End {
		return 0, ErrOutOfWindow
	}
	if n > p.total {
		return 0, ErrOutOfResults
	}
	return n - 1, nil
}
