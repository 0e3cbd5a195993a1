package model1

import "fmt"

// PageWindow represents the slice of the result set being displayed.
type PageWindow struct {
	Offset int `json:"offset" yaml:"offset"`
	First  int `json:"first" yaml:"first"`
}

// NewPageWindow returns the first page of the given size.
func NewPageWindow(first int) PageWindow {
	if first <= 0 {
		first = DefaultPageSize
	}
	return PageWindow{First: first}
}

// Validate checks the window bounds.
func (w PageWindow) Validate() error {
	if w.Offset < 0 || w.First <= 0 {
		return fmt.Errorf("%w: offset=%d first=%d", ErrInvalidWindow, w.Offset, w.First)
	}
	return nil
}

// Page returns the zero based page index.
func (w PageWindow) Page() int {
	if w.First <= 0 {
		return 0
	}
	return w.Offset / w.First
}

// WithPage moves the window to the given zero based page.
func (w PageWindow) WithPage(page int) PageWindow {
	if page < 0 {
		page = 0
	}
	return PageWindow{Offset: page * w.First, First: w.First}
}

// WithFirst changes the page size. The offset always resets to 0.
func (w PageWindow) WithFirst(first int) PageWindow {
	return NewPageWindow(first)
}

// Next returns the following page, bounded by total.
func (w PageWindow) Next(total int) (PageWindow, bool) {
	if w.Offset+w.First >= total {
		return w, false
	}
	return PageWindow{Offset: w.Offset + w.First, First: w.First}, true
}

// Prev returns the previous page.
func (w PageWindow) Prev() (PageWindow, bool) {
	if w.Offset == 0 {
		return w, false
	}
	off := w.Offset - w.First
	if off < 0 {
		off = 0
	}
	return PageWindow{Offset: off, First: w.First}, true
}

// Pages returns the page count for total rows.
func (w PageWindow) Pages(total int) int {
	if w.First <= 0 || total <= 0 {
		return 1
	}
	return (total + w.First - 1) / w.First
}

// Range formats the window as "1–10 of 42".
func (w PageWindow) Range(total int) string {
	if total <= 0 {
		return "0–0 of 0"
	}
	from, to := w.Offset+1, w.Offset+w.First
	if to > total {
		to = total
	}
	if from > to {
		from = to
	}
	return fmt.Sprintf("%d–%d of %d", from, to, total)
}

// PageResult is returned by a fetch collaborator for one window.
type PageResult struct {
	Edges      []any `json:"edges" yaml:"edges"`
	TotalCount int   `json:"totalCount" yaml:"totalCount"`
}

// Rows unwraps the result edges.
func (p PageResult) Rows() Rows {
	return NewRows(p.Edges)
}
