package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/derailed/tview"

	"github.com/b3/b3t/internal/model"
)

// Pagination renders the table footer.
type Pagination struct {
	*tview.TextView

	kind    StrategyKind
	options []int
	text    string
}

// NewPagination returns a new footer.
func NewPagination(kind StrategyKind, options []int) *Pagination {
	p := Pagination{
		TextView: tview.NewTextView(),
		kind:     kind,
		options:  options,
	}
	p.SetDynamicColors(true)
	p.SetTextAlign(tview.AlignRight)

	return &p
}

// Text returns the last rendered footer.
func (p *Pagination) Text() string {
	return p.text
}

// Render draws the footer for a snapshot.
func (p *Pagination) Render(s model.Snapshot) {
	p.text = p.format(s)
	p.SetText(p.text)
}

func (p *Pagination) format(s model.Snapshot) string {
	sel := len(s.Selection.SelectedIDs)
	var selected string
	switch {
	case s.Selection.IsAllOtherPagesSelected:
		selected = "all selected"
	case sel > 0:
		selected = fmt.Sprintf("%d selected", sel)
	}

	if p.kind == InfiniteScrollKind {
		parts := []string{fmt.Sprintf("Showing %d of %d", len(s.Rows), s.TotalCount)}
		if s.Loading && len(s.Rows) > 0 {
			parts = append(parts, "Loading more...")
		}
		if selected != "" {
			parts = append(parts, selected)
		}
		return strings.Join(parts, "  ")
	}

	opts := make([]string, 0, len(p.options))
	for _, o := range p.options {
		v := strconv.Itoa(o)
		if o == s.Window.First {
			v = "[::b]" + v + "[::-]"
		}
		opts = append(opts, v)
	}
	parts := []string{
		"Rows per page: " + strings.Join(opts, " "),
		s.Window.Range(s.TotalCount),
		fmt.Sprintf("page %d/%d", s.Window.Page()+1, s.Window.Pages(s.TotalCount)),
	}
	if selected != "" {
		parts = append([]string{selected}, parts...)
	}
	return strings.Join(parts, "  ")
}
