package ui

import (
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/b3/b3t/internal/model"
	"github.com/b3/b3t/internal/model1"
)

// Checkbox glyphs.
const (
	CheckOn       = "☑"
	CheckOff      = "☐"
	CheckPartial  = "⊟"
	CheckDisabled = "·"
)

// StrategyKind names a presentation strategy.
type StrategyKind int

const (
	// FixedTableKind renders a paginated table with a header.
	FixedTableKind StrategyKind = iota

	// InfiniteScrollKind renders a growing grid of cards.
	InfiniteScrollKind
)

func (k StrategyKind) String() string {
	if k == InfiniteScrollKind {
		return "infinite-scroll"
	}
	return "fixed-table"
}

// RenderItemFunc renders a row as the lines of a card.
type RenderItemFunc func(row model1.Row, index int) []string

// CollapseFunc returns the nested lines shown under an expanded row.
type CollapseFunc func(row model1.Row) []string

// ColorerFunc picks a row color.
type ColorerFunc func(model1.Row) tcell.Color

// TableProps configures a presentation strategy.
type TableProps struct {
	Title              string
	Columns            model1.Columns
	RenderItem         RenderItemFunc
	Collapse           CollapseFunc
	Colorer            ColorerFunc
	Sort               model1.SortState
	IdentityField      string
	PageSize           int
	RowsPerPageOptions []int
	ShowCheckbox       bool
	ShowPagination     bool
	Wide               bool
}

// IsCustomRender returns true if rows render through RenderItem rather
// than columns.
func (p TableProps) IsCustomRender() bool {
	return p.RenderItem != nil
}

func (p TableProps) color(r model1.Row) tcell.Color {
	if p.Colorer != nil {
		return p.Colorer(r)
	}
	if r.Disabled() {
		return tcell.ColorGray
	}
	return tcell.ColorWhite
}

// TableCallbacks are the notifications a strategy emits. Strategies never
// mutate table state themselves.
type TableCallbacks struct {
	OnPaginationChange func(model1.PageWindow)
	OnClickRow         func(row model1.Row, index int)
	OnSelectOne        func(id string)
	OnSelectAll        func()
	OnSelectAllPages   func()
	OnSort             func(model1.SortState)
	OnRefresh          func()
}

// Strategy renders table snapshots.
type Strategy interface {
	tview.Primitive

	// Kind returns the strategy kind.
	Kind() StrategyKind

	// Render draws a snapshot.
	Render(model.Snapshot)

	// Actions returns the strategy key bindings.
	Actions() *KeyActions

	// SetSort updates the sort indicator.
	SetSort(model1.SortState)

	// Current returns the row under the cursor.
	Current() (model1.Row, int, bool)
}

// NewStrategy picks a presentation strategy for the layout.
func NewStrategy(mobile bool, props TableProps, cb TableCallbacks) Strategy {
	if mobile {
		return NewInfiniteGrid(props, cb)
	}
	return NewFixedTable(props, cb)
}

// checkbox renders the checkbox cell of a row.
func checkbox(row model1.Row, idField string, sel model1.SelectionState) string {
	if row.Disabled() {
		return CheckDisabled
	}
	if sel.Has(row.Identity(idField)) {
		return CheckOn
	}
	return CheckOff
}

// headerCheckbox renders the select-all checkbox of a page.
func headerCheckbox(rows model1.Rows, idField string, sel model1.SelectionState) string {
	ids := rows.Selectable(idField)
	if len(ids) == 0 {
		return CheckDisabled
	}
	var n int
	for _, id := range ids {
		if sel.Has(id) {
			n++
		}
	}
	switch {
	case n == len(ids):
		return CheckOn
	case n > 0 || sel.IsAllOtherPagesSelected:
		return CheckPartial
	default:
		return CheckOff
	}
}

// nextPageSize cycles through the rows per page options.
func nextPageSize(opts []int, cur, delta int) (int, bool) {
	n := -1
	for i, v := range opts {
		if v == cur {
			n = i + delta
			break
		}
		if v > cur {
			n = i
			if delta < 0 {
				n = i - 1
			}
			break
		}
	}
	if n == -1 && len(opts) > 0 && opts[len(opts)-1] < cur && delta < 0 {
		n = len(opts) - 1
	}
	if n < 0 || n >= len(opts) {
		return cur, false
	}
	return opts[n], true
}
