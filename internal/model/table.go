package model

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/b3/b3t/internal/model1"
)

// Options configures a table instance.
type Options struct {
	// PageSize is the initial page size.
	PageSize int

	// IdentityField names the row property used for selection, "id" by default.
	IdentityField string

	// SelectOtherPages enables cross page selection.
	SelectOtherPages bool

	// SearchParams is the initial filter snapshot.
	SearchParams model1.FilterSnapshot

	// Logger receives table diagnostics.
	Logger logrus.FieldLogger
}

// Table is the imperative handle over one table instance: it owns its
// RowSet, selection and page window.
type Table struct {
	*PaginationController
}

var _ Handle = (*Table)(nil)

// NewTable returns a table backed by the given fetcher.
func NewTable(f Fetcher, opts Options) *Table {
	policy := SinglePage
	if opts.SelectOtherPages {
		policy = CrossPage
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	sel := NewSelectionStore(policy, opts.IdentityField)
	t := Table{
		PaginationController: NewPaginationController(f, sel, opts.PageSize, log),
	}
	if opts.SearchParams != nil {
		t.filter = opts.SearchParams.Clone()
	}

	return &t
}

// Init performs the mount fetch.
func (t *Table) Init(ctx context.Context) error {
	return t.FetchList(ctx, nil, false)
}

// GetSelectedValue returns the current selection.
func (t *Table) GetSelectedValue() model1.SelectionState {
	return t.selection.Snapshot()
}

// GetList returns the current RowSet.
func (t *Table) GetList() model1.Rows {
	return t.Rows()
}

// SelectOne toggles a row by identity.
func (t *Table) SelectOne(id string) bool {
	return t.selection.SelectOne(id)
}

// SelectAll toggles the visible page.
func (t *Table) SelectAll() {
	t.selection.SelectAll()
}

// IsSelected returns true if the identity is checked.
func (t *Table) IsSelected(id string) bool {
	return t.selection.IsSelected(id)
}

// IdentityField returns the field used for selection.
func (t *Table) IdentityField() string {
	return t.selection.IdentityField()
}
