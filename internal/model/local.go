package model

import (
	"context"
	"sync"

	"github.com/b3/b3t/internal/model1"
)

// LocalFetcher pages through an in-memory list. It honors the search,
// orderBy and sortDirection params.
type LocalFetcher struct {
	rows    model1.Rows
	idField string
	mx      sync.RWMutex
}

// NewLocalFetcher returns a fetcher over the given rows.
func NewLocalFetcher(rows model1.Rows, idField string) *LocalFetcher {
	if idField == "" {
		idField = model1.DefaultIdentityField
	}
	return &LocalFetcher{rows: rows, idField: idField}
}

// SetRows replaces the backing list.
func (l *LocalFetcher) SetRows(rows model1.Rows) {
	l.mx.Lock()
	defer l.mx.Unlock()
	l.rows = rows
}

// Len returns the size of the backing list.
func (l *LocalFetcher) Len() int {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return len(l.rows)
}

// Fetch implements Fetcher.
func (l *LocalFetcher) Fetch(ctx context.Context, params model1.FilterSnapshot) (model1.PageResult, error) {
	if err := ctx.Err(); err != nil {
		return model1.PageResult{}, err
	}

	l.mx.RLock()
	search := params.String(model1.ParamSearch)
	matched := make(model1.Rows, 0, len(l.rows))
	for _, r := range l.rows {
		if model1.MatchRow(r, search) {
			matched = append(matched, r)
		}
	}
	l.mx.RUnlock()

	if orderBy := params.String(model1.ParamOrderBy); orderBy != "" {
		dir := model1.SortDirection(params.String(model1.ParamSortDirection))
		model1.SortRows(matched, orderBy, l.idField, dir)
	}

	return Window(matched, params.Window()), nil
}

// Window slices rows to a page result.
func Window(rows model1.Rows, w model1.PageWindow) model1.PageResult {
	res := model1.PageResult{TotalCount: len(rows), Edges: []any{}}
	if w.Offset >= len(rows) {
		return res
	}
	end := w.Offset + w.First
	if end > len(rows) {
		end = len(rows)
	}
	for _, r := range rows[w.Offset:end] {
		res.Edges = append(res.Edges, r)
	}
	return res
}

// LocalTable is a table over an in-memory list.
type LocalTable struct {
	*Table

	source *LocalFetcher
}

// NewLocalTable returns a table paging through rows held in memory.
func NewLocalTable(rows model1.Rows, opts Options) *LocalTable {
	src := NewLocalFetcher(rows, opts.IdentityField)
	return &LocalTable{
		Table:  NewTable(src, opts),
		source: src,
	}
}

// Source returns the backing list.
func (l *LocalTable) Source() *LocalFetcher {
	return l.source
}

// Replace swaps the backing list and refetches the current window.
func (l *LocalTable) Replace(ctx context.Context, rows model1.Rows, mode RefreshMode) error {
	l.source.SetRows(rows)
	return l.Refresh(ctx, mode)
}
