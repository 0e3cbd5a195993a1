package model

import (
	"context"
	"errors"

	"github.com/b3/b3t/internal/model1"
)

var (
	// ErrLoading is returned when a pagination change arrives while a fetch is in flight.
	ErrLoading = errors.New("table is loading")

	// ErrNoFetcher is returned when a controller has no fetch collaborator.
	ErrNoFetcher = errors.New("no fetcher configured")
)

// Fetcher fetches one page of rows. It must be idempotent for identical params.
type Fetcher interface {
	// Fetch returns the page for the snapshot merged with {first, offset}.
	Fetch(ctx context.Context, params model1.FilterSnapshot) (model1.PageResult, error)
}

// FetchFunc adapts a function to a Fetcher.
type FetchFunc func(ctx context.Context, params model1.FilterSnapshot) (model1.PageResult, error)

// Fetch implements Fetcher.
func (f FetchFunc) Fetch(ctx context.Context, params model1.FilterSnapshot) (model1.PageResult, error) {
	return f(ctx, params)
}

// RefreshMode alters how a refresh treats the current selection.
type RefreshMode int

const (
	// RefreshDefault refetches and clears the selection.
	RefreshDefault RefreshMode = iota

	// ForcePreserveSelection refetches and keeps the selection.
	ForcePreserveSelection
)

func (m RefreshMode) String() string {
	if m == ForcePreserveSelection {
		return "FORCE_PRESERVE_SELECTION"
	}
	return "DEFAULT"
}

// SelectionPolicy tells how a selection persists across pages.
type SelectionPolicy int

const (
	// SinglePage selection always refers to the rows currently loaded.
	SinglePage SelectionPolicy = iota

	// CrossPage selection can include rows of pages not displayed.
	CrossPage
)

// TableListener represents a table model listener.
type TableListener interface {
	// TableLoading notifies the loading flag changed.
	TableLoading(bool)

	// TableNoData notifies listener no data was found.
	TableNoData(Snapshot)

	// TableDataChanged notifies the model data changed.
	TableDataChanged(Snapshot)

	// TableLoadFailed notifies the load failed.
	TableLoadFailed(error)
}

// SelectionListener is notified when the selection changes.
type SelectionListener interface {
	SelectionChanged(model1.SelectionState)
}

// Handle is the imperative handle a table exposes to its parent.
type Handle interface {
	// GetSelectedValue returns the current selection.
	GetSelectedValue() model1.SelectionState

	// SetList seeds the RowSet without fetching.
	SetList(model1.Rows)

	// GetList returns the current RowSet.
	GetList() model1.Rows

	// Refresh refetches the current window, bypassing the cache guard.
	Refresh(context.Context, RefreshMode) error
}

// Snapshot is a consistent copy of a table state, handed to renderers.
type Snapshot struct {
	Rows       model1.Rows
	TotalCount int
	Window     model1.PageWindow
	Loading    bool
	Filter     model1.FilterSnapshot
	Selection  model1.SelectionState
}

// Empty returns true if no rows are loaded.
func (s Snapshot) Empty() bool {
	return len(s.Rows) == 0
}
