package model

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/b3/b3t/internal/model1"
)

// DefaultWatchRate is the refresh rate used when none is given.
const DefaultWatchRate = 5 * time.Second

type fetchKind int

const (
	fetchFilter fetchKind = iota
	fetchPage
	fetchRefresh
	fetchPreserve
)

func (k fetchKind) String() string {
	switch k {
	case fetchPage:
		return "page"
	case fetchRefresh:
		return "refresh"
	case fetchPreserve:
		return "preserve"
	default:
		return "filter"
	}
}

// settledFetch is the window and filter of the rows on display.
type settledFetch struct {
	window  model1.PageWindow
	filter  model1.FilterSnapshot
	fetched bool
}

// PaginationController decides when to fetch, performs the fetch and exposes
// pagination controls. Fetches are sequenced: a response that is not the
// newest one is dropped.
type PaginationController struct {
	fetcher    Fetcher
	selection  *SelectionStore
	log        logrus.FieldLogger
	window     model1.PageWindow
	filter     model1.FilterSnapshot
	lastFilter model1.FilterSnapshot
	fetched    bool
	settled    settledFetch
	rows       model1.Rows
	total      int
	loading    bool
	seq        uint64
	listeners  []TableListener
	cancelFn   context.CancelFunc
	mx         sync.RWMutex
}

// NewPaginationController returns a controller for the first page of the given size.
func NewPaginationController(f Fetcher, sel *SelectionStore, pageSize int, log logrus.FieldLogger) *PaginationController {
	if sel == nil {
		sel = NewSelectionStore(SinglePage, model1.DefaultIdentityField)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	w := model1.NewPageWindow(pageSize)
	return &PaginationController{
		fetcher:   f,
		selection: sel,
		log:       log,
		window:    w,
		filter:    model1.FilterSnapshot{},
		settled:   settledFetch{window: w},
		listeners: make([]TableListener, 0, 2),
	}
}

// AddListener registers a table listener.
func (p *PaginationController) AddListener(l TableListener) {
	p.mx.Lock()
	defer p.mx.Unlock()
	p.listeners = append(p.listeners, l)
}

// RemoveListener unregisters a table listener.
func (p *PaginationController) RemoveListener(l TableListener) {
	p.mx.Lock()
	defer p.mx.Unlock()

	for i, lis := range p.listeners {
		if lis == l {
			p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
			return
		}
	}
}

// Selection returns the controller selection store.
func (p *PaginationController) Selection() *SelectionStore {
	return p.selection
}

// Window returns the current page window.
func (p *PaginationController) Window() model1.PageWindow {
	p.mx.RLock()
	defer p.mx.RUnlock()
	return p.window
}

// Loading returns true while a fetch is in flight.
func (p *PaginationController) Loading() bool {
	p.mx.RLock()
	defer p.mx.RUnlock()
	return p.loading
}

// TotalCount returns the total reported by the last successful fetch.
func (p *PaginationController) TotalCount() int {
	p.mx.RLock()
	defer p.mx.RUnlock()
	return p.total
}

// Rows returns the current RowSet.
func (p *PaginationController) Rows() model1.Rows {
	p.mx.RLock()
	defer p.mx.RUnlock()
	return p.rows
}

// SearchParams returns the current filter snapshot.
func (p *PaginationController) SearchParams() model1.FilterSnapshot {
	p.mx.RLock()
	defer p.mx.RUnlock()
	return p.filter.Clone()
}

// Peek returns a consistent copy of the table state.
func (p *PaginationController) Peek() Snapshot {
	p.mx.RLock()
	defer p.mx.RUnlock()
	return p.peek()
}

func (p *PaginationController) peek() Snapshot {
	return Snapshot{
		Rows:       p.rows,
		TotalCount: p.total,
		Window:     p.window,
		Loading:    p.loading,
		Filter:     p.filter.Clone(),
		Selection:  p.selection.Snapshot(),
	}
}

// SetSearchParams installs a new filter snapshot. A deep-equal snapshot is a
// no-op; a changed one moves back to the first page and fetches.
func (p *PaginationController) SetSearchParams(ctx context.Context, f model1.FilterSnapshot) error {
	p.mx.Lock()
	if p.fetched && p.lastFilter.Equal(f) {
		p.mx.Unlock()
		return nil
	}
	if patch, err := p.filter.Diff(f); err == nil && len(patch) > 0 {
		p.log.WithField("patch", patch.String()).Debug("search params changed")
	}
	p.filter = f.Clone()
	p.window = p.window.WithPage(0)
	p.mx.Unlock()

	return p.FetchList(ctx, nil, false)
}

// FetchList fetches a page. Without a window and outside a refresh, the call is
// a no-op when the search params equal those of the last fetch.
func (p *PaginationController) FetchList(ctx context.Context, w *model1.PageWindow, isRefresh bool) error {
	kind := fetchFilter
	switch {
	case isRefresh:
		kind = fetchRefresh
	case w != nil:
		kind = fetchPage
	}

	p.mx.RLock()
	cached := w == nil && !isRefresh && p.fetched && p.filter.Equal(p.lastFilter)
	win := p.window
	p.mx.RUnlock()
	if cached {
		p.log.Debug("search params unchanged, skipping fetch")
		return nil
	}
	if w != nil {
		win = *w
	}

	return p.fetch(ctx, win, kind, false)
}

// HandlePaginationChange moves to a new window. It is rejected while loading.
func (p *PaginationController) HandlePaginationChange(ctx context.Context, w model1.PageWindow) error {
	if err := w.Validate(); err != nil {
		return err
	}
	return p.fetch(ctx, w, fetchPage, true)
}

// SetPageSize changes the page size and goes back to the first page.
func (p *PaginationController) SetPageSize(ctx context.Context, first int) error {
	return p.HandlePaginationChange(ctx, p.Window().WithFirst(first))
}

// NextPage moves one page forward if there is one.
func (p *PaginationController) NextPage(ctx context.Context) error {
	p.mx.RLock()
	w, ok := p.window.Next(p.total)
	p.mx.RUnlock()
	if !ok {
		return nil
	}
	return p.HandlePaginationChange(ctx, w)
}

// PrevPage moves one page back if there is one.
func (p *PaginationController) PrevPage(ctx context.Context) error {
	w, ok := p.Window().Prev()
	if !ok {
		return nil
	}
	return p.HandlePaginationChange(ctx, w)
}

// Refresh refetches the current window, bypassing the cache guard and the
// loading gate. The selection survives only with ForcePreserveSelection.
func (p *PaginationController) Refresh(ctx context.Context, mode RefreshMode) error {
	kind := fetchRefresh
	if mode == ForcePreserveSelection {
		kind = fetchPreserve
	}
	return p.fetch(ctx, p.Window(), kind, false)
}

// SetList seeds the RowSet without fetching. The selection is kept.
func (p *PaginationController) SetList(rows model1.Rows) {
	p.mx.Lock()
	p.rows = rows
	if !p.fetched || p.total < len(rows) {
		p.total = len(rows)
	}
	snap := p.peek()
	p.mx.Unlock()

	p.selection.SetRows(rows, true)
	snap.Selection = p.selection.Snapshot()
	p.notifyData(snap)
}

func (p *PaginationController) fetch(ctx context.Context, w model1.PageWindow, kind fetchKind, gate bool) error {
	if p.fetcher == nil {
		return ErrNoFetcher
	}

	p.mx.Lock()
	if gate && p.loading {
		p.mx.Unlock()
		p.log.WithField("window", w).Debug("pagination change ignored while loading")
		return ErrLoading
	}
	p.seq++
	token := p.seq
	wasLoading := p.loading
	p.loading = true
	p.window = w
	p.fetched = true
	p.lastFilter = p.filter.Clone()
	params := p.filter.Merge(w)
	p.mx.Unlock()

	if !wasLoading {
		p.notifyLoading(true)
	}
	log := p.log.WithFields(logrus.Fields{"kind": kind.String(), "offset": w.Offset, "first": w.First, "token": token})
	log.Debug("fetching list")

	res, err := p.fetcher.Fetch(ctx, params)

	p.mx.Lock()
	if token != p.seq {
		p.mx.Unlock()
		log.Debug("dropping stale response")
		return nil
	}
	p.loading = false
	if err != nil {
		p.window, p.lastFilter, p.fetched = p.settled.window, p.settled.filter, p.settled.fetched
		p.mx.Unlock()
		log.WithError(err).Warn("fetch list failed")
		p.notifyLoading(false)
		p.notifyLoadFailed(err)
		return fmt.Errorf("fetch list: %w", err)
	}
	rows := res.Rows()
	p.rows, p.total = rows, res.TotalCount
	p.settled = settledFetch{window: w, filter: p.lastFilter, fetched: true}
	snap := p.peek()
	p.mx.Unlock()

	keep := kind == fetchPreserve || (kind == fetchPage && p.selection.Policy() == CrossPage)
	p.selection.SetRows(rows, keep)
	snap.Selection = p.selection.Snapshot()
	snap.Loading = false
	log.WithField("rows", len(rows)).WithField("total", res.TotalCount).Debug("fetched list")

	p.notifyLoading(false)
	if snap.Empty() {
		p.notifyNoData(snap)
	} else {
		p.notifyData(snap)
	}

	return nil
}

// Watch refreshes the current window periodically, preserving the selection.
func (p *PaginationController) Watch(ctx context.Context, rate time.Duration) error {
	p.mx.Lock()
	if p.cancelFn != nil {
		p.cancelFn()
	}
	watchCtx, cancel := context.WithCancel(ctx)
	p.cancelFn = cancel
	p.mx.Unlock()

	if err := p.FetchList(watchCtx, nil, false); err != nil {
		return err
	}

	go p.watchLoop(watchCtx, rate)
	return nil
}

func (p *PaginationController) watchLoop(ctx context.Context, rate time.Duration) {
	if rate <= 0 {
		rate = DefaultWatchRate
	}

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if p.Loading() {
				continue
			}
			if err := p.Refresh(ctx, ForcePreserveSelection); err != nil {
				p.log.WithError(err).Debug("watch refresh failed")
			}
		}
	}
}

// Stop stops the watch loop.
func (p *PaginationController) Stop() {
	p.mx.Lock()
	defer p.mx.Unlock()

	if p.cancelFn != nil {
		p.cancelFn()
		p.cancelFn = nil
	}
}

func (p *PaginationController) copyListeners() []TableListener {
	p.mx.RLock()
	defer p.mx.RUnlock()

	listeners := make([]TableListener, len(p.listeners))
	copy(listeners, p.listeners)
	return listeners
}

func (p *PaginationController) notifyLoading(b bool) {
	for _, l := range p.copyListeners() {
		l.TableLoading(b)
	}
}

func (p *PaginationController) notifyNoData(s Snapshot) {
	for _, l := range p.copyListeners() {
		l.TableNoData(s)
	}
}

func (p *PaginationController) notifyData(s Snapshot) {
	for _, l := range p.copyListeners() {
		l.TableDataChanged(s)
	}
}

func (p *PaginationController) notifyLoadFailed(err error) {
	for _, l := range p.copyListeners() {
		l.TableLoadFailed(err)
	}
}
