package ui

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/derailed/tview"
	"github.com/sirupsen/logrus"

	"github.com/b3/b3t/internal/model"
	"github.com/b3/b3t/internal/model1"
)

// TableView binds a table model to a presentation strategy. Strategies only
// emit callbacks; the view turns them into model operations.
type TableView struct {
	*tview.Flex

	model    Tabular
	strategy Strategy
	footer   *Pagination
	props    TableProps
	ctx      context.Context
	queue    func(func())
	exec     func(func())
	onClick  func(model1.Row, int)
	onError  func(error)
	log      logrus.FieldLogger
	mx       sync.RWMutex
}

var (
	_ model.TableListener     = (*TableView)(nil)
	_ model.SelectionListener = (*TableView)(nil)
)

// NewTableView returns a view over a table model.
func NewTableView(m Tabular, mobile bool, props TableProps) *TableView {
	if props.IdentityField == "" {
		props.IdentityField = m.IdentityField()
	}
	v := TableView{
		Flex:  tview.NewFlex().SetDirection(tview.FlexRow),
		model: m,
		props: props,
		ctx:   context.Background(),
		queue: func(f func()) { f() },
		exec:  func(f func()) { go f() },
		log:   logrus.StandardLogger(),
	}
	v.strategy = NewStrategy(mobile, props, v.callbacks())
	v.footer = NewPagination(v.strategy.Kind(), props.RowsPerPageOptions)
	v.AddItem(v.strategy, 0, 1, true)
	if props.ShowPagination {
		v.AddItem(v.footer, 1, 0, false)
	}

	return &v
}

// SetQueue sets how draws are scheduled on the UI loop.
func (v *TableView) SetQueue(f func(func())) {
	v.queue = f
}

// SetExecutor sets how model operations are dispatched.
func (v *TableView) SetExecutor(f func(func())) {
	v.exec = f
}

// SetClickFunc sets the row activation callback.
func (v *TableView) SetClickFunc(f func(model1.Row, int)) {
	v.onClick = f
}

// SetErrorFunc sets the load failure callback.
func (v *TableView) SetErrorFunc(f func(error)) {
	v.onError = f
}

// SetLogger sets the view logger.
func (v *TableView) SetLogger(l logrus.FieldLogger) {
	v.log = l
}

// Strategy returns the presentation strategy.
func (v *TableView) Strategy() Strategy {
	return v.strategy
}

// Footer returns the pagination footer.
func (v *TableView) Footer() *Pagination {
	return v.footer
}

// Model returns the bound table.
func (v *TableView) Model() Tabular {
	return v.model
}

// Hints returns the strategy hints.
func (v *TableView) Hints() MenuHints {
	return v.strategy.Actions().Hints()
}

// Init registers the view with its model and draws the current state.
func (v *TableView) Init(ctx context.Context) error {
	v.mx.Lock()
	v.ctx = ctx
	v.mx.Unlock()

	v.model.AddListener(v)
	v.model.Selection().AddListener(v)
	v.render(v.model.Peek())

	return nil
}

// Stop unregisters the view.
func (v *TableView) Stop() {
	v.model.RemoveListener(v)
	v.model.Selection().RemoveListener(v)
}

// Sort returns the sort state.
func (v *TableView) Sort() model1.SortState {
	v.mx.RLock()
	defer v.mx.RUnlock()

	return v.props.Sort
}

// SetSort changes the sort state and refetches page 0.
func (v *TableView) SetSort(s model1.SortState) {
	v.mx.Lock()
	v.props.Sort = s
	v.mx.Unlock()

	v.strategy.SetSort(s)
	v.Run("sort", func(ctx context.Context) error {
		return v.model.SetSearchParams(ctx, s.Apply(v.model.SearchParams()))
	})
}

// SetSearch changes the search term and refetches page 0.
func (v *TableView) SetSearch(term string) {
	term = strings.TrimSpace(term)
	v.Run("search", func(ctx context.Context) error {
		f := v.model.SearchParams()
		if term == "" {
			delete(f, model1.ParamSearch)
		} else {
			f[model1.ParamSearch] = term
		}
		return v.model.SetSearchParams(ctx, f)
	})
}

// Refresh refetches the current window.
func (v *TableView) Refresh(mode model.RefreshMode) {
	v.Run("refresh", func(ctx context.Context) error {
		return v.model.Refresh(ctx, mode)
	})
}

func (v *TableView) callbacks() TableCallbacks {
	return TableCallbacks{
		OnPaginationChange: func(w model1.PageWindow) {
			v.Run("paginate", func(ctx context.Context) error {
				return v.model.HandlePaginationChange(ctx, w)
			})
		},
		OnClickRow: func(r model1.Row, idx int) {
			if v.onClick != nil {
				v.onClick(r, idx)
			}
		},
		OnSelectOne: func(id string) {
			v.model.SelectOne(id)
		},
		OnSelectAll: func() {
			v.model.SelectAll()
		},
		OnSelectAllPages: func() {
			v.model.Selection().SelectAllPages()
		},
		OnSort: v.SetSort,
		OnRefresh: func() {
			v.Refresh(model.RefreshDefault)
		},
	}
}

// Load performs the mount fetch.
func (v *TableView) Load() {
	v.Run("load", v.model.Init)
}

// Run executes a table operation on the view executor. Canceled operations
// are dropped and busy ones logged at debug level.
func (v *TableView) Run(op string, f func(context.Context) error) {
	v.mx.RLock()
	ctx := v.ctx
	v.mx.RUnlock()

	v.exec(func() {
		err := f(ctx)
		switch {
		case err == nil, errors.Is(err, context.Canceled):
		case errors.Is(err, model.ErrLoading):
			v.log.WithField("op", op).Debug("table busy")
		default:
			v.log.WithError(err).WithField("op", op).Warn("table operation failed")
		}
	})
}

func (v *TableView) render(s model.Snapshot) {
	v.queue(func() {
		v.strategy.Render(s)
		v.footer.Render(s)
	})
}

// TableLoading implements model.TableListener.
func (v *TableView) TableLoading(bool) {
	v.render(v.model.Peek())
}

// TableNoData implements model.TableListener.
func (v *TableView) TableNoData(s model.Snapshot) {
	v.render(s)
}

// TableDataChanged implements model.TableListener.
func (v *TableView) TableDataChanged(s model.Snapshot) {
	v.render(s)
}

// TableLoadFailed implements model.TableListener.
func (v *TableView) TableLoadFailed(err error) {
	v.render(v.model.Peek())
	if v.onError != nil {
		v.queue(func() { v.onError(err) })
	}
}

// SelectionChanged implements model.SelectionListener.
func (v *TableView) SelectionChanged(model1.SelectionState) {
	v.render(v.model.Peek())
}
