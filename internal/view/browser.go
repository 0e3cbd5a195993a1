// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of b3t

package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/b3/b3t/internal/config/data"
	"github.com/b3/b3t/internal/dao"
	"github.com/b3/b3t/internal/model"
	"github.com/b3/b3t/internal/model1"
	"github.com/b3/b3t/internal/render"
	"github.com/b3/b3t/internal/ui"
)

// Browser represents a generic storefront resource browser.
type Browser struct {
	*ui.TableView

	app      *App
	rid      *dao.ResourceID
	table    *model.Table
	fetcher  model.Fetcher
	context  *data.ResourceContext
	search   string
	log      logrus.FieldLogger
	cancelFn context.CancelFunc
	mx       sync.RWMutex
}

var _ model.TableListener = (*Browser)(nil)

// NewBrowser returns a new resource browser.
func NewBrowser(app *App, rid *dao.ResourceID) *Browser {
	return &Browser{
		app: app,
		rid: rid,
		log: logrus.WithField("resource", rid.String()),
	}
}

// SeedSearch sets the search term used by the mount fetch.
func (b *Browser) SeedSearch(term string) {
	b.mx.Lock()
	defer b.mx.Unlock()

	b.search = strings.TrimSpace(term)
}

// Init initializes the browser component.
func (b *Browser) Init(ctx context.Context) error {
	conf := b.app.Conf().B3t
	rc, err := conf.ActivateView(b.rid.String())
	if err != nil {
		return err
	}
	f, err := dao.FetcherFor(b.app.GetFactory(), b.rid)
	if err != nil {
		return err
	}
	r, err := render.For(b.rid.String())
	if err != nil {
		return err
	}

	orderBy, dir := rc.Sort()
	sort := model1.SortState{OrderBy: orderBy, Direction: model1.SortDirection(dir)}
	params := sort.Apply(model1.FilterSnapshot{})
	b.mx.RLock()
	if b.search != "" {
		params[model1.ParamSearch] = b.search
	}
	b.mx.RUnlock()

	pageSize := conf.PageSizeFor(rc)
	b.table = model.NewTable(f, model.Options{
		PageSize:         pageSize,
		SelectOtherPages: conf.CrossPageFor(rc),
		SearchParams:     params,
		Logger:           b.log,
	})

	mobile := conf.IsMobile(rc)
	props := ui.TableProps{
		Title:              b.rid.Resource,
		Columns:            r.Columns(),
		Colorer:            ui.ColorerFunc(r.ColorerFunc()),
		Sort:               sort,
		PageSize:           pageSize,
		RowsPerPageOptions: conf.RowsPerPageOptions,
		ShowCheckbox:       true,
		ShowPagination:     true,
	}
	if mobile {
		props.RenderItem = r.RenderItem
	}
	if rc.FeatureGates.Collapse || *b.rid == dao.QuoteRID {
		props.Collapse = r.Collapse
	}

	b.fetcher, b.context = f, rc
	b.TableView = ui.NewTableView(b.table, mobile, props)
	b.SetQueue(b.app.QueueUpdateDraw)
	b.SetLogger(b.log)
	b.SetClickFunc(b.describeRow)
	b.SetErrorFunc(b.loadFailed)
	b.bindKeys(b.Strategy().Actions())

	return b.TableView.Init(b.prepareContext(ctx))
}

// Start mounts the table, watching it when auto refresh is on.
func (b *Browser) Start() {
	b.table.AddListener(b)
	if !b.context.FeatureGates.AutoRefresh {
		b.Load()
		return
	}

	rate := time.Duration(b.app.Conf().B3t.RefreshRate * float32(time.Second))
	b.Run("watch", func(ctx context.Context) error {
		return b.table.Watch(ctx, rate)
	})
}

// Stop terminates the browser updates.
func (b *Browser) Stop() {
	b.mx.Lock()
	if b.cancelFn != nil {
		b.cancelFn()
		b.cancelFn = nil
	}
	b.mx.Unlock()

	if b.table == nil {
		return
	}
	b.table.Stop()
	b.table.RemoveListener(b)
	b.TableView.Stop()
}

// Name returns the component name.
func (b *Browser) Name() string {
	return b.rid.String()
}

// Table returns the table handle.
func (b *Browser) Table() *model.Table {
	return b.table
}

// SetFilter applies a search term.
func (b *Browser) SetFilter(text string) {
	b.SetSearch(text)
}

func (b *Browser) prepareContext(ctx context.Context) context.Context {
	b.mx.Lock()
	defer b.mx.Unlock()

	if b.cancelFn != nil {
		b.cancelFn()
	}
	ctx, b.cancelFn = context.WithCancel(ctx)

	return ctx
}

// bindKeys sets up browser-specific key bindings.
func (b *Browser) bindKeys(aa *ui.KeyActions) {
	aa.Bulk(ui.KeyMap{
		ui.KeyD: ui.NewKeyAction("Describe", b.describeCmd, true),
	})
	b.bindResourceActions(aa)
}

// bindResourceActions adds dynamic key bindings from the action registry.
func (b *Browser) bindResourceActions(aa *ui.KeyActions) {
	for _, action := range ui.GetActions(b.rid.String()) {
		act := action
		handler := func(*tcell.EventKey) *tcell.EventKey {
			b.executeAction(act)
			return nil
		}
		if act.Dangerous {
			aa.Add(act.Key, ui.NewDangerousKeyAction(act.Name, handler, true))
			continue
		}
		aa.Add(act.Key, ui.NewKeyAction(act.Name, handler, true))
	}
}

// executeAction runs a registered action over the selection, with
// confirmation for dangerous ones.
func (b *Browser) executeAction(act ui.ResourceAction) {
	sel := b.table.GetSelectedValue()
	if sel.Empty() {
		b.app.Flash().Warnf("%s: nothing selected", act.Name)
		return
	}
	if !act.Dangerous {
		b.runAction(act)
		return
	}

	count := fmt.Sprintf("%d", len(sel.SelectedIDs))
	if sel.IsAllOtherPagesSelected {
		count = fmt.Sprintf("all %d", b.table.TotalCount())
	}
	c := ui.ShowConfirm(b.app.Content, fmt.Sprintf("%s %s %s?", act.Name, count, b.rid.Resource), true, func() {
		b.app.focusCurrent()
		b.runAction(act)
	})
	c.SetOnCancel(b.app.focusCurrent)
	b.app.SetFocus(c)
}

func (b *Browser) runAction(act ui.ResourceAction) {
	b.app.Flash().Infof("%s...", act.Name)
	b.Run(strings.ToLower(act.Name), func(ctx context.Context) error {
		ids, err := b.selectedIDs(ctx)
		if err != nil {
			b.app.Flash().Err(err)
			return err
		}
		msg, err := act.Handler(ctx, ids)
		if err != nil {
			b.app.Flash().Errf("%s failed: %v", act.Name, err)
			return err
		}
		b.app.Flash().Info(msg)

		return b.table.Refresh(ctx, model.RefreshDefault)
	})
}

// selectedIDs resolves the selection to row identities. A selection spanning
// every page is resolved against the whole filtered result, minus disabled rows.
func (b *Browser) selectedIDs(ctx context.Context) ([]string, error) {
	sel, total := b.table.GetSelectedValue(), b.table.TotalCount()
	if !sel.IsAllOtherPagesSelected || total == 0 {
		return sel.SelectedIDs, nil
	}

	params := b.table.SearchParams().Merge(model1.PageWindow{First: total})
	res, err := b.fetcher.Fetch(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("resolve selection: %w", err)
	}
	field := b.table.IdentityField()
	ids := make([]string, 0, len(res.Edges))
	for _, r := range res.Rows() {
		if r.Disabled() {
			continue
		}
		ids = append(ids, r.Identity(field))
	}

	return ids, nil
}

func (b *Browser) describeCmd(*tcell.EventKey) *tcell.EventKey {
	if row, idx, ok := b.Strategy().Current(); ok {
		b.describeRow(row, idx)
	}
	return nil
}

func (b *Browser) describeRow(row model1.Row, _ int) {
	id := row.Identity(b.table.IdentityField())
	if id == "" {
		return
	}
	if err := b.app.Push(NewDescribe(b.app, b.rid, id, row.Record())); err != nil {
		b.app.Flash().Err(err)
	}
}

func (b *Browser) loadFailed(err error) {
	b.app.Flash().Err(friendlyError(err, b.rid))
}

// persist remembers the sort order and page size of the resource.
func (b *Browser) persist(s model.Snapshot) {
	conf := b.app.Conf().B3t
	var changed bool

	sort := b.Sort()
	if orderBy, dir := b.context.Sort(); orderBy != sort.OrderBy || dir != string(sort.Direction) {
		b.context.SetSort(sort.OrderBy, string(sort.Direction))
		changed = true
	}
	if b.Strategy().Kind() == ui.FixedTableKind && s.Window.First > 0 && s.Window.First != conf.PageSizeFor(b.context) {
		b.context.SetPageSize(s.Window.First)
		changed = true
	}
	if !changed {
		return
	}
	if err := conf.SaveView(b.rid.String()); err != nil {
		b.log.WithError(err).Warn("unable to save view settings")
	}
}

// TableLoading implements model.TableListener.
func (b *Browser) TableLoading(bool) {}

// TableNoData implements model.TableListener.
func (b *Browser) TableNoData(s model.Snapshot) {
	b.persist(s)
}

// TableDataChanged implements model.TableListener.
func (b *Browser) TableDataChanged(s model.Snapshot) {
	b.persist(s)
}

// TableLoadFailed implements model.TableListener.
func (b *Browser) TableLoadFailed(error) {}

// friendlyError rewrites well known fetch failures.
func friendlyError(err error, rid *dao.ResourceID) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: timed out", rid.Resource)
	case errors.Is(err, dao.ErrUnknownResource):
		return fmt.Errorf("%s: not available", rid.Resource)
	default:
		return err
	}
}
