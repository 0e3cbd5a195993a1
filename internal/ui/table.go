// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of b3t

package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/b3/b3t/internal/model"
	"github.com/b3/b3t/internal/model1"
)

const (
	// TitleFmt formats the table title with resource and count.
	TitleFmt = " <%s>[%d] "

	// LoadingMsg is shown while the first page loads.
	LoadingMsg = "Loading..."

	// NoDataMsg is shown when the result set is empty.
	NoDataMsg = "No data"

	collapseIndent = "  └ "
)

// FixedTable renders a page of rows with a header, checkboxes and a
// pagination footer.
type FixedTable struct {
	*tview.Table

	props    TableProps
	cb       TableCallbacks
	actions  *KeyActions
	snap     model.Snapshot
	lines    []int
	expanded map[string]struct{}
	title    string
	mx       sync.RWMutex
}

var _ Strategy = (*FixedTable)(nil)

// NewFixedTable returns a new table strategy.
func NewFixedTable(props TableProps, cb TableCallbacks) *FixedTable {
	t := FixedTable{
		Table:    tview.NewTable(),
		props:    props,
		cb:       cb,
		actions:  NewKeyActions(),
		expanded: make(map[string]struct{}),
	}
	t.SetFixed(1, 0)
	t.SetBorder(true)
	t.SetBorderAttributes(tcell.AttrBold)
	t.SetBorderPadding(0, 0, 1, 1)
	t.SetSelectable(true, false)
	t.SetBackgroundColor(tcell.ColorDefault)
	t.SetInputCapture(t.keyboard)
	t.bindKeys()
	t.Render(model.Snapshot{Loading: true, Window: model1.NewPageWindow(props.PageSize)})

	return &t
}

// Kind returns the strategy kind.
func (*FixedTable) Kind() StrategyKind {
	return FixedTableKind
}

// Actions returns the key actions.
func (t *FixedTable) Actions() *KeyActions {
	return t.actions
}

// Hints returns menu hints for key bindings.
func (t *FixedTable) Hints() MenuHints {
	return t.actions.Hints()
}

// Title returns the current title.
func (t *FixedTable) Title() string {
	t.mx.RLock()
	defer t.mx.RUnlock()

	return t.title
}

// SetSort updates the sort indicator.
func (t *FixedTable) SetSort(s model1.SortState) {
	t.mx.Lock()
	t.props.Sort = s
	snap := t.snap
	t.mx.Unlock()

	t.Render(snap)
}

// Sort returns the sort indicator.
func (t *FixedTable) Sort() model1.SortState {
	t.mx.RLock()
	defer t.mx.RUnlock()

	return t.props.Sort
}

// Current returns the row under the cursor.
func (t *FixedTable) Current() (model1.Row, int, bool) {
	row, _ := t.GetSelection()

	t.mx.RLock()
	defer t.mx.RUnlock()

	if row < 0 || row >= len(t.lines) || t.lines[row] < 0 {
		return model1.Row{}, -1, false
	}
	idx := t.lines[row]
	return t.snap.Rows[idx], idx, true
}

// IsExpanded returns true if the row nested content is shown.
func (t *FixedTable) IsExpanded(id string) bool {
	t.mx.RLock()
	defer t.mx.RUnlock()

	_, ok := t.expanded[id]
	return ok
}

// Render draws a snapshot.
func (t *FixedTable) Render(s model.Snapshot) {
	cur, _, hasCur := t.Current()

	t.mx.Lock()
	t.snap = s
	props := t.props
	t.lines = t.lines[:0]
	t.title = t.formatTitle(s)
	title := t.title
	t.mx.Unlock()

	t.Clear()
	t.SetTitle(title)
	t.buildHeader(props, s)
	if s.Empty() {
		msg := NoDataMsg
		if s.Loading {
			msg = LoadingMsg
		}
		t.showNoData(msg)
		return
	}

	r := 1
	for i, row := range s.Rows {
		t.buildRow(props, s, row, i, r)
		r++
		if props.Collapse == nil || !t.IsExpanded(row.Identity(props.IdentityField)) {
			continue
		}
		for _, l := range props.Collapse(row) {
			t.buildCollapse(props, l, i, r)
			r++
		}
	}

	t.restoreCursor(props, cur, hasCur)
}

func (t *FixedTable) formatTitle(s model.Snapshot) string {
	title := fmt.Sprintf(TitleFmt, t.props.Title, s.TotalCount)
	if s.Loading {
		title = strings.TrimRight(title, " ") + " loading... "
	}
	return title
}

func (t *FixedTable) restoreCursor(props TableProps, cur model1.Row, hasCur bool) {
	if hasCur {
		id := cur.Identity(props.IdentityField)
		for r := 1; r < t.GetRowCount(); r++ {
			if c := t.GetCell(r, 0); c != nil && c.GetReference() == id {
				t.Select(r, 0)
				return
			}
		}
	}
	t.Select(1, 0)
}

// showNoData displays a message when there's no data.
func (t *FixedTable) showNoData(msg string) {
	cell := tview.NewTableCell(msg)
	cell.SetTextColor(tcell.ColorGray)
	cell.SetAlign(tview.AlignCenter)
	cell.SetSelectable(false)
	t.SetCell(1, 0, cell)

	t.mx.Lock()
	t.lines = append(t.lines, -1)
	t.mx.Unlock()
}

// buildHeader builds the table header row.
func (t *FixedTable) buildHeader(props TableProps, s model.Snapshot) {
	t.mx.Lock()
	t.lines = append(t.lines, -1)
	t.mx.Unlock()

	col := 0
	if props.ShowCheckbox {
		t.SetCell(0, col, headerCell(headerCheckbox(s.Rows, props.IdentityField, s.Selection), tview.AlignCenter))
		col++
	}
	if props.IsCustomRender() {
		return
	}
	for _, c := range props.Columns.Visible(props.Wide) {
		cell := headerCell(columnTitle(c)+props.Sort.Arrow(c.Key), alignOf(c))
		if props.Sort.OrderBy == c.Key {
			cell.SetAttributes(tcell.AttrBold)
		}
		t.SetCell(0, col, cell)
		col++
	}
}

// buildRow builds a single data row.
func (t *FixedTable) buildRow(props TableProps, s model.Snapshot, row model1.Row, idx, r int) {
	t.mx.Lock()
	t.lines = append(t.lines, idx)
	t.mx.Unlock()

	id := row.Identity(props.IdentityField)
	fg := props.color(row)
	index := s.Window.Offset + idx

	var fields []string
	if props.ShowCheckbox {
		fields = append(fields, checkbox(row, props.IdentityField, s.Selection))
	}
	aligns := make([]int, 0, len(props.Columns)+1)
	if props.ShowCheckbox {
		aligns = append(aligns, tview.AlignCenter)
	}
	if props.IsCustomRender() {
		fields = append(fields, strings.Join(props.RenderItem(row, index), " │ "))
		aligns = append(aligns, tview.AlignLeft)
	} else {
		for _, c := range props.Columns.Visible(props.Wide) {
			fields = append(fields, c.Cell(row, index))
			aligns = append(aligns, alignOf(c))
		}
	}

	for col, field := range fields {
		cell := tview.NewTableCell(field)
		cell.SetTextColor(fg)
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetAlign(aligns[col])
		cell.SetExpansion(1)
		if col == 0 {
			cell.SetReference(id)
		}
		t.SetCell(r, col, cell)
	}
}

func (t *FixedTable) buildCollapse(props TableProps, line string, idx, r int) {
	t.mx.Lock()
	t.lines = append(t.lines, idx)
	t.mx.Unlock()

	col := 0
	if props.ShowCheckbox {
		col = 1
	}
	cell := tview.NewTableCell(collapseIndent + line)
	cell.SetTextColor(tcell.ColorDarkCyan)
	cell.SetBackgroundColor(tcell.ColorDefault)
	t.SetCell(r, col, cell)
}

func headerCell(s string, align int) *tview.TableCell {
	cell := tview.NewTableCell(s)
	cell.SetTextColor(tcell.ColorYellow)
	cell.SetBackgroundColor(tcell.ColorDefault)
	cell.SetAlign(align)
	cell.SetExpansion(1)
	cell.SetSelectable(false)

	return cell
}

func columnTitle(c model1.Column) string {
	if c.Title != "" {
		return c.Title
	}
	return strings.ToUpper(c.Key)
}

func alignOf(c model1.Column) int {
	if c.Align != 0 {
		return c.Align
	}
	if c.Capacity {
		return tview.AlignRight
	}
	return tview.AlignLeft
}

// keyboard handles table keyboard input.
func (t *FixedTable) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	key := evt.Key()
	row, col := t.GetSelection()
	rowCount := t.GetRowCount()

	if key == tcell.KeyRune {
		switch evt.Rune() {
		case 'j':
			if row < rowCount-1 {
				t.Select(row+1, col)
			}
			return nil
		case 'k':
			if row > 1 {
				t.Select(row-1, col)
			}
			return nil
		case 'g':
			if rowCount > 1 {
				t.Select(1, col)
			}
			return nil
		case 'G':
			if rowCount > 1 {
				t.Select(rowCount-1, col)
			}
			return nil
		}
	}

	switch key {
	case tcell.KeyDown:
		if row < rowCount-1 {
			t.Select(row+1, col)
		}
		return nil
	case tcell.KeyUp:
		if row > 1 {
			t.Select(row-1, col)
		}
		return nil
	case tcell.KeyHome:
		if rowCount > 1 {
			t.Select(1, col)
		}
		return nil
	case tcell.KeyEnd:
		if rowCount > 1 {
			t.Select(rowCount-1, col)
		}
		return nil
	}

	evt, _ = t.actions.Handle(evt)

	return evt
}

// bindKeys sets up table key bindings.
func (t *FixedTable) bindKeys() {
	t.actions.Bulk(KeyMap{
		tcell.KeyEnter: NewKeyAction("Open", t.clickCmd, true),
		tcell.KeyCtrlR: NewKeyAction("Refresh", t.refreshCmd, true),
		KeyRBracket:    NewKeyAction("Next Page", t.nextPageCmd, true),
		KeyLBracket:    NewKeyAction("Prev Page", t.prevPageCmd, true),
		KeyPlus:        NewKeyAction("More Rows", t.pageSizeCmd(1), false),
		KeyMinus:       NewKeyAction("Less Rows", t.pageSizeCmd(-1), false),
		KeyS:           NewKeyAction("Sort", t.sortCmd, true),
		KeyShiftS:      NewKeyAction("Reverse Sort", t.reverseSortCmd, false),
		tcell.KeyPgDn:  NewKeyAction("Next Page", t.nextPageCmd, false),
		tcell.KeyPgUp:  NewKeyAction("Prev Page", t.prevPageCmd, false),
	})
	if t.props.ShowCheckbox {
		t.actions.Bulk(KeyMap{
			KeySpace:  NewKeyAction("Select", t.selectCmd, true),
			KeyA:      NewKeyAction("Select Page", t.selectAllCmd, true),
			KeyShiftA: NewKeyAction("Select All Pages", t.selectAllPagesCmd, false),
		})
	}
	if t.props.Collapse != nil {
		t.actions.Add(KeyO, NewKeyAction("Expand", t.collapseCmd, true))
	}
}

func (t *FixedTable) snapshot() (model.Snapshot, TableProps) {
	t.mx.RLock()
	defer t.mx.RUnlock()

	return t.snap, t.props
}

func (t *FixedTable) clickCmd(evt *tcell.EventKey) *tcell.EventKey {
	row, idx, ok := t.Current()
	if !ok || t.cb.OnClickRow == nil {
		return evt
	}
	t.cb.OnClickRow(row, idx)

	return nil
}

func (t *FixedTable) refreshCmd(*tcell.EventKey) *tcell.EventKey {
	if t.cb.OnRefresh != nil {
		t.cb.OnRefresh()
	}
	return nil
}

func (t *FixedTable) nextPageCmd(*tcell.EventKey) *tcell.EventKey {
	s, _ := t.snapshot()
	if w, ok := s.Window.Next(s.TotalCount); ok {
		t.paginate(w)
	}
	return nil
}

func (t *FixedTable) prevPageCmd(*tcell.EventKey) *tcell.EventKey {
	s, _ := t.snapshot()
	if w, ok := s.Window.Prev(); ok {
		t.paginate(w)
	}
	return nil
}

func (t *FixedTable) pageSizeCmd(delta int) ActionHandler {
	return func(*tcell.EventKey) *tcell.EventKey {
		s, props := t.snapshot()
		if n, ok := nextPageSize(props.RowsPerPageOptions, s.Window.First, delta); ok {
			t.paginate(s.Window.WithFirst(n))
		}
		return nil
	}
}

func (t *FixedTable) paginate(w model1.PageWindow) {
	if t.cb.OnPaginationChange != nil {
		t.cb.OnPaginationChange(w)
	}
}

func (t *FixedTable) sortCmd(*tcell.EventKey) *tcell.EventKey {
	_, props := t.snapshot()
	c, ok := props.Columns.Visible(props.Wide).NextSortable(props.Sort.OrderBy)
	if !ok {
		return nil
	}
	t.sort(model1.SortState{OrderBy: c.Key, Direction: model1.SortAsc})

	return nil
}

func (t *FixedTable) reverseSortCmd(*tcell.EventKey) *tcell.EventKey {
	_, props := t.snapshot()
	if props.Sort.OrderBy == "" {
		return nil
	}
	t.sort(props.Sort.Toggle(props.Sort.OrderBy))

	return nil
}

func (t *FixedTable) sort(s model1.SortState) {
	if t.cb.OnSort != nil {
		t.cb.OnSort(s)
	}
}

func (t *FixedTable) selectCmd(evt *tcell.EventKey) *tcell.EventKey {
	row, _, ok := t.Current()
	if !ok {
		return evt
	}
	if t.cb.OnSelectOne != nil && !row.Disabled() {
		t.cb.OnSelectOne(row.Identity(t.props.IdentityField))
	}
	t.keyboard(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone))

	return nil
}

func (t *FixedTable) selectAllCmd(*tcell.EventKey) *tcell.EventKey {
	if t.cb.OnSelectAll != nil {
		t.cb.OnSelectAll()
	}
	return nil
}

func (t *FixedTable) selectAllPagesCmd(*tcell.EventKey) *tcell.EventKey {
	if t.cb.OnSelectAllPages != nil {
		t.cb.OnSelectAllPages()
	}
	return nil
}

func (t *FixedTable) collapseCmd(evt *tcell.EventKey) *tcell.EventKey {
	row, _, ok := t.Current()
	if !ok {
		return evt
	}
	id := row.Identity(t.props.IdentityField)

	t.mx.Lock()
	if _, ok := t.expanded[id]; ok {
		delete(t.expanded, id)
	} else {
		t.expanded[id] = struct{}{}
	}
	snap := t.snap
	t.mx.Unlock()

	t.Render(snap)

	return nil
}
