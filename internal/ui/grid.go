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

// DefaultGridColumns is the number of cards per grid line.
const DefaultGridColumns = 2

type cardPos struct {
	row, col int
}

// InfiniteGrid renders rows as cards and grows its window when the cursor
// reaches the last loaded card.
type InfiniteGrid struct {
	*tview.Table

	props     TableProps
	cb        TableCallbacks
	actions   *KeyActions
	snap      model.Snapshot
	cols      int
	cursor    int
	cards     []cardPos
	requested int
	expanded  map[string]struct{}
	title     string
	mx        sync.RWMutex
}

var _ Strategy = (*InfiniteGrid)(nil)

// NewInfiniteGrid returns a new grid strategy.
func NewInfiniteGrid(props TableProps, cb TableCallbacks) *InfiniteGrid {
	g := InfiniteGrid{
		Table:    tview.NewTable(),
		props:    props,
		cb:       cb,
		actions:  NewKeyActions(),
		cols:     DefaultGridColumns,
		expanded: make(map[string]struct{}),
	}
	g.SetBorder(true)
	g.SetBorderPadding(0, 0, 1, 1)
	g.SetSelectable(true, true)
	g.SetBackgroundColor(tcell.ColorDefault)
	g.SetInputCapture(g.keyboard)
	g.bindKeys()
	g.Render(model.Snapshot{Loading: true, Window: model1.NewPageWindow(props.PageSize)})

	return &g
}

// Kind returns the strategy kind.
func (*InfiniteGrid) Kind() StrategyKind {
	return InfiniteScrollKind
}

// Actions returns the key actions.
func (g *InfiniteGrid) Actions() *KeyActions {
	return g.actions
}

// Hints returns menu hints for key bindings.
func (g *InfiniteGrid) Hints() MenuHints {
	return g.actions.Hints()
}

// SetColumns changes the number of cards per line.
func (g *InfiniteGrid) SetColumns(n int) {
	if n <= 0 {
		n = 1
	}
	g.mx.Lock()
	g.cols = n
	snap := g.snap
	g.mx.Unlock()

	g.Render(snap)
}

// Title returns the current title.
func (g *InfiniteGrid) Title() string {
	g.mx.RLock()
	defer g.mx.RUnlock()

	return g.title
}

// SetSort updates the sort state.
func (g *InfiniteGrid) SetSort(s model1.SortState) {
	g.mx.Lock()
	g.props.Sort = s
	g.mx.Unlock()
}

// Current returns the card under the cursor.
func (g *InfiniteGrid) Current() (model1.Row, int, bool) {
	g.mx.RLock()
	defer g.mx.RUnlock()

	if g.cursor < 0 || g.cursor >= len(g.snap.Rows) {
		return model1.Row{}, -1, false
	}
	return g.snap.Rows[g.cursor], g.cursor, true
}

// Render draws a snapshot.
func (g *InfiniteGrid) Render(s model.Snapshot) {
	g.mx.Lock()
	if len(s.Rows) != len(g.snap.Rows) {
		g.requested = 0
	}
	g.snap = s
	if g.cursor >= len(s.Rows) {
		g.cursor = len(s.Rows) - 1
	}
	if g.cursor < 0 {
		g.cursor = 0
	}
	g.title = fmt.Sprintf(TitleFmt, g.props.Title, s.TotalCount)
	props, cols := g.props, g.cols
	title := g.title
	g.mx.Unlock()

	g.Clear()
	g.SetTitle(title)
	if s.Empty() {
		msg := NoDataMsg
		if s.Loading {
			msg = LoadingMsg
		}
		cell := tview.NewTableCell(msg)
		cell.SetTextColor(tcell.ColorGray)
		cell.SetAlign(tview.AlignCenter)
		cell.SetSelectable(false)
		g.SetCell(0, 0, cell)
		g.mx.Lock()
		g.cards = g.cards[:0]
		g.mx.Unlock()
		return
	}

	cards := make([]cardPos, len(s.Rows))
	r := 0
	for band := 0; band*cols < len(s.Rows); band++ {
		var height int
		for c := 0; c < cols; c++ {
			i := band*cols + c
			if i >= len(s.Rows) {
				break
			}
			lines := g.cardLines(props, s, i)
			cards[i] = cardPos{row: r, col: c}
			for l, line := range lines {
				cell := tview.NewTableCell(line)
				cell.SetTextColor(props.color(s.Rows[i]))
				cell.SetBackgroundColor(tcell.ColorDefault)
				cell.SetExpansion(1)
				if l == 0 {
					cell.SetReference(s.Rows[i].Identity(props.IdentityField))
					cell.SetAttributes(tcell.AttrBold)
				} else {
					cell.SetSelectable(false)
				}
				g.SetCell(r+l, c, cell)
			}
			if len(lines) > height {
				height = len(lines)
			}
		}
		r += height + 1
	}

	g.mx.Lock()
	g.cards = cards
	g.mx.Unlock()
	g.moveTo(g.cursorIndex(), false)
}

func (g *InfiniteGrid) cardLines(props TableProps, s model.Snapshot, i int) []string {
	row := s.Rows[i]
	var lines []string
	if props.IsCustomRender() {
		lines = props.RenderItem(row, s.Window.Offset+i)
	} else {
		for _, c := range props.Columns.Visible(props.Wide) {
			lines = append(lines, fmt.Sprintf("%s: %s", columnTitle(c), c.Cell(row, s.Window.Offset+i)))
		}
	}
	if len(lines) == 0 {
		lines = []string{row.Identity(props.IdentityField)}
	}
	head := lines[0]
	if props.ShowCheckbox {
		head = checkbox(row, props.IdentityField, s.Selection) + " " + head
	}
	out := append([]string{head}, indent(lines[1:], "  ")...)
	if props.Collapse != nil && g.isExpanded(row.Identity(props.IdentityField)) {
		out = append(out, indent(props.Collapse(row), collapseIndent)...)
	}

	return out
}

func indent(ss []string, prefix string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, prefix+strings.TrimSpace(s))
	}
	return out
}

func (g *InfiniteGrid) isExpanded(id string) bool {
	g.mx.RLock()
	defer g.mx.RUnlock()

	_, ok := g.expanded[id]
	return ok
}

func (g *InfiniteGrid) cursorIndex() int {
	g.mx.RLock()
	defer g.mx.RUnlock()

	return g.cursor
}

// moveTo positions the cursor on a card. A user move onto the last loaded
// card loads more.
func (g *InfiniteGrid) moveTo(i int, user bool) {
	g.mx.Lock()
	if len(g.cards) == 0 {
		g.mx.Unlock()
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(g.cards) {
		i = len(g.cards) - 1
	}
	g.cursor = i
	pos := g.cards[i]
	last := i == len(g.cards)-1
	g.mx.Unlock()

	g.Select(pos.row, pos.col)
	if last && user {
		g.loadMore()
	}
}

// HasMore returns true if rows remain to be loaded.
func (g *InfiniteGrid) HasMore() bool {
	g.mx.RLock()
	defer g.mx.RUnlock()

	return len(g.snap.Rows) < g.snap.TotalCount
}

func (g *InfiniteGrid) loadMore() {
	g.mx.Lock()
	s := g.snap
	size := g.props.PageSize
	if size <= 0 {
		size = model1.DefaultPageSize
	}
	loaded := len(s.Rows)
	if s.Loading || loaded >= s.TotalCount || g.requested == loaded+size {
		g.mx.Unlock()
		return
	}
	g.requested = loaded + size
	w := model1.PageWindow{Offset: 0, First: loaded + size}
	g.mx.Unlock()

	if g.cb.OnPaginationChange != nil {
		g.cb.OnPaginationChange(w)
	}
}

// keyboard handles grid keyboard input.
func (g *InfiniteGrid) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	g.mx.RLock()
	cur, cols := g.cursor, g.cols
	g.mx.RUnlock()

	key := evt.Key()
	if key == tcell.KeyRune {
		switch evt.Rune() {
		case 'j':
			key = tcell.KeyDown
		case 'k':
			key = tcell.KeyUp
		case 'h':
			key = tcell.KeyLeft
		case 'l':
			key = tcell.KeyRight
		case 'g':
			key = tcell.KeyHome
		case 'G':
			key = tcell.KeyEnd
		}
	}

	switch key {
	case tcell.KeyDown:
		g.moveTo(cur+cols, true)
		return nil
	case tcell.KeyUp:
		g.moveTo(cur-cols, true)
		return nil
	case tcell.KeyLeft:
		g.moveTo(cur-1, true)
		return nil
	case tcell.KeyRight:
		g.moveTo(cur+1, true)
		return nil
	case tcell.KeyHome:
		g.moveTo(0, true)
		return nil
	case tcell.KeyEnd:
		g.moveTo(len(g.cards), true)
		return nil
	}

	evt, _ = g.actions.Handle(evt)

	return evt
}

func (g *InfiniteGrid) bindKeys() {
	g.actions.Bulk(KeyMap{
		tcell.KeyEnter: NewKeyAction("Open", g.clickCmd, true),
		tcell.KeyCtrlR: NewKeyAction("Refresh", g.refreshCmd, true),
		KeyM:           NewKeyAction("Load More", g.loadMoreCmd, true),
		KeyS:           NewKeyAction("Sort", g.sortCmd, true),
		KeyShiftS:      NewKeyAction("Reverse Sort", g.reverseSortCmd, false),
	})
	if g.props.ShowCheckbox {
		g.actions.Bulk(KeyMap{
			KeySpace:  NewKeyAction("Select", g.selectCmd, true),
			KeyA:      NewKeyAction("Select Loaded", g.selectAllCmd, true),
			KeyShiftA: NewKeyAction("Select All Pages", g.selectAllPagesCmd, false),
		})
	}
	if g.props.Collapse != nil {
		g.actions.Add(KeyO, NewKeyAction("Expand", g.collapseCmd, true))
	}
}

func (g *InfiniteGrid) clickCmd(evt *tcell.EventKey) *tcell.EventKey {
	row, idx, ok := g.Current()
	if !ok || g.cb.OnClickRow == nil {
		return evt
	}
	g.cb.OnClickRow(row, idx)

	return nil
}

func (g *InfiniteGrid) refreshCmd(*tcell.EventKey) *tcell.EventKey {
	if g.cb.OnRefresh != nil {
		g.cb.OnRefresh()
	}
	return nil
}

func (g *InfiniteGrid) loadMoreCmd(*tcell.EventKey) *tcell.EventKey {
	g.mx.Lock()
	g.requested = 0
	g.mx.Unlock()
	g.loadMore()
	return nil
}

func (g *InfiniteGrid) sortCmd(*tcell.EventKey) *tcell.EventKey {
	g.mx.RLock()
	props := g.props
	g.mx.RUnlock()

	c, ok := props.Columns.NextSortable(props.Sort.OrderBy)
	if ok && g.cb.OnSort != nil {
		g.cb.OnSort(model1.SortState{OrderBy: c.Key, Direction: model1.SortAsc})
	}
	return nil
}

func (g *InfiniteGrid) reverseSortCmd(*tcell.EventKey) *tcell.EventKey {
	g.mx.RLock()
	s := g.props.Sort
	g.mx.RUnlock()

	if s.OrderBy != "" && g.cb.OnSort != nil {
		g.cb.OnSort(s.Toggle(s.OrderBy))
	}
	return nil
}

func (g *InfiniteGrid) selectCmd(evt *tcell.EventKey) *tcell.EventKey {
	row, _, ok := g.Current()
	if !ok {
		return evt
	}
	if g.cb.OnSelectOne != nil && !row.Disabled() {
		g.cb.OnSelectOne(row.Identity(g.props.IdentityField))
	}
	return nil
}

func (g *InfiniteGrid) selectAllCmd(*tcell.EventKey) *tcell.EventKey {
	if g.cb.OnSelectAll != nil {
		g.cb.OnSelectAll()
	}
	return nil
}

func (g *InfiniteGrid) selectAllPagesCmd(*tcell.EventKey) *tcell.EventKey {
	if g.cb.OnSelectAllPages != nil {
		g.cb.OnSelectAllPages()
	}
	return nil
}

func (g *InfiniteGrid) collapseCmd(evt *tcell.EventKey) *tcell.EventKey {
	row, _, ok := g.Current()
	if !ok {
		return evt
	}
	id := row.Identity(g.props.IdentityField)

	g.mx.Lock()
	if _, ok := g.expanded[id]; ok {
		delete(g.expanded, id)
	} else {
		g.expanded[id] = struct{}{}
	}
	snap := g.snap
	g.mx.Unlock()

	g.Render(snap)

	return nil
}
