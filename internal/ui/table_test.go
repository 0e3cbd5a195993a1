package ui

import (
	"testing"

	"github.com/derailed/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/b3/b3t/internal/model"
	"github.com/b3/b3t/internal/model1"
)

func TestFixedTablePlaceholder(t *testing.T) {
	var rec callRecorder
	tv := NewFixedTable(testProps(), rec.callbacks())

	assert.Equal(t, LoadingMsg, TrimCell(tv.Table, 1, 0))

	tv.Render(model.Snapshot{Window: model1.NewPageWindow(2)})
	assert.Equal(t, NoDataMsg, TrimCell(tv.Table, 1, 0))
	assert.Equal(t, " <address>[0] ", tv.Title())
	_, _, ok := tv.Current()
	assert.False(t, ok)
}

func TestFixedTableRender(t *testing.T) {
	var rec callRecorder
	tv := NewFixedTable(testProps(), rec.callbacks())
	tv.Render(testSnapshot())

	assert.Equal(t, 3, tv.GetColumnCount())
	assert.Equal(t, CheckOn, TrimCell(tv.Table, 0, 0))
	assert.Equal(t, "ID", TrimCell(tv.Table, 0, 1))
	assert.Equal(t, "CITY", TrimCell(tv.Table, 0, 2))
	assert.Equal(t, CheckOn, TrimCell(tv.Table, 1, 0))
	assert.Equal(t, "Paris", TrimCell(tv.Table, 1, 2))
	assert.Equal(t, CheckDisabled, TrimCell(tv.Table, 2, 0))
	assert.Equal(t, " <address>[5] ", tv.Title())

	row, idx, ok := tv.Current()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "1", row.Identity("id"))
}

func TestFixedTableWide(t *testing.T) {
	props := testProps()
	props.Wide = true
	tv := NewFixedTable(props, TableCallbacks{})
	tv.Render(testSnapshot())

	assert.Equal(t, 4, tv.GetColumnCount())
	assert.Equal(t, "75001", TrimCell(tv.Table, 1, 3))
	assert.Equal(t, model1.NAValue, TrimCell(tv.Table, 2, 3))
}

func TestFixedTableCustomRender(t *testing.T) {
	props := testProps()
	props.RenderItem = func(r model1.Row, i int) []string {
		return []string{r.Field("city"), r.Field("id")}
	}
	tv := NewFixedTable(props, TableCallbacks{})
	tv.Render(testSnapshot())

	assert.Equal(t, 2, tv.GetColumnCount())
	assert.Equal(t, "Paris │ 1", TrimCell(tv.Table, 1, 1))
}

func TestFixedTableSortArrow(t *testing.T) {
	tv := NewFixedTable(testProps(), TableCallbacks{})
	tv.Render(testSnapshot())
	tv.SetSort(model1.SortState{OrderBy: "city", Direction: model1.SortDesc})

	assert.Equal(t, "CITY ▼", TrimCell(tv.Table, 0, 2))
	assert.Equal(t, "ID", TrimCell(tv.Table, 0, 1))
}

func TestFixedTableHeaderCheckbox(t *testing.T) {
	uu := map[string]struct {
		sel model1.SelectionState
		e   string
	}{
		"none": {
			e: CheckOff,
		},
		"all": {
			sel: model1.SelectionState{SelectedIDs: []string{"1", "3"}},
			e:   CheckOn,
		},
		"some": {
			sel: model1.SelectionState{SelectedIDs: []string{"3"}},
			e:   CheckPartial,
		},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			s := model.Snapshot{
				Rows:       model1.RowsOf(cityRecords(3)...),
				TotalCount: 3,
				Window:     model1.NewPageWindow(5),
				Selection:  u.sel,
			}
			s.Rows[1] = s.Rows[1].With(model1.DisabledField, true)
			tv := NewFixedTable(testProps(), TableCallbacks{})
			tv.Render(s)

			assert.Equal(t, u.e, TrimCell(tv.Table, 0, 0))
		})
	}
}

func TestFixedTableKeys(t *testing.T) {
	var rec callRecorder
	tv := NewFixedTable(testProps(), rec.callbacks())
	tv.Render(testSnapshot())

	tv.keyboard(runeKey('['))
	tv.keyboard(runeKey(']'))
	tv.keyboard(runeKey('+'))
	tv.keyboard(runeKey('-'))
	assert.Equal(t, []model1.PageWindow{{Offset: 2, First: 2}, {First: 5}}, rec.windows)

	tv.keyboard(runeKey(' '))
	assert.Equal(t, []string{"1"}, rec.selected)
	r, _ := tv.GetSelection()
	assert.Equal(t, 2, r)
	tv.keyboard(runeKey(' '))
	assert.Equal(t, []string{"1"}, rec.selected)

	tv.keyboard(runeKey('a'))
	tv.keyboard(runeKey('A'))
	assert.Equal(t, 1, rec.all)
	assert.Equal(t, 1, rec.allPages)

	tv.keyboard(runeKey('s'))
	assert.Equal(t, []model1.SortState{{OrderBy: "id", Direction: model1.SortAsc}}, rec.sorts)

	tv.keyboard(runeKey('g'))
	tv.keyboard(key(tcell.KeyEnter))
	assert.Equal(t, []int{0}, rec.clicked)

	tv.keyboard(key(tcell.KeyCtrlR))
	assert.Equal(t, 1, rec.refresh)
}

func TestFixedTableReverseSort(t *testing.T) {
	var rec callRecorder
	props := testProps()
	props.Sort = model1.SortState{OrderBy: "city", Direction: model1.SortAsc}
	tv := NewFixedTable(props, rec.callbacks())
	tv.Render(testSnapshot())

	tv.keyboard(runeKey('S'))
	tv.keyboard(runeKey('s'))

	assert.Equal(t, []model1.SortState{
		{OrderBy: "city", Direction: model1.SortDesc},
		{OrderBy: "id", Direction: model1.SortAsc},
	}, rec.sorts)
}

func TestFixedTableCollapse(t *testing.T) {
	props := testProps()
	props.Collapse = func(r model1.Row) []string {
		return []string{"line " + r.Field("id"), "more"}
	}
	tv := NewFixedTable(props, TableCallbacks{})
	tv.Render(testSnapshot())
	assert.Equal(t, 3, tv.GetRowCount())

	tv.keyboard(runeKey('o'))
	assert.True(t, tv.IsExpanded("1"))
	assert.Equal(t, 5, tv.GetRowCount())
	assert.Equal(t, "└ line 1", TrimCell(tv.Table, 2, 1))

	tv.Select(3, 0)
	_, idx, ok := tv.Current()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	tv.Select(1, 0)
	tv.keyboard(runeKey('o'))
	assert.False(t, tv.IsExpanded("1"))
	assert.Equal(t, 3, tv.GetRowCount())
}

func TestFixedTableKeepsCursor(t *testing.T) {
	tv := NewFixedTable(testProps(), TableCallbacks{})
	s := testSnapshot()
	tv.Render(s)
	tv.Select(2, 0)

	s.Rows = append(model1.RowsOf(model1.Record{"id": "9"}), s.Rows...)
	tv.Render(s)

	row, _, ok := tv.Current()
	assert.True(t, ok)
	assert.Equal(t, "2", row.Identity("id"))
}

func TestFixedTableHints(t *testing.T) {
	tv := NewFixedTable(testProps(), TableCallbacks{})

	var names []string
	for _, h := range tv.Hints() {
		if h.Visible {
			names = append(names, h.Mnemonic)
		}
	}
	assert.Contains(t, names, "space")
	assert.Contains(t, names, "]")
	assert.NotContains(t, names, "o")
}

func TestNextPageSize(t *testing.T) {
	uu := map[string]struct {
		cur, delta, e int
		ok            bool
	}{
		"up":        {cur: 5, delta: 1, e: 10, ok: true},
		"down":      {cur: 5, delta: -1, e: 2, ok: true},
		"top":       {cur: 10, delta: 1, e: 10},
		"bottom":    {cur: 2, delta: -1, e: 2},
		"between":   {cur: 7, delta: -1, e: 5, ok: true},
		"betweenUp": {cur: 7, delta: 1, e: 10, ok: true},
		"above":     {cur: 50, delta: -1, e: 10, ok: true},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			n, ok := nextPageSize([]int{2, 5, 10}, u.cur, u.delta)
			assert.Equal(t, u.ok, ok)
			assert.Equal(t, u.e, n)
		})
	}
}
