package ui

import (
	"fmt"

	"github.com/derailed/tcell/v2"

	"github.com/b3/b3t/internal/model"
	"github.com/b3/b3t/internal/model1"
)

type callRecorder struct {
	windows  []model1.PageWindow
	clicked  []int
	selected []string
	all      int
	allPages int
	sorts    []model1.SortState
	refresh  int
}

func (r *callRecorder) callbacks() TableCallbacks {
	return TableCallbacks{
		OnPaginationChange: func(w model1.PageWindow) { r.windows = append(r.windows, w) },
		OnClickRow:         func(_ model1.Row, i int) { r.clicked = append(r.clicked, i) },
		OnSelectOne:        func(id string) { r.selected = append(r.selected, id) },
		OnSelectAll:        func() { r.all++ },
		OnSelectAllPages:   func() { r.allPages++ },
		OnSort:             func(s model1.SortState) { r.sorts = append(r.sorts, s) },
		OnRefresh:          func() { r.refresh++ },
	}
}

func testProps() TableProps {
	return TableProps{
		Title: "address",
		Columns: model1.Columns{
			{Key: "id", Title: "ID", Attrs: model1.Attrs{Sortable: true}},
			{Key: "city", Title: "CITY", Attrs: model1.Attrs{Sortable: true}},
			{Key: "zip", Title: "ZIP", Attrs: model1.Attrs{Wide: true}},
		},
		IdentityField:      "id",
		PageSize:           2,
		RowsPerPageOptions: []int{2, 5, 10},
		ShowCheckbox:       true,
		ShowPagination:     true,
	}
}

func testSnapshot() model.Snapshot {
	return model.Snapshot{
		Rows: model1.RowsOf(
			model1.Record{"id": "1", "city": "Paris", "zip": "75001"},
			model1.Record{"id": "2", "city": "Oslo", model1.DisabledField: true},
		),
		TotalCount: 5,
		Window:     model1.PageWindow{First: 2},
		Selection:  model1.SelectionState{SelectedIDs: []string{"1"}},
	}
}

func cityRecords(n int) []model1.Record {
	rr := make([]model1.Record, 0, n)
	for i := 1; i <= n; i++ {
		rr = append(rr, model1.Record{"id": fmt.Sprintf("%d", i), "city": fmt.Sprintf("city-%02d", i)})
	}
	return rr
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}
