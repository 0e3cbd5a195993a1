package render

import (
	"fmt"

	"github.com/derailed/tcell/v2"

	"github.com/b3/b3t/internal/model1"
)

// Quote renders quotes
type Quote struct {
	Base
}

// Columns returns the quote columns
func (*Quote) Columns() model1.Columns {
	return model1.Columns{
		{Key: "number", Title: "NUMBER", Attrs: model1.Attrs{Sortable: true}},
		{Key: "customer", Title: "CUSTOMER", Attrs: model1.Attrs{Sortable: true}},
		{Key: "status", Title: "STATUS", Attrs: model1.Attrs{Sortable: true}},
		{Key: "lineCount", Title: "LINES", Attrs: model1.Attrs{Capacity: true, Wide: true}},
		{Key: "total", Title: "TOTAL", Render: Money("total"), Attrs: model1.Attrs{Sortable: true, Capacity: true}},
		{Key: "created", Title: "CREATED", Attrs: model1.Attrs{Sortable: true}},
	}
}

// RenderItem renders a quote card
func (q *Quote) RenderItem(row model1.Row, idx int) []string {
	return []string{
		fmt.Sprintf("%s  %s", row.Field("number"), row.Field("status")),
		row.Field("customer"),
		fmt.Sprintf("%s  (%s lines)", Money("total")(row, idx), row.Field("lineCount")),
	}
}

// Collapse lists the quote lines
func (*Quote) Collapse(row model1.Row) []string {
	v, ok := row.Get("lines")
	if !ok {
		return nil
	}
	ll, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(ll))
	for _, l := range ll {
		rec := model1.Unwrap(l)
		out = append(out, fmt.Sprintf("%s x %s  %s @ %s",
			model1.Normalize(rec["qty"]),
			model1.Normalize(rec["sku"]),
			Truncate(model1.Normalize(rec["name"]), 24),
			model1.FormatMoney(rec["price"], row.Field("currency")),
		))
	}
	return out
}

// ColorerFunc colors quotes by status
func (*Quote) ColorerFunc() ColorerFunc {
	return func(r model1.Row) tcell.Color {
		switch r.Field("status") {
		case StateAccepted:
			return HighlightColor
		case StateSubmitted:
			return AddColor
		case StateDraft:
			return PendingColor
		case StateDeclined, StateExpired:
			return ErrColor
		default:
			return DefaultColorer(r)
		}
	}
}
