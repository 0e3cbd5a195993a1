package model1

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUnwrap(t *testing.T) {
	uu := map[string]struct {
		in any
		e  Record
	}{
		"plain":     {in: map[string]any{"id": 1}, e: Record{"id": 1}},
		"node":      {in: map[string]any{"node": map[string]any{"id": 2}}, e: Record{"id": 2}},
		"nodeRec":   {in: Record{"node": Record{"id": 3}}, e: Record{"id": 3}},
		"edge":      {in: map[string]any{"node": map[string]any{"id": 7}, "cursor": "YXJyYXk6MA=="}, e: Record{"id": 7}},
		"nodeValue": {in: Record{"node": "n-1", "id": 4}, e: Record{"node": "n-1", "id": 4}},
		"scalar":    {in: 42, e: Record{}},
		"nil":       {in: nil, e: Record{}},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, Unwrap(u.in))
		})
	}
}

func TestRowIdentity(t *testing.T) {
	uu := map[string]struct {
		rec   Record
		field string
		e     string
	}{
		"int":      {rec: Record{"id": 1}, e: "1"},
		"float":    {rec: Record{"id": 1.0}, e: "1"},
		"string":   {rec: Record{"id": "1"}, e: "1"},
		"custom":   {rec: Record{"sku": "ABC-1"}, field: "sku", e: "ABC-1"},
		"nested":   {rec: Record{"customer": Record{"id": 7}}, field: "customer.id", e: "7"},
		"missing":  {rec: Record{"name": "x"}, e: ""},
		"stringer": {rec: Record{"id": decimal.NewFromInt(5)}, e: "5"},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, NewRow(u.rec).Identity(u.field))
		})
	}
}

func TestRowDisabled(t *testing.T) {
	assert.True(t, NewRow(Record{DisabledField: true}).Disabled())
	assert.True(t, NewRow(Record{DisabledField: "true"}).Disabled())
	assert.False(t, NewRow(Record{DisabledField: false}).Disabled())
	assert.False(t, NewRow(Record{"id": 1}).Disabled())
}

func TestRowWith(t *testing.T) {
	r := NewRow(Record{"id": 1, "qty": 2})
	r2 := r.With("qty", 5)

	assert.Equal(t, "2", r.Field("qty"))
	assert.Equal(t, "5", r2.Field("qty"))
	assert.Equal(t, "1", r2.Identity(""))
}

func TestRowsSelectable(t *testing.T) {
	rows := RowsOf(
		Record{"id": 1, DisabledField: false},
		Record{"id": 2, DisabledField: true},
		Record{"node": Record{"id": 3}},
	)

	assert.Equal(t, []string{"1", "2", "3"}, rows.Identities("id"))
	assert.Equal(t, []string{"1", "3"}, rows.Selectable("id"))

	_, idx, ok := rows.Find("id", "3")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestSortRows(t *testing.T) {
	rows := RowsOf(
		Record{"id": 1, "name": "item10", "price": "1,200"},
		Record{"id": 2, "name": "item2", "price": "10"},
		Record{"id": 3, "name": "Item1", "price": "9.5"},
	)

	SortRows(rows, "name", "id", SortAsc)
	assert.Equal(t, []string{"3", "2", "1"}, rows.Identities("id"))

	SortRows(rows, "price", "id", SortDesc)
	assert.Equal(t, []string{"1", "2", "3"}, rows.Identities("id"))
}

func TestMatchRow(t *testing.T) {
	r := NewRow(Record{"id": 1, "city": "Austin"})

	assert.True(t, MatchRow(r, ""))
	assert.True(t, MatchRow(r, "aus"))
	assert.False(t, MatchRow(r, "boston"))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "USD 12.50", FormatMoney("12.5", "USD"))
	assert.Equal(t, "3.00", FormatMoney(3, ""))
	assert.Equal(t, NAValue, FormatMoney("abc", "USD"))
}
