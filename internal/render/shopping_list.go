package render

import (
	"fmt"

	"github.com/b3/b3t/internal/model1"
)

// ShoppingList renders shopping list lines
type ShoppingList struct {
	Base
}

// Columns returns the shopping list columns
func (*ShoppingList) Columns() model1.Columns {
	return model1.Columns{
		{Key: "sku", Title: "SKU", Attrs: model1.Attrs{Sortable: true}},
		{Key: "name", Title: "PRODUCT", Attrs: model1.Attrs{Sortable: true}},
		{Key: "qty", Title: "QTY", Attrs: model1.Attrs{Sortable: true, Capacity: true}},
		{Key: "unitPrice", Title: "UNIT PRICE", Render: Money("unitPrice"), Attrs: model1.Attrs{Sortable: true, Capacity: true, Wide: true}},
		{Key: "total", Title: "TOTAL", Render: Money("total"), Attrs: model1.Attrs{Sortable: true, Capacity: true}},
		{Key: "inStock", Title: "STOCK", Render: stock},
	}
}

func stock(r model1.Row, _ int) string {
	if r.Disabled() {
		return "out of stock"
	}
	return "in stock"
}

// RenderItem renders a shopping list card
func (s *ShoppingList) RenderItem(row model1.Row, idx int) []string {
	return []string{
		fmt.Sprintf("%s  %s", row.Field("sku"), row.Field("name")),
		fmt.Sprintf("%s x %s = %s", row.Field("qty"), Money("unitPrice")(row, idx), Money("total")(row, idx)),
		stock(row, idx),
	}
}
