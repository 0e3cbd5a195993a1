package render

import (
	"github.com/b3/b3t/internal/model1"
)

// Address renders customer addresses
type Address struct {
	Base
}

// Columns returns the address columns
func (*Address) Columns() model1.Columns {
	return model1.Columns{
		{Key: "company", Title: "COMPANY", Attrs: model1.Attrs{Sortable: true}},
		{Key: "street", Title: "STREET", Attrs: model1.Attrs{Wide: true}},
		{Key: "postcode", Title: "POSTCODE", Attrs: model1.Attrs{Sortable: true}},
		{Key: "city", Title: "CITY", Attrs: model1.Attrs{Sortable: true}},
		{Key: "country", Title: "COUNTRY", Attrs: model1.Attrs{Sortable: true}},
		{Key: "default", Title: "DEFAULT", Render: YesNo("default")},
	}
}

// RenderItem renders an address card
func (a *Address) RenderItem(row model1.Row, _ int) []string {
	return []string{
		row.Field("company"),
		row.Field("street"),
		JoinStrings(" ", row.Field("postcode"), row.Field("city")),
		row.Field("country"),
	}
}
