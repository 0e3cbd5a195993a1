package render

import (
	"github.com/derailed/tcell/v2"

	"github.com/b3/b3t/internal/model1"
)

// User renders storefront accounts
type User struct {
	Base
}

// Columns returns the user columns
func (*User) Columns() model1.Columns {
	return model1.Columns{
		{Key: "name", Title: "NAME", Attrs: model1.Attrs{Sortable: true}},
		{Key: "email", Title: "EMAIL", Attrs: model1.Attrs{Sortable: true}},
		{Key: "role", Title: "ROLE", Attrs: model1.Attrs{Sortable: true}},
		{Key: "active", Title: "ACTIVE", Render: YesNo("active")},
	}
}

// RenderItem renders a user card
func (u *User) RenderItem(row model1.Row, idx int) []string {
	return cardLines(u.Columns(), row, idx)
}

// ColorerFunc dims inactive accounts
func (*User) ColorerFunc() ColorerFunc {
	return func(r model1.Row) tcell.Color {
		if r.Field("active") == "false" {
			return DisabledColor
		}
		return DefaultColorer(r)
	}
}
