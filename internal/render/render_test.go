package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b3/b3t/internal/model1"
)

func TestFor(t *testing.T) {
	for _, res := range Resources() {
		r, err := For(res)
		require.NoError(t, err, res)
		assert.NotEmpty(t, r.Columns(), res)
	}

	_, err := For("storefront/bozo")
	assert.Error(t, err)
}

func TestShoppingListRender(t *testing.T) {
	row := model1.NewRow(model1.Record{
		"id":                 "1",
		"sku":                "SKU-1",
		"name":               "Drill",
		"qty":                2,
		"unitPrice":          "12.50",
		"total":              "25.00",
		"currency":           "EUR",
		model1.DisabledField: true,
	})
	r := &ShoppingList{}
	cc := r.Columns()

	idx, ok := cc.IndexOf("total", false)
	require.True(t, ok)
	assert.Equal(t, "EUR 25.00", cc[idx].Cell(row, 0))

	_, ok = cc.IndexOf("unitPrice", false)
	assert.False(t, ok)

	lines := r.RenderItem(row, 0)
	assert.Equal(t, []string{"SKU-1  Drill", "2 x EUR 12.50 = EUR 25.00", "out of stock"}, lines)
	assert.Equal(t, DisabledColor, r.ColorerFunc()(row))
	assert.Nil(t, r.Collapse(row))
}

func TestQuoteCollapse(t *testing.T) {
	row := model1.NewRow(model1.Record{
		"id":       "7",
		"status":   StateAccepted,
		"currency": "EUR",
		"lines": []any{
			map[string]any{"sku": "SKU-1", "name": "Hammer", "qty": 2, "price": "9.99"},
		},
	})
	r := &Quote{}

	assert.Equal(t, []string{"2 x SKU-1  Hammer @ EUR 9.99"}, r.Collapse(row))
	assert.Equal(t, HighlightColor, r.ColorerFunc()(row))
	assert.Nil(t, r.Collapse(model1.NewRow(model1.Record{"id": "8"})))
}

func TestUserRender(t *testing.T) {
	row := model1.NewRow(model1.Record{"id": "1", "name": "Ada L", "email": "a@b", "role": "admin", "active": false})
	r := &User{}

	lines := r.RenderItem(row, 0)
	assert.Equal(t, "NAME: Ada L", lines[0])
	assert.Equal(t, "ACTIVE: No", lines[3])
	assert.Equal(t, DisabledColor, r.ColorerFunc()(row))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "abc…", Truncate("abcdef", 4))
	assert.Equal(t, "ab", Truncate("ab", 4))
	assert.Equal(t, "a b", JoinStrings(" ", "a", "", "b"))
	assert.Equal(t, NAValue, NA(""))
	assert.Equal(t, MissingValue, Missing(""))
	assert.Equal(t, NAValue, BoolToYesNo("bozo"))
	assert.Equal(t, "Yes", BoolToYesNo("true"))
}
