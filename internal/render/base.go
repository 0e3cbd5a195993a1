package render

import (
	"fmt"
	"sort"

	"github.com/derailed/tcell/v2"

	"github.com/b3/b3t/internal/model1"
)

// ColorerFunc picks a row foreground color.
type ColorerFunc func(model1.Row) tcell.Color

// Standard row colors.
var (
	StdColor       = tcell.ColorWhite
	DisabledColor  = tcell.ColorGray
	AddColor       = tcell.ColorDodgerBlue
	PendingColor   = tcell.ColorOrange
	ErrColor       = tcell.ColorOrangeRed
	HighlightColor = tcell.ColorLightGreen
)

// DefaultColorer dims rows whose checkbox is disabled.
func DefaultColorer(r model1.Row) tcell.Color {
	if r.Disabled() {
		return DisabledColor
	}
	return StdColor
}

// Renderer describes how a resource is displayed.
type Renderer interface {
	// Columns returns the table columns.
	Columns() model1.Columns

	// RenderItem returns the card lines of a row for the grid layout.
	RenderItem(row model1.Row, index int) []string

	// Collapse returns the nested lines shown under an expanded row.
	Collapse(row model1.Row) []string

	// ColorerFunc returns the row colorer.
	ColorerFunc() ColorerFunc
}

// Base provides a base renderer implementation
type Base struct{}

// Collapse has no nested content by default.
func (*Base) Collapse(model1.Row) []string {
	return nil
}

// ColorerFunc returns the default colorer
func (*Base) ColorerFunc() ColorerFunc {
	return DefaultColorer
}

// cardLines renders "TITLE: value" lines for the given columns.
func cardLines(cc model1.Columns, row model1.Row, index int) []string {
	out := make([]string, 0, len(cc))
	for _, c := range cc {
		title := c.Title
		if title == "" {
			title = c.Key
		}
		out = append(out, fmt.Sprintf("%s: %s", title, c.Cell(row, index)))
	}
	return out
}

var renderers = map[string]Renderer{
	"storefront/address":      &Address{},
	"storefront/user":         &User{},
	"storefront/shoppinglist": &ShoppingList{},
	"storefront/quote":        &Quote{},
}

// For returns the renderer of a resource.
func For(resource string) (Renderer, error) {
	r, ok := renderers[resource]
	if !ok {
		return nil, fmt.Errorf("no renderer for %q", resource)
	}
	return r, nil
}

// Resources lists the resources with a renderer.
func Resources() []string {
	out := make([]string, 0, len(renderers))
	for k := range renderers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
