package view

import (
	"context"
	"testing"

	"github.com/derailed/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b3/b3t/internal/dao"
	"github.com/b3/b3t/internal/model1"
)

func newTestDescribe(t *testing.T, id string) (*App, *Describe) {
	t.Helper()

	app, _ := newTestApp(t)
	b := NewBrowser(app, &dao.QuoteRID)
	startBrowser(t, b)
	app.Content.Show(b)
	d := NewDescribe(app, &dao.QuoteRID, id, nil)
	require.NoError(t, app.Push(d))

	return app, d
}

func TestDescribeShowsRecord(t *testing.T) {
	_, d := newTestDescribe(t, "1")

	txt := d.GetText(true)
	assert.Contains(t, txt, "number: Q-02001")
	assert.Contains(t, txt, "status: submitted")
	assert.Equal(t, "storefront/quote:1", d.Name())
}

func TestDescribeFilter(t *testing.T) {
	_, d := newTestDescribe(t, "1")

	d.SetFilter("lines.#.sku")
	txt := d.GetText(true)
	assert.Contains(t, txt, "SKU-0102")
	assert.Contains(t, txt, "SKU-0103")
	assert.NotContains(t, txt, "Q-02001")

	d.SetFilter("nope")
	assert.Contains(t, d.GetText(true), "no match for nope")

	d.SetFilter("")
	assert.Contains(t, d.GetText(true), "Q-02001")
}

func TestDescribeJSON(t *testing.T) {
	_, d := newTestDescribe(t, "1")

	_, ok := d.actions.Handle(runeKey('J'))
	require.True(t, ok)
	assert.Contains(t, d.GetText(true), `"number": "Q-02001"`)

	d.actions.Handle(runeKey('y'))
	assert.Contains(t, d.GetText(true), "number: Q-02001")
}

func TestDescribeCachedRecord(t *testing.T) {
	app, _ := newTestApp(t)
	d := NewDescribe(app, &dao.QuoteRID, "999", model1.Record{"id": "999", "number": "Q-99999"})
	require.NoError(t, d.Init(context.Background()))
	d.Start()

	assert.Contains(t, d.GetText(true), "Q-99999")
	assert.Contains(t, app.Flash().GetText(true), "Showing cached 999")
}

func TestDescribeBack(t *testing.T) {
	app, d := newTestDescribe(t, "2")

	assert.Nil(t, d.keyboard(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)))
	assert.Equal(t, "storefront/quote", app.Content.Current())
}

func TestHighlightYAML(t *testing.T) {
	uu := map[string]struct {
		in, out string
	}{
		"scalar": {
			in:  "status: accepted\n",
			out: "[aqua::]status:[-::] [green::]accepted[-::]\n",
		},
		"list": {
			in:  "- sku: SKU-0102\n",
			out: "- [aqua::]sku:[-::] SKU-0102\n",
		},
		"nested": {
			in:  "lines:\n    - qty: 2\n",
			out: "[aqua::]lines:[-::]\n    - [aqua::]qty:[-::] [fuchsia::]2[-::]\n",
		},
		"plain": {
			in:  "- SKU-0103\n",
			out: "- SKU-0103\n",
		},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.out, highlightYAML(u.in))
		})
	}
}

func TestColorizeValue(t *testing.T) {
	uu := map[string]string{
		"true":     "[green::]true[-::]",
		"no":       "[red::]no[-::]",
		"null":     "[gray::]null[-::]",
		"declined": "[red::]declined[-::]",
		"expired":  "[red::]expired[-::]",
		"draft":    "[yellow::]draft[-::]",
		`"12.50"`:  `[fuchsia::]"12.50"[-::]`,
		"Drill":    "Drill",
		"Q-02001":  "Q-02001",
	}

	for in, out := range uu {
		assert.Equal(t, out, colorizeValue(in), in)
	}
}
