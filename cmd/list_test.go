package main

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b3/b3t/internal/config"
	"github.com/b3/b3t/internal/dao"
	"github.com/b3/b3t/internal/model1"
)

func TestListResource(t *testing.T) {
	uu := map[string]struct {
		name     string
		opts     listOptions
		contains []string
		missing  []string
	}{
		"page": {
			name:     "addr",
			opts:     listOptions{window: model1.PageWindow{First: 3}},
			contains: []string{"COMPANY", "CITY", "1–3 of 42"},
			missing:  []string{"STREET"},
		},
		"wide": {
			name:     "address",
			opts:     listOptions{window: model1.PageWindow{First: 3}, wide: true},
			contains: []string{"STREET", "Market Street"},
		},
		"search": {
			name:     "addr",
			opts:     listOptions{window: model1.PageWindow{First: 10}, search: " Berlin "},
			contains: []string{"Berlin", "1–6 of 6"},
			missing:  []string{"Lyon"},
		},
		"sorted": {
			name:     "addr",
			opts:     listOptions{window: model1.PageWindow{First: 6}, orderBy: "city", desc: true},
			contains: []string{"Turin", "1–6 of 42"},
			missing:  []string{"Berlin"},
		},
		"offset": {
			name:     "sl",
			opts:     listOptions{window: model1.PageWindow{Offset: 15, First: 10}},
			contains: []string{"SKU-0116", "16–18 of 18"},
			missing:  []string{"SKU-0101"},
		},
		"cards": {
			name:     "addr",
			opts:     listOptions{window: model1.PageWindow{First: 2}, mobile: true},
			contains: []string{"Market Street", "1–2 of 42"},
			missing:  []string{"COMPANY"},
		},
	}

	f := dao.NewFactory(dao.SeedCatalog())
	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, listResource(context.Background(), &out, f, config.NewAliases(), u.name, u.opts))

			for _, s := range u.contains {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range u.missing {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}

func TestListResourceErrors(t *testing.T) {
	f, aliases := dao.NewFactory(dao.SeedCatalog()), config.NewAliases()
	ok := listOptions{window: model1.PageWindow{First: 10}}

	err := listResource(context.Background(), &bytes.Buffer{}, f, aliases, "bogus", ok)
	assert.ErrorContains(t, err, "unknown resource: bogus")

	err = listResource(context.Background(), &bytes.Buffer{}, f, aliases, "addr", listOptions{})
	assert.ErrorIs(t, err, model1.ErrInvalidWindow)
}

func TestPrintTableAbsoluteIndex(t *testing.T) {
	cols := model1.Columns{
		{Key: "pos", Title: "POS", Render: func(_ model1.Row, i int) string { return "#" + strconv.Itoa(i) }},
		{Key: "id", Title: "ID"},
	}
	rows := model1.RowsOf(model1.Record{"id": "a"}, model1.Record{"id": "b"})

	var out bytes.Buffer
	printTable(&out, cols, rows, 20)

	assert.Contains(t, out.String(), "#20")
	assert.Contains(t, out.String(), "#21")
	assert.NotContains(t, out.String(), "#0")
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	assert.Equal(t, "b3t version 0.1.0", strings.TrimSpace(out.String()))
}
