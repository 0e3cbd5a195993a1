package model1

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageWindowValidate(t *testing.T) {
	assert.NoError(t, PageWindow{First: 10}.Validate())
	assert.True(t, errors.Is(PageWindow{Offset: -1, First: 10}.Validate(), ErrInvalidWindow))
	assert.True(t, errors.Is(PageWindow{}.Validate(), ErrInvalidWindow))
}

func TestPageWindowNavigation(t *testing.T) {
	w := NewPageWindow(10)

	n, ok := w.Next(25)
	require.True(t, ok)
	assert.Equal(t, PageWindow{Offset: 10, First: 10}, n)
	assert.Equal(t, 1, n.Page())

	n, _ = n.Next(25)
	_, ok = n.Next(25)
	assert.False(t, ok)
	assert.Equal(t, 3, n.Pages(25))
	assert.Equal(t, "21–25 of 25", n.Range(25))

	p, ok := n.Prev()
	require.True(t, ok)
	assert.Equal(t, 10, p.Offset)

	_, ok = w.Prev()
	assert.False(t, ok)
}

func TestPageWindowWithFirst(t *testing.T) {
	w := PageWindow{Offset: 30, First: 10}.WithFirst(25)

	assert.Equal(t, PageWindow{Offset: 0, First: 25}, w)
	assert.Equal(t, 0, w.Offset%w.First)
	assert.Equal(t, DefaultPageSize, PageWindow{}.WithFirst(0).First)
}

func TestPageResultRows(t *testing.T) {
	res := PageResult{
		Edges: []any{
			map[string]any{"node": map[string]any{"id": "a"}},
			map[string]any{"id": "b"},
		},
		TotalCount: 2,
	}

	assert.Equal(t, []string{"a", "b"}, res.Rows().Identities(DefaultIdentityField))
}

func TestFilterSnapshotEqual(t *testing.T) {
	uu := map[string]struct {
		a, b FilterSnapshot
		e    bool
	}{
		"nil":        {e: true},
		"nilEmpty":   {a: FilterSnapshot{}, e: true},
		"same":       {a: FilterSnapshot{"search": "foo"}, b: FilterSnapshot{"search": "foo"}, e: true},
		"changed":    {a: FilterSnapshot{"search": "foo"}, b: FilterSnapshot{"search": "bar"}},
		"nestedSame": {a: FilterSnapshot{"f": map[string]any{"a": []int{1, 2}}}, b: FilterSnapshot{"f": map[string]any{"a": []int{1, 2}}}, e: true},
		"nestedDiff": {a: FilterSnapshot{"f": map[string]any{"a": []int{1, 2}}}, b: FilterSnapshot{"f": map[string]any{"a": []int{2, 1}}}},
		"added":      {a: FilterSnapshot{}, b: FilterSnapshot{"q": 1}},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, u.a.Equal(u.b))
		})
	}
}

func TestFilterSnapshotMerge(t *testing.T) {
	f := FilterSnapshot{"search": "foo"}
	params := f.Merge(PageWindow{Offset: 20, First: 10})

	assert.Equal(t, FilterSnapshot{"search": "foo", "first": 10, "offset": 20}, params)
	assert.Equal(t, PageWindow{Offset: 20, First: 10}, params.Window())
	assert.NotContains(t, f, ParamFirst)
}

func TestSortState(t *testing.T) {
	var s SortState

	s = s.Toggle("name")
	assert.Equal(t, SortState{OrderBy: "name", Direction: SortAsc}, s)
	assert.Equal(t, " ▲", s.Arrow("name"))
	assert.Empty(t, s.Arrow("city"))

	s = s.Toggle("name")
	assert.Equal(t, SortDesc, s.Direction)

	f := s.Apply(FilterSnapshot{"search": "x"})
	assert.Equal(t, "name", f.String(ParamOrderBy))
	assert.Equal(t, "desc", f.String(ParamSortDirection))

	f = SortState{}.Apply(f)
	assert.NotContains(t, f, ParamOrderBy)
}

func TestColumnsNextSortable(t *testing.T) {
	cc := Columns{
		{Key: "id"},
		{Key: "name", Attrs: Attrs{Sortable: true}},
		{Key: "city", Attrs: Attrs{Sortable: true, Wide: true}},
	}

	c, ok := cc.NextSortable("")
	assert.True(t, ok)
	assert.Equal(t, "name", c.Key)

	c, _ = cc.NextSortable("name")
	assert.Equal(t, "city", c.Key)

	c, _ = cc.NextSortable("city")
	assert.Equal(t, "name", c.Key)

	assert.Len(t, cc.Visible(false), 2)
	assert.Equal(t, []string{"id", "name", "city"}, cc.Titles())
}
