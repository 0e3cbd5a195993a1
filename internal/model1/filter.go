package model1

import (
	"reflect"

	"github.com/wI2L/jsondiff"
)

const (
	// ParamFirst is the page size fetch parameter.
	ParamFirst = "first"
	// ParamOffset is the offset fetch parameter.
	ParamOffset = "offset"
	// ParamSearch is the free text search parameter.
	ParamSearch = "search"
	// ParamOrderBy is the sort column parameter.
	ParamOrderBy = "orderBy"
	// ParamSortDirection is the sort direction parameter.
	ParamSortDirection = "sortDirection"
)

// FilterSnapshot is the caller supplied search parameters. The core only
// compares snapshots and passes them through.
type FilterSnapshot map[string]any

// Clone returns a shallow copy of the snapshot.
func (f FilterSnapshot) Clone() FilterSnapshot {
	out := make(FilterSnapshot, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// With returns a copy with the key set.
func (f FilterSnapshot) With(k string, v any) FilterSnapshot {
	out := f.Clone()
	out[k] = v
	return out
}

// String returns a text parameter.
func (f FilterSnapshot) String(k string) string {
	v, ok := f[k]
	if !ok {
		return ""
	}
	return Normalize(v)
}

// Merge returns the fetch params: the snapshot plus the window.
func (f FilterSnapshot) Merge(w PageWindow) FilterSnapshot {
	out := f.Clone()
	out[ParamFirst] = w.First
	out[ParamOffset] = w.Offset
	return out
}

// Window extracts a page window from fetch params.
func (f FilterSnapshot) Window() PageWindow {
	w := PageWindow{First: DefaultPageSize}
	if v, ok := asInt(f[ParamFirst]); ok {
		w.First = v
	}
	if v, ok := asInt(f[ParamOffset]); ok {
		w.Offset = v
	}
	return w
}

// Diff returns the JSON patch turning f into o.
func (f FilterSnapshot) Diff(o FilterSnapshot) (jsondiff.Patch, error) {
	return jsondiff.Compare(f.orEmpty(), o.orEmpty())
}

// Equal deep compares two snapshots.
func (f FilterSnapshot) Equal(o FilterSnapshot) bool {
	patch, err := f.Diff(o)
	if err != nil {
		return reflect.DeepEqual(f.orEmpty(), o.orEmpty())
	}
	return len(patch) == 0
}

func (f FilterSnapshot) orEmpty() FilterSnapshot {
	if f == nil {
		return FilterSnapshot{}
	}
	return f
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	default:
		return 0, false
	}
}
