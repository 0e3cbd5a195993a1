package model1

import "fmt"

// RenderFunc renders a cell for a row at a page index.
type RenderFunc func(row Row, index int) string

// Attrs represents column attributes.
type Attrs struct {
	Align     int  // tview alignment
	Wide      bool // Hidden in narrow view
	Sortable  bool
	Capacity  bool // Numeric (right-align)
	Decorator DecoratorFunc
}

// Merge fills unset attributes from b.
func (a Attrs) Merge(b Attrs) Attrs {
	if a.Align == 0 {
		a.Align = b.Align
	}
	if !a.Wide {
		a.Wide = b.Wide
	}
	if !a.Sortable {
		a.Sortable = b.Sortable
	}
	if !a.Capacity {
		a.Capacity = b.Capacity
	}
	if a.Decorator == nil {
		a.Decorator = b.Decorator
	}
	return a
}

// Column describes a table column.
type Column struct {
	Key    string
	Title  string
	Render RenderFunc
	Attrs
}

func (c Column) String() string {
	return fmt.Sprintf("%s [%d::%t::%t]", c.Key, c.Align, c.Wide, c.Sortable)
}

// Cell renders the column value for a row.
func (c Column) Cell(row Row, index int) string {
	var s string
	if c.Render != nil {
		s = c.Render(row, index)
	} else {
		s = row.Field(c.Key)
	}
	if c.Decorator != nil {
		s = c.Decorator(s)
	}
	if s == "" {
		return NAValue
	}
	return s
}

// Columns represents a table header.
type Columns []Column

// IndexOf returns the index of the column with the given key.
func (cc Columns) IndexOf(key string, includeWide bool) (int, bool) {
	for i, c := range cc {
		if c.Wide && !includeWide {
			continue
		}
		if c.Key == key {
			return i, true
		}
	}
	return -1, false
}

// Visible returns the columns shown in narrow or wide mode.
func (cc Columns) Visible(wide bool) Columns {
	out := make(Columns, 0, len(cc))
	for _, c := range cc {
		if !wide && c.Wide {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Titles returns column titles.
func (cc Columns) Titles() []string {
	tt := make([]string, 0, len(cc))
	for _, c := range cc {
		t := c.Title
		if t == "" {
			t = c.Key
		}
		tt = append(tt, t)
	}
	return tt
}

// NextSortable returns the sortable column after key, wrapping around.
func (cc Columns) NextSortable(key string) (Column, bool) {
	start := -1
	for i, c := range cc {
		if c.Key == key {
			start = i
			break
		}
	}
	for n := 1; n <= len(cc); n++ {
		c := cc[(start+n+len(cc))%len(cc)]
		if c.Sortable {
			return c, true
		}
	}
	return Column{}, false
}

// SortState is the display state of a sortable table. Ordering itself is
// done by the fetch collaborator.
type SortState struct {
	OrderBy   string
	Direction SortDirection
}

// Toggle returns the state after activating the column key: a new column
// sorts ascending, the active one flips direction.
func (s SortState) Toggle(key string) SortState {
	if s.OrderBy != key {
		return SortState{OrderBy: key, Direction: SortAsc}
	}
	if s.Direction == SortAsc {
		return SortState{OrderBy: key, Direction: SortDesc}
	}
	return SortState{OrderBy: key, Direction: SortAsc}
}

// Arrow returns the header marker for the column key.
func (s SortState) Arrow(key string) string {
	if s.OrderBy == "" || s.OrderBy != key {
		return ""
	}
	if s.Direction == SortDesc {
		return " ▼"
	}
	return " ▲"
}

// Apply writes the sort state into a snapshot.
func (s SortState) Apply(f FilterSnapshot) FilterSnapshot {
	out := f.Clone()
	if s.OrderBy == "" {
		delete(out, ParamOrderBy)
		delete(out, ParamSortDirection)
		return out
	}
	out[ParamOrderBy] = s.OrderBy
	out[ParamSortDirection] = string(s.Direction)
	return out
}
