package model1

import "errors"

const (
	// DefaultIdentityField is the row property used for selection membership.
	DefaultIdentityField = "id"

	// DisabledField flags rows whose checkbox cannot be toggled.
	DisabledField = "disableCurrentCheckbox"

	// NodeField is the envelope key some collaborators wrap records in.
	NodeField = "node"

	// DefaultPageSize is the page size used when none is configured.
	DefaultPageSize = 10

	// NAValue renders a missing cell.
	NAValue = "-"
)

// ErrInvalidWindow is returned for a window with a negative offset or a non-positive size.
var ErrInvalidWindow = errors.New("invalid page window")

// Record represents an application record, always unwrapped.
type Record map[string]any

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// DecoratorFunc decorates a cell value.
type DecoratorFunc func(string) string

// SortDirection represents a column ordering.
type SortDirection string

const (
	// SortAsc orders ascending.
	SortAsc SortDirection = "asc"
	// SortDesc orders descending.
	SortDesc SortDirection = "desc"
)
