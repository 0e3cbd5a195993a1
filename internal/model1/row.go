package model1

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Row represents a single record of a RowSet.
type Row struct {
	record Record
	raw    []byte
}

// NewRow returns a row for an already unwrapped record.
func NewRow(rec Record) Row {
	if rec == nil {
		rec = Record{}
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		raw = nil
	}
	return Row{record: rec, raw: raw}
}

// Unwrap strips the optional {node: T} envelope from a collaborator value.
// Edge siblings such as cursor are dropped. Anything that is not a record
// comes back as an empty record.
func Unwrap(v any) Record {
	rec := asRecord(v)
	if rec == nil {
		return Record{}
	}
	if inner := asRecord(rec[NodeField]); inner != nil {
		return inner
	}
	return rec
}

func asRecord(v any) Record {
	switch t := v.(type) {
	case Record:
		return t
	case map[string]any:
		return Record(t)
	case Row:
		return t.record
	default:
		return nil
	}
}

// Record returns the row record.
func (r Row) Record() Record {
	return r.record
}

// Get returns the raw value of a top level field.
func (r Row) Get(field string) (any, bool) {
	v, ok := r.record[field]
	return v, ok
}

// Field returns a field value as text. Dotted paths reach into nested records.
func (r Row) Field(path string) string {
	if v, ok := r.record[path]; ok {
		return Normalize(v)
	}
	if len(r.raw) == 0 {
		return ""
	}
	res := gjson.GetBytes(r.raw, path)
	if !res.Exists() {
		return ""
	}
	return res.String()
}

// Identity returns the row identity for the given field.
func (r Row) Identity(field string) string {
	if field == "" {
		field = DefaultIdentityField
	}
	return r.Field(field)
}

// Disabled returns true if the row checkbox is disabled.
func (r Row) Disabled() bool {
	v, ok := r.record[DisabledField]
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(t)
		return b
	default:
		return false
	}
}

// With returns a copy of the row with the field set.
func (r Row) With(field string, v any) Row {
	rec := r.record.Clone()
	rec[field] = v
	return NewRow(rec)
}

// Clone returns a copy of the row.
func (r Row) Clone() Row {
	return NewRow(r.record.Clone())
}

// Normalize renders a field value the way identities are compared.
func Normalize(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case fmt.Stringer:
		return t.String()
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// Rows represents an ordered RowSet.
type Rows []Row

// NewRows unwraps collaborator values into rows.
func NewRows(vv []any) Rows {
	rows := make(Rows, 0, len(vv))
	for _, v := range vv {
		rows = append(rows, NewRow(Unwrap(v)))
	}
	return rows
}

// RowsOf builds rows from records.
func RowsOf(rr ...Record) Rows {
	rows := make(Rows, 0, len(rr))
	for _, r := range rr {
		rows = append(rows, NewRow(Unwrap(r)))
	}
	return rows
}

// Clone returns a copy of the rows.
func (r Rows) Clone() Rows {
	out := make(Rows, len(r))
	for i, row := range r {
		out[i] = row.Clone()
	}
	return out
}

// Identities returns the identities of all rows.
func (r Rows) Identities(field string) []string {
	ids := make([]string, 0, len(r))
	for _, row := range r {
		ids = append(ids, row.Identity(field))
	}
	return ids
}

// Selectable returns the identities of rows whose checkbox is enabled.
func (r Rows) Selectable(field string) []string {
	ids := make([]string, 0, len(r))
	for _, row := range r {
		if row.Disabled() {
			continue
		}
		if id := row.Identity(field); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Find returns the row with the given identity.
func (r Rows) Find(field, id string) (Row, int, bool) {
	for i, row := range r {
		if row.Identity(field) == id {
			return row, i, true
		}
	}
	return Row{}, -1, false
}
