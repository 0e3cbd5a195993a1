package render

import (
	"strconv"
	"strings"

	"github.com/b3/b3t/internal/model1"
)

// Missing returns MissingValue if string is empty
func Missing(s string) string {
	if s == "" {
		return MissingValue
	}
	return s
}

// NA returns NAValue if string is empty
func NA(s string) string {
	if s == "" {
		return NAValue
	}
	return s
}

// BoolToYesNo converts a boolean field to Yes/No
func BoolToYesNo(s string) string {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return NAValue
	}
	if b {
		return "Yes"
	}
	return "No"
}

// Truncate truncates a string to max runes
func Truncate(s string, max int) string {
	rr := []rune(s)
	if len(rr) <= max {
		return s
	}
	if max <= 1 {
		return string(rr[:max])
	}
	return string(rr[:max-1]) + "…"
}

// JoinStrings joins strings with separator, skipping empty ones
func JoinStrings(sep string, ss ...string) string {
	var parts []string
	for _, s := range ss {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep)
}

// Money renders an amount field with the row currency.
func Money(field string) model1.RenderFunc {
	return func(r model1.Row, _ int) string {
		v, ok := r.Get(field)
		if !ok {
			return model1.NAValue
		}
		return model1.FormatMoney(v, r.Field("currency"))
	}
}

// YesNo renders a boolean field.
func YesNo(field string) model1.RenderFunc {
	return func(r model1.Row, _ int) string {
		return BoolToYesNo(r.Field(field))
	}
}
