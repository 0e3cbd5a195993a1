package model1

import (
	"sort"
	"strings"

	"github.com/fvbommel/sortorder"
	"github.com/shopspring/decimal"
)

// Less returns true if v1 sorts before v2. Ties are broken on identities.
func Less(isNumber bool, id1, id2, v1, v2 string) bool {
	if v1 == v2 {
		return sortorder.NaturalLess(id1, id2)
	}
	if isNumber {
		return lessNumber(v1, v2)
	}
	return sortorder.NaturalLess(strings.ToLower(v1), strings.ToLower(v2))
}

func lessNumber(s1, s2 string) bool {
	d1, err1 := decimal.NewFromString(strings.ReplaceAll(s1, ",", ""))
	d2, err2 := decimal.NewFromString(strings.ReplaceAll(s2, ",", ""))
	if err1 != nil || err2 != nil {
		return sortorder.NaturalLess(s1, s2)
	}
	return d1.LessThan(d2)
}

// SortRows orders rows on a field in place.
func SortRows(rows Rows, field, idField string, dir SortDirection) {
	isNumber := true
	for _, r := range rows {
		if _, err := decimal.NewFromString(strings.ReplaceAll(r.Field(field), ",", "")); err != nil {
			isNumber = false
			break
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if dir == SortDesc {
			a, b = b, a
		}
		return Less(isNumber, a.Identity(idField), b.Identity(idField), a.Field(field), b.Field(field))
	})
}

// MatchRow returns true if any top level field contains the search text.
func MatchRow(r Row, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	for k := range r.record {
		if k == DisabledField {
			continue
		}
		if strings.Contains(strings.ToLower(r.Field(k)), search) {
			return true
		}
	}
	return false
}

// FormatMoney renders an amount with two decimals and a currency code.
func FormatMoney(v any, currency string) string {
	var d decimal.Decimal
	switch t := v.(type) {
	case decimal.Decimal:
		d = t
	case float64:
		d = decimal.NewFromFloat(t)
	case int:
		d = decimal.NewFromInt(int64(t))
	case string:
		var err error
		if d, err = decimal.NewFromString(t); err != nil {
			return NAValue
		}
	default:
		return NAValue
	}
	s := d.StringFixed(2)
	if currency == "" {
		return s
	}
	return currency + " " + s
}
