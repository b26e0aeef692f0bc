package partner

import (
	"fmt"
	"sort"
	"strings"
)

// SortKey selects the numeric column the table is ordered by.
type SortKey string

const (
	SortNone      SortKey = ""
	SortMiles     SortKey = "miles"
	SortCashValue SortKey = "cash-value"
)

// Direction is the sort direction.
type Direction string

const (
	Descending Direction = "desc"
	Ascending  Direction = "asc"
)

// ParseSortKey parses a sort key. The empty string keeps dataset order.
func ParseSortKey(value string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return SortNone, nil
	case "miles":
		return SortMiles, nil
	case "cash-value", "cashvalue", "cash":
		return SortCashValue, nil
	}
	return SortNone, fmt.Errorf("unknown sort key %q", value)
}

// ParseDirection parses a sort direction, defaulting to descending.
func ParseDirection(value string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "desc", "descending":
		return Descending, nil
	case "asc", "ascending":
		return Ascending, nil
	}
	return Descending, fmt.Errorf("unknown sort direction %q", value)
}

// Query describes one projection of the partner table.
type Query struct {
	Category  CategoryFilter
	SortBy    SortKey
	Direction Direction
}

// Row is one computed line of the comparison table.
type Row struct {
	Partner   Partner `json:"partner"`
	Ratio     string  `json:"ratio"`
	Miles     float64 `json:"miles"`
	CashValue float64 `json:"cashValue"`
	Badge     *Badge  `json:"badge,omitempty"`
	// AboveGift is set when converting beats cashing out as gift cards.
	AboveGift bool `json:"aboveGift"`
}

// Rows filters the partners, computes each conversion for the balance and
// orders the result. Sorting is stable, so rows with equal values keep their
// dataset order, and without a sort key the dataset order is returned as is.
func Rows(partners []Partner, balance float64, q Query) []Row {
	gift := GiftCardValue(balance)

	rows := make([]Row, 0, len(partners))
	for _, p := range partners {
		if !q.Category.Matches(p) {
			continue
		}
		miles := MilesFromBalance(balance, p.Ratio)
		cash := CashValue(miles, p.Valuation)
		row := Row{
			Partner:   p,
			Ratio:     FormatRatio(p.Ratio),
			Miles:     miles,
			CashValue: cash,
			AboveGift: cash > gift,
		}
		if b, ok := BadgeFor(p.ID); ok {
			row.Badge = &b
		}
		rows = append(rows, row)
	}

	if q.SortBy == SortNone {
		return rows
	}

	value := func(r Row) float64 {
		if q.SortBy == SortMiles {
			return r.Miles
		}
		return r.CashValue
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if q.Direction == Ascending {
			return value(rows[i]) < value(rows[j])
		}
		return value(rows[i]) > value(rows[j])
	})
	return rows
}
