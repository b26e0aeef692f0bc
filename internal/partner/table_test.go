package partner

import (
	"math"
	"testing"
)

func rowIDs(rows []Row) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.Partner.ID
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRowsCategoryFilter(t *testing.T) {
	tests := []struct {
		name     string
		filter   CategoryFilter
		expected int
	}{
		{"All partners", FilterAll, 21},
		{"Flights only", FilterFlights, 16},
		{"Hotels only", FilterHotels, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Rows(All(), 1100000, Query{Category: tt.filter})
			if len(rows) != tt.expected {
				t.Errorf("Rows() returned %d rows, expected %d", len(rows), tt.expected)
			}
			for _, r := range rows {
				if !tt.filter.Matches(r.Partner) {
					t.Errorf("Rows() returned %s which does not match filter %s", r.Partner.ID, tt.filter)
				}
			}
		})
	}
}

func TestRowsHotelsScenario(t *testing.T) {
	tests := []struct {
		name     string
		query    Query
		expected []string
	}{
		{
			name:     "Dataset order without sort",
			query:    Query{Category: FilterHotels},
			expected: []string{"hilton", "marriott", "ihg", "all", "wyndham"},
		},
		{
			name:     "Cash value descending",
			query:    Query{Category: FilterHotels, SortBy: SortCashValue, Direction: Descending},
			expected: []string{"hilton", "marriott", "ihg", "all", "wyndham"},
		},
		{
			name:     "Cash value ascending",
			query:    Query{Category: FilterHotels, SortBy: SortCashValue, Direction: Ascending},
			expected: []string{"wyndham", "all", "ihg", "marriott", "hilton"},
		},
		{
			// Marriott and IHG tie on miles and keep dataset order both ways.
			name:     "Miles descending is stable",
			query:    Query{Category: FilterHotels, SortBy: SortMiles, Direction: Descending},
			expected: []string{"hilton", "marriott", "ihg", "wyndham", "all"},
		},
		{
			name:     "Miles ascending is stable",
			query:    Query{Category: FilterHotels, SortBy: SortMiles, Direction: Ascending},
			expected: []string{"all", "wyndham", "marriott", "ihg", "hilton"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rowIDs(Rows(All(), 1100000, tt.query))
			if !equalIDs(got, tt.expected) {
				t.Errorf("Rows() order = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRowsFlightsByCashValue(t *testing.T) {
	rows := Rows(All(), 1100000, Query{Category: FilterFlights, SortBy: SortCashValue, Direction: Descending})
	got := rowIDs(rows)[:4]
	expected := []string{"finnair", "cathay", "flyingblue", "jal"}
	if !equalIDs(got, expected) {
		t.Errorf("top flights = %v, expected %v", got, expected)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].CashValue > rows[i-1].CashValue {
			t.Errorf("row %d (%s) is worth more than row %d (%s)", i, rows[i].Partner.ID, i-1, rows[i-1].Partner.ID)
		}
	}
}

func TestRowsComputedValues(t *testing.T) {
	rows := Rows(All(), 1100000, Query{Category: FilterAll})
	byID := make(map[string]Row, len(rows))
	for _, r := range rows {
		byID[r.Partner.ID] = r
	}

	korean := byID["koreanair"]
	if math.Abs(korean.Miles-733333.3333) > 0.001 {
		t.Errorf("koreanair miles = %v, expected 733333.33", korean.Miles)
	}
	if math.Abs(korean.CashValue-13200000) > 0.01 {
		t.Errorf("koreanair cash value = %v, expected ~13200000", korean.CashValue)
	}
	if korean.Ratio != "1.5:1" {
		t.Errorf("koreanair ratio = %q, expected 1.5:1", korean.Ratio)
	}
	if korean.Badge == nil || korean.Badge.Kind != BadgeVersatile {
		t.Errorf("koreanair badge = %+v, expected versatile", korean.Badge)
	}

	cathay := byID["cathay"]
	if cathay.Miles != 1100000 {
		t.Errorf("cathay miles = %v, expected 1100000", cathay.Miles)
	}
	if cathay.Badge == nil || cathay.Badge.Label != "Best" {
		t.Errorf("cathay badge = %+v, expected Best", cathay.Badge)
	}

	if byID["airasia"].Badge != nil {
		t.Errorf("airasia should not carry a badge")
	}
	if !byID["all"].AboveGift {
		t.Errorf("all (7,857,143원) should beat the 7,700,000원 gift baseline")
	}
	if byID["wyndham"].AboveGift {
		t.Errorf("wyndham (5,280,000원) should not beat the gift baseline")
	}
	if byID["hilton"].Ratio != "1:2" {
		t.Errorf("hilton ratio = %q, expected 1:2", byID["hilton"].Ratio)
	}
}

func TestRowsZeroBalance(t *testing.T) {
	for _, r := range Rows(All(), 0, Query{SortBy: SortMiles}) {
		if r.Miles != 0 || r.CashValue != 0 || r.AboveGift {
			t.Errorf("%s: expected zero row for zero balance, got %+v", r.Partner.ID, r)
		}
	}
}

func TestParseQueryEnums(t *testing.T) {
	if f, err := ParseCategory("호텔"); err != nil || f != FilterHotels {
		t.Errorf("ParseCategory(호텔) = %v, %v", f, err)
	}
	if f, err := ParseCategory(""); err != nil || f != FilterAll {
		t.Errorf("ParseCategory(\"\") = %v, %v", f, err)
	}
	if _, err := ParseCategory("trains"); err == nil {
		t.Errorf("ParseCategory(trains) expected error")
	}
	if k, err := ParseSortKey("cashValue"); err != nil || k != SortCashValue {
		t.Errorf("ParseSortKey(cashValue) = %v, %v", k, err)
	}
	if _, err := ParseSortKey("name"); err == nil {
		t.Errorf("ParseSortKey(name) expected error")
	}
	if d, err := ParseDirection("ASC"); err != nil || d != Ascending {
		t.Errorf("ParseDirection(ASC) = %v, %v", d, err)
	}
	if d, err := ParseDirection(""); err != nil || d != Descending {
		t.Errorf("ParseDirection(\"\") = %v, %v", d, err)
	}
}
