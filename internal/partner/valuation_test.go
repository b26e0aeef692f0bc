package partner

import (
	"math"
	"testing"
)

func TestMilesFromBalance(t *testing.T) {
	tests := []struct {
		name     string
		balance  float64
		ratio    float64
		expected float64
	}{
		{"One to one", 1100000, 1.0 / 1, 1100000},
		{"Korean Air 1.5", 1100000, 1500.0 / 1000, 733333.3333333334},
		{"Two to one", 1100000, 1000.0 / 500, 550000},
		{"Hotel one to two", 1100000, 1000.0 / 2000, 2200000},
		{"Zero balance", 0, 1.3, 0},
		{"Negative balance passes through", -1000, 2, -500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MilesFromBalance(tt.balance, tt.ratio)
			if math.Abs(result-tt.expected) > 1e-6 {
				t.Errorf("MilesFromBalance(%v, %v) = %v, expected %v", tt.balance, tt.ratio, result, tt.expected)
			}
		})
	}
}

func TestMilesFromBalanceInvalidRatio(t *testing.T) {
	if got := MilesFromBalance(1000, 0); !math.IsInf(got, 1) {
		t.Errorf("MilesFromBalance(1000, 0) = %v, expected +Inf", got)
	}
	if got := MilesFromBalance(0, 0); !math.IsNaN(got) {
		t.Errorf("MilesFromBalance(0, 0) = %v, expected NaN", got)
	}
	if got := MilesFromBalance(1000, -2); got != -500 {
		t.Errorf("MilesFromBalance(1000, -2) = %v, expected -500", got)
	}
}

func TestMilesFromBalanceIsLinear(t *testing.T) {
	for _, p := range All() {
		for _, balance := range []float64{1, 1000, 1100000, 123457} {
			single := MilesFromBalance(balance, p.Ratio)
			double := MilesFromBalance(2*balance, p.Ratio)
			if math.Abs(double-2*single) > 1e-6 {
				t.Errorf("%s: MilesFromBalance(2b) = %v, expected %v", p.ID, double, 2*single)
			}
		}
	}
}

func TestCashValue(t *testing.T) {
	tests := []struct {
		name      string
		units     float64
		valuation float64
		expected  float64
	}{
		{"Cathay", 1100000, 25, 27500000},
		{"Korean Air", 733333.3333333334, 18, 13200000},
		{"Zero valuation", 1000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CashValue(tt.units, tt.valuation)
			if math.Abs(result-tt.expected) > 1e-3 {
				t.Errorf("CashValue(%v, %v) = %v, expected %v", tt.units, tt.valuation, result, tt.expected)
			}
		})
	}
}

func TestGiftCardValue(t *testing.T) {
	if got := GiftCardValue(1100000); got != 7700000 {
		t.Errorf("GiftCardValue(1100000) = %v, expected 7700000", got)
	}
	if got := GiftCardValue(0); got != 0 {
		t.Errorf("GiftCardValue(0) = %v, expected 0", got)
	}
}

func TestFormatRatio(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		expected string
	}{
		{"Exactly one", 1, "1:1"},
		{"Within tolerance above", 1.005, "1:1"},
		{"Within tolerance below", 0.995, "1:1"},
		{"Just outside tolerance", 1.01, "1.01:1"},
		{"One point three", 1300.0 / 1000, "1.3:1"},
		{"One point five", 1.5, "1.5:1"},
		{"Two", 1000.0 / 500, "2:1"},
		{"Accor", 1050.0 / 300, "3.5:1"},
		{"Wyndham", 1000.0 / 400, "2.5:1"},
		{"Half inverts to whole", 0.5, "1:2"},
		{"Quarter inverts to whole", 0.25, "1:4"},
		{"Two fifths keeps two decimals", 0.4, "1:2.50"},
		{"Three tenths rounds", 0.3, "1:3.33"},
		{"Two thirds rounds", 2.0 / 3, "1:1.50"},
		{"Accor inverted", 300.0 / 1050, "1:3.50"},
		{"Half hundredth rounds up", 1000.0 / 1125, "1:1.13"},
		{"Half hundredth above two", 1000.0 / 2125, "1:2.13"},
		{"Half hundredth above three", 1000.0 / 3625, "1:3.63"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatRatio(tt.ratio)
			if result != tt.expected {
				t.Errorf("FormatRatio(%v) = %q, expected %q", tt.ratio, result, tt.expected)
			}
		})
	}
}

func TestParseBalance(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int64
	}{
		{"Plain digits", "1100000", 1100000},
		{"Grouped", "1,100,000", 1100000},
		{"With unit", "1,100,000 MR", 1100000},
		{"Minus sign is stripped", "-500", 500},
		{"Decimal point is stripped", "12.5", 125},
		{"Empty", "", 0},
		{"No digits", "abc", 0},
		{"Overflow", "99999999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseBalance(tt.raw)
			if result != tt.expected {
				t.Errorf("ParseBalance(%q) = %d, expected %d", tt.raw, result, tt.expected)
			}
		})
	}
}
