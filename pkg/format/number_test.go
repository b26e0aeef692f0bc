package format

import (
	"math"
	"testing"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		expected string
	}{
		{"Zero", 0, 0, "0"},
		{"Below a thousand", 999, 0, "999"},
		{"Exactly a thousand", 1000, 0, "1,000"},
		{"Default balance", 1100000, 0, "1,100,000"},
		{"Rounds half up", 733333.5, 0, "733,334"},
		{"Half rounds away from zero", 0.5, 0, "1"},
		{"Rounds down", 733333.3333, 0, "733,333"},
		{"Two decimals", 1234.567, 2, "1,234.57"},
		{"Negative", -1234567, 0, "-1,234,567"},
		{"Negative rounding to zero", -0.2, 0, "0"},
		{"Negative decimals clamp", 12.7, -1, "13"},
		{"Infinity", math.Inf(1), 0, "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Number(tt.value, tt.decimals)
			if result != tt.expected {
				t.Errorf("Number(%v, %d) = %q, expected %q", tt.value, tt.decimals, result, tt.expected)
			}
		})
	}
}

func TestKRW(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Gift card baseline", 7700000, "7,700,000원"},
		{"Korean Air cash value", 13199999.999999998, "13,200,000원"},
		{"Small amount", 7, "7원"},
		{"Zero", 0, "0원"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := KRW(tt.amount)
			if result != tt.expected {
				t.Errorf("KRW(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestUnits(t *testing.T) {
	if got := Units(733333.3333333334, MilesUnit); got != "733,333 마일" {
		t.Errorf("Units() = %q, expected %q", got, "733,333 마일")
	}
	if got := Units(2200000, PointsUnit); got != "2,200,000 pts" {
		t.Errorf("Units() = %q, expected %q", got, "2,200,000 pts")
	}
}
