// Package format renders numbers the way the comparison table shows them.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Unit labels appended to converted balances.
const (
	MilesUnit  = "마일"
	PointsUnit = "pts"
	WonSuffix  = "원"
)

// KRW returns an amount rounded to whole won with thousands separators and the
// won suffix (e.g., "13,200,000원").
func KRW(amount float64) string {
	return Number(math.Round(amount), 0) + WonSuffix
}

// Units returns a converted balance rounded to whole units followed by its
// unit label (e.g., "733,333 마일").
func Units(amount float64, unit string) string {
	return Number(amount, 0) + " " + unit
}

// Number returns value with the given number of decimals and thousands
// separators (e.g., "-1,234.57").
func Number(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Sprintf("%v", value)
	}
	if decimals < 0 {
		decimals = 0
	}
	formatted := formatPositive(math.Abs(value), decimals)
	if value < 0 && strings.Trim(formatted, "0.,") != "" {
		return "-" + formatted
	}
	return formatted
}

func formatPositive(value float64, decimals int) string {
	// Halves round away from zero, not to even.
	factor := math.Pow(10, float64(decimals))
	formatted := fmt.Sprintf("%.*f", decimals, math.Round(value*factor)/factor)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	if len(parts) == 2 {
		return intPart + "." + parts[1]
	}
	return intPart
}
