// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/mr-compare/pkg/constants"
)

// Round rounds a value to two decimals, halves away from zero.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// WithinTolerance reports whether two values differ by strictly less than tolerance.
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) < tolerance
}

// IsWhole reports whether val is a finite integer value.
func IsWhole(val float64) bool {
	return !math.IsInf(val, 0) && !math.IsNaN(val) && val == math.Round(val)
}

// MinInt returns the minimum of two int values
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
