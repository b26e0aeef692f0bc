package partner

import (
	"strconv"
	"strings"

	"github.com/iwvelando/mr-compare/pkg/constants"
	"github.com/iwvelando/mr-compare/pkg/mathutil"
)

// GiftRate is the KRW obtained per point through the gift-card cash-out.
const GiftRate = constants.GiftRate

// MilesFromBalance converts a points balance at the given spend-per-unit ratio.
// The ratio must be positive; a zero ratio yields +Inf (or NaN for a zero
// balance) rather than an error.
func MilesFromBalance(balance, ratio float64) float64 {
	return balance / ratio
}

// CashValue returns the KRW worth of the given number of miles or points.
func CashValue(units, valuation float64) float64 {
	return units * valuation
}

// GiftCardValue returns the KRW the balance is worth as gift cards, the
// baseline every partner is compared against.
func GiftCardValue(balance float64) float64 {
	return balance * GiftRate
}

// FormatRatio renders a conversion ratio for display: 1:1, 1.3:1, 1:2, 1:3.50.
func FormatRatio(ratio float64) string {
	if mathutil.WithinTolerance(ratio, 1, constants.RatioTolerance) {
		return "1:1"
	}
	if ratio >= 1 {
		return strconv.FormatFloat(ratio, 'f', -1, 64) + ":1"
	}
	inverse := 1 / ratio
	if mathutil.IsWhole(inverse) {
		return "1:" + strconv.FormatFloat(inverse, 'f', -1, 64)
	}
	return "1:" + strconv.FormatFloat(mathutil.Round(inverse), 'f', 2, 64)
}

// ParseBalance reads a user-typed balance, ignoring every non-digit character
// ("1,100,000 MR" is 1100000). Empty or overflowing input is coerced to zero.
func ParseBalance(raw string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
