// Package datetime provides date and time utility functions.
package datetime

import (
	"math"
	"strings"
	"time"

	"github.com/iwvelando/mr-compare/pkg/constants"
)

const (
	// DateLayout is the ISO calendar date format exchanged with every search tool.
	DateLayout = constants.DateLayout

	secondsPerDay = 24 * 60 * 60
)

// acceptedLayouts are tried in order when deciding whether a value is a date.
var acceptedLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// IsValidDate reports whether value parses as a calendar date in any of the
// accepted layouts.
func IsValidDate(value string) bool {
	for _, layout := range acceptedLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// NormalizeDate returns the first 10 characters of value when it is a valid
// date, and fallback when it is blank or cannot be parsed.
func NormalizeDate(value, fallback string) string {
	v := strings.TrimSpace(value)
	if v == "" || !IsValidDate(v) {
		return fallback
	}
	if len(v) > len(DateLayout) {
		return v[:len(DateLayout)]
	}
	return v
}

// AddDays returns the ISO date offset by the given number of days. The date is
// interpreted as UTC midnight.
func AddDays(date string, days int) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, 0, days).Format(DateLayout), nil
}

// UnixSeconds returns the Unix time of UTC midnight on the given ISO date.
func UnixSeconds(date string) (int64, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

// CeilDaysBetween returns the number of days from start to end rounded up.
// The result is negative when end is before start.
func CeilDaysBetween(start, end string) (int, error) {
	startT, err := time.Parse(DateLayout, start)
	if err != nil {
		return 0, err
	}
	endT, err := time.Parse(DateLayout, end)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(float64(endT.Unix()-startT.Unix()) / secondsPerDay)), nil
}
