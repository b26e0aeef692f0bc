// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mr-compare/pkg/constants"
	"github.com/iwvelando/mr-compare/pkg/datetime"
)

// ValidateSearchDates reports dates that the link builders will silently
// replace or that describe an unusual range. It never returns an error; bad
// dates fall back to defaults downstream.
func ValidateSearchDates(dateFrom, dateTo string) []string {
	var warnings []string

	from := strings.TrimSpace(dateFrom)
	to := strings.TrimSpace(dateTo)

	if from != "" && !datetime.IsValidDate(from) {
		warnings = append(warnings, fmt.Sprintf("Departure date '%s' is not a valid date - %s will be used",
			dateFrom, constants.DefaultDepartDate))
		from = ""
	}
	if to != "" && !datetime.IsValidDate(to) {
		warnings = append(warnings, fmt.Sprintf("Return date '%s' is not a valid date - the departure date will be used",
			dateTo))
		to = ""
	}
	if from == "" || to == "" {
		return warnings
	}

	start := datetime.NormalizeDate(from, constants.DefaultDepartDate)
	end := datetime.NormalizeDate(to, start)
	days, err := datetime.CeilDaysBetween(start, end)
	if err != nil {
		return warnings
	}
	if days < 0 {
		warnings = append(warnings, fmt.Sprintf("Return date %s is before departure date %s", end, start))
	}
	if days > constants.SearchWindowDays {
		warnings = append(warnings, fmt.Sprintf("Date range %s to %s exceeds %d days - seat alert windows will be capped",
			start, end, constants.SearchWindowDays))
	}
	return warnings
}

// SearchConfig is the subset of search settings checked by ConfigValidator.
type SearchConfig struct {
	Origin      string
	Destination string
	DateFrom    string
	DateTo      string
	Stops       int
}

// ConfigValidator performs comprehensive configuration validation.
type ConfigValidator struct {
	Balance int64
	Search  SearchConfig
}

// ValidateAll validates the entire configuration and returns warnings.
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	if cv.Balance < 0 {
		warnings = append(warnings, fmt.Sprintf("Balance %d is negative - converted values will be negative", cv.Balance))
	}
	if cv.Balance == 0 {
		warnings = append(warnings, "Balance is 0 - every conversion will be 0")
	}

	if strings.TrimSpace(cv.Search.Origin) == "" {
		warnings = append(warnings, fmt.Sprintf("Search origin is empty - %s will be used", constants.DefaultAirport))
	}
	if strings.TrimSpace(cv.Search.Destination) == "" {
		warnings = append(warnings, fmt.Sprintf("Search destination is empty - %s will be used", constants.DefaultAirport))
	}
	if o, d := strings.TrimSpace(cv.Search.Origin), strings.TrimSpace(cv.Search.Destination); o != "" && strings.EqualFold(o, d) {
		warnings = append(warnings, fmt.Sprintf("Search origin and destination are both '%s'", o))
	}
	if cv.Search.Stops < 0 || cv.Search.Stops > constants.MaxStopsCeiling-1 {
		warnings = append(warnings, fmt.Sprintf("Stops %d is outside 0-%d", cv.Search.Stops, constants.MaxStopsCeiling-1))
	}

	warnings = append(warnings, ValidateSearchDates(cv.Search.DateFrom, cv.Search.DateTo)...)
	return warnings
}
