// Package awardsearch builds deep links into third-party award-availability
// search tools from a single itinerary description.
package awardsearch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/mr-compare/pkg/constants"
)

// RouteType selects one-way or round-trip searches.
type RouteType string

const (
	OneWay    RouteType = "oneway"
	RoundTrip RouteType = "roundtrip"
)

// Cabin is the requested cabin class.
type Cabin string

const (
	Economy        Cabin = "economy"
	PremiumEconomy Cabin = "premium"
	Business       Cabin = "business"
	First          Cabin = "first"
)

// MaxStops is the largest connection count the search form offers.
const MaxStops = 2

// DefaultDepartDate is used whenever a departure date is blank or invalid.
const DefaultDepartDate = constants.DefaultDepartDate

// SearchParams describes one itinerary search. Dates are ISO strings that may
// be blank or invalid; builders normalize them.
type SearchParams struct {
	Origin      string    `json:"origin" yaml:"origin" mapstructure:"origin"`
	Destination string    `json:"destination" yaml:"destination" mapstructure:"destination"`
	DateFrom    string    `json:"dateFrom" yaml:"dateFrom" mapstructure:"dateFrom"`
	DateTo      string    `json:"dateTo" yaml:"dateTo" mapstructure:"dateTo"`
	RouteType   RouteType `json:"routeType" yaml:"routeType" mapstructure:"routeType"`
	Cabin       Cabin     `json:"cabin" yaml:"cabin" mapstructure:"cabin"`
	Stops       int       `json:"stops" yaml:"stops" mapstructure:"stops"`
}

// DefaultSearchParams mirrors the initial state of the search form.
func DefaultSearchParams() SearchParams {
	return SearchParams{
		Origin:      constants.DefaultAirport,
		Destination: constants.DefaultDestination,
		DateFrom:    DefaultDepartDate,
		DateTo:      "2026-04-18",
		RouteType:   OneWay,
		Cabin:       Business,
		Stops:       0,
	}
}

// IsRoundTrip reports whether the search is a round trip. Anything other
// than RoundTrip, including the zero value, is treated as one-way.
func (p SearchParams) IsRoundTrip() bool {
	return p.RouteType == RoundTrip
}

// ParseRouteType accepts the canonical spellings and their hyphenated forms.
func ParseRouteType(s string) (RouteType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "oneway", "one-way", "one_way", "편도":
		return OneWay, nil
	case "roundtrip", "round-trip", "round_trip", "왕복":
		return RoundTrip, nil
	default:
		return "", fmt.Errorf("unknown route type %q", s)
	}
}

// ParseCabin accepts the canonical cabin names; premium economy may also be
// spelled out.
func ParseCabin(s string) (Cabin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "economy", "y":
		return Economy, nil
	case "premium", "premium-economy", "premium_economy", "premiumeconomy", "w":
		return PremiumEconomy, nil
	case "", "business", "c":
		return Business, nil
	case "first", "f":
		return First, nil
	default:
		return "", fmt.Errorf("unknown cabin %q", s)
	}
}

// ParseStops parses a maximum connection count between 0 and MaxStops.
func ParseStops(s string) (int, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid stops %q: %w", s, err)
	}
	if n < 0 || n > MaxStops {
		return 0, fmt.Errorf("stops must be between 0 and %d, got %d", MaxStops, n)
	}
	return n, nil
}

// cabinCodes are single-letter fare bucket codes.
var cabinCodes = map[Cabin]string{
	Economy:        "y",
	PremiumEconomy: "w",
	Business:       "c",
	First:          "f",
}

// cabinClasses are upper-case class names.
var cabinClasses = map[Cabin]string{
	Economy:        "ECON",
	PremiumEconomy: "PREMECON",
	Business:       "BUSINESS",
	First:          "FIRST",
}

func (c Cabin) code() string {
	if v, ok := cabinCodes[c]; ok {
		return v
	}
	return cabinCodes[Economy]
}

func (c Cabin) class() string {
	if v, ok := cabinClasses[c]; ok {
		return v
	}
	return cabinClasses[Economy]
}
