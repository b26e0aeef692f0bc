// Package partner holds the static loyalty-partner dataset and the pure
// valuation math used to compare conversions from a points balance.
package partner

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mr-compare/pkg/format"
)

// Category classifies what a partner's points are redeemed for.
type Category string

const (
	CategoryFlight Category = "flight"
	CategoryHotel  Category = "hotel"
)

// Label returns the display label used by the dashboard.
func (c Category) Label() string {
	switch c {
	case CategoryFlight:
		return "항공"
	case CategoryHotel:
		return "호텔"
	}
	return string(c)
}

// Unit returns what a converted balance is counted in.
func (c Category) Unit() string {
	if c == CategoryHotel {
		return format.PointsUnit
	}
	return format.MilesUnit
}

// Region keys the per-region guidance of a partner.
type Region string

const (
	RegionAsia       Region = "asia"
	RegionEurope     Region = "europe"
	RegionUSA        Region = "usa"
	RegionMiddleEast Region = "middle-east"
)

// Regions lists every region in display order.
var Regions = []Region{RegionAsia, RegionEurope, RegionUSA, RegionMiddleEast}

// Label returns the display label of the region.
func (r Region) Label() string {
	switch r {
	case RegionAsia:
		return "아시아"
	case RegionEurope:
		return "유럽"
	case RegionUSA:
		return "미국"
	case RegionMiddleEast:
		return "중동"
	}
	return string(r)
}

// Partner is one redemption path for the points balance.
type Partner struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Category Category `json:"category" yaml:"category"`
	// Ratio is points spent per mile or point received.
	Ratio float64 `json:"ratio" yaml:"ratio"`
	// Valuation is the estimated KRW worth of one received mile or point.
	Valuation        float64           `json:"valuation" yaml:"valuation"`
	Strategy         string            `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	StrategyByRegion map[Region]string `json:"strategyByRegion,omitempty" yaml:"strategyByRegion,omitempty"`
}

// HasRegionalStrategy reports whether the partner's guidance is split by region.
func (p Partner) HasRegionalStrategy() bool {
	return len(p.StrategyByRegion) > 0
}

// RegionalStrategies returns the populated regions in display order.
func (p Partner) RegionalStrategies() []Region {
	regions := make([]Region, 0, len(p.StrategyByRegion))
	for _, r := range Regions {
		if strings.TrimSpace(p.StrategyByRegion[r]) != "" {
			regions = append(regions, r)
		}
	}
	return regions
}

// ShortName returns the name without its parenthesised program name, and the
// program name if there was one: "캐세이 (아시아 마일즈)" -> "캐세이", "아시아 마일즈".
func (p Partner) ShortName() (string, string) {
	head, tail, found := strings.Cut(p.Name, " (")
	if !found {
		return p.Name, ""
	}
	return head, strings.TrimSuffix(tail, ")")
}

// CategoryFilter selects which partners appear in the table.
type CategoryFilter string

const (
	FilterAll     CategoryFilter = "all"
	FilterFlights CategoryFilter = "flight"
	FilterHotels  CategoryFilter = "hotel"
)

// Matches reports whether a partner passes the filter.
func (f CategoryFilter) Matches(p Partner) bool {
	switch f {
	case FilterFlights:
		return p.Category == CategoryFlight
	case FilterHotels:
		return p.Category == CategoryHotel
	}
	return true
}

// ParseCategory parses a category filter. The empty string means all partners.
func ParseCategory(value string) (CategoryFilter, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all", "전체":
		return FilterAll, nil
	case "flight", "flights", "항공":
		return FilterFlights, nil
	case "hotel", "hotels", "호텔":
		return FilterHotels, nil
	}
	return FilterAll, fmt.Errorf("unknown category filter %q", value)
}
