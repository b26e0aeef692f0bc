package partner

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Validate checks the integrity rules every dataset must satisfy before any
// valuation is computed from it. All violations are reported together.
func Validate(partners []Partner) error {
	var errs []error
	seen := make(map[string]struct{}, len(partners))

	for i, p := range partners {
		label := p.ID
		if strings.TrimSpace(p.ID) == "" {
			label = fmt.Sprintf("#%d", i)
			errs = append(errs, fmt.Errorf("partner %s: empty id", label))
		} else if _, dup := seen[p.ID]; dup {
			errs = append(errs, fmt.Errorf("partner %s: duplicate id", label))
		}
		seen[p.ID] = struct{}{}

		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Errorf("partner %s: empty name", label))
		}
		if p.Category != CategoryFlight && p.Category != CategoryHotel {
			errs = append(errs, fmt.Errorf("partner %s: unknown category %q", label, p.Category))
		}
		if !(p.Ratio > 0) || math.IsInf(p.Ratio, 0) {
			errs = append(errs, fmt.Errorf("partner %s: ratio must be positive and finite, got %v", label, p.Ratio))
		}
		if !(p.Valuation >= 0) || math.IsInf(p.Valuation, 0) {
			errs = append(errs, fmt.Errorf("partner %s: valuation must be non-negative and finite, got %v", label, p.Valuation))
		}
		if strings.TrimSpace(p.Strategy) == "" && len(p.RegionalStrategies()) == 0 {
			errs = append(errs, fmt.Errorf("partner %s: no strategy guidance", label))
		}
		var unknown []string
		for region := range p.StrategyByRegion {
			if !knownRegion(region) {
				unknown = append(unknown, string(region))
			}
		}
		sort.Strings(unknown)
		for _, region := range unknown {
			errs = append(errs, fmt.Errorf("partner %s: unknown region %q", label, region))
		}
	}

	return errors.Join(errs...)
}

func knownRegion(r Region) bool {
	for _, known := range Regions {
		if r == known {
			return true
		}
	}
	return false
}
