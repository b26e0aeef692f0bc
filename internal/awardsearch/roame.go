package awardsearch

import (
	"strconv"

	"github.com/iwvelando/mr-compare/pkg/constants"
	"github.com/iwvelando/mr-compare/pkg/datetime"
	"github.com/iwvelando/mr-compare/pkg/mathutil"
)

const (
	roameBase = "https://roame.travel/search?"

	// Fixed Roame location ids (GMP and HND), not derived from the searched airports.
	roameOriginID      = "76835"
	roameDestinationID = "78285"
)

var roamePrograms = []string{
	"ANA", "AEROPLAN", "LIFEMILES", "SINGAPORE", "CATHAY", "BRITISH_AIRWAYS", "QATAR", "IBERIA",
	"DELTA", "EMIRATES", "FLYING_BLUE", "JETBLUE", "QANTAS", "VIRGIN_ATLANTIC", "CLUB_PREMIER", "SAS", "ETIHAD",
}

var roameEmptyFilters = []string{
	"selectedAirlines", "unselectedAirlines",
	"selectedAirports", "unselectedAirports",
	"selectedAircrafts", "unselectedAircrafts",
}

// Roame links to the availability map search. The cachebust parameter is the
// clock in milliseconds and is the only field that changes between calls.
func (b *Builder) Roame(p SearchParams) string {
	origin, destination := b.endpoints(p)
	endFallback := DefaultDepartDate
	if p.DateFrom != "" {
		endFallback = p.DateFrom
	}
	class := p.Cabin.class()

	var q query
	q.Set("origin", origin)
	q.Set("originType", "airport")
	q.Set("destination", destination)
	q.Set("destinationType", "airport")
	q.Set("originId", roameOriginID)
	q.Set("destinationId", roameDestinationID)
	q.Set("departureDate", departDate(p))
	q.Set("endDepartureDate", datetime.NormalizeDate(p.DateTo, endFallback))
	q.Set("pax", "1")
	q.Set("searchClass", class)
	q.Set("fareClasses", class)
	q.Set("isSkyview", "false")
	q.Set("flexibleDates", "0")
	q.Set("selectedCards", "amex")
	for _, program := range roamePrograms {
		q.Add("selectedPrograms", program)
	}
	for _, key := range roameEmptyFilters {
		q.Set(key, "")
	}
	q.Set("maxStops", strconv.Itoa(mathutil.MinInt(p.Stops+1, constants.MaxStopsCeiling)))
	q.Set("minPremiumPercent", "0")
	q.Set("maxPoints", "300000")
	q.Set("maxSurcharge", "800")
	q.Set("cachebust", strconv.FormatInt(b.clock.Now().UnixMilli(), 10))
	return roameBase + q.Encode()
}
