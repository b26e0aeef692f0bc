package awardsearch

import (
	"strconv"

	"github.com/iwvelando/mr-compare/pkg/datetime"
)

const (
	awardToolBase = "https://www.awardtool.com/flight?"

	// awardToolCabins selects all four cabins. Like the PointsYeah program
	// list it is already encoded and gets encoded again.
	awardToolCabins = "Economy%26Premium+Economy%26Business%26First"

	awardToolPrograms = "AC-AY-AY-CX-CM-CX-DL-EK-EY-G3-IB-B6-KL-LH-QF-SK-NK-QR-SQ-TP-TK-UA-VA-VS-BA-AV-AS-AA-AM"
)

// AwardTool links to the panorama mileage search. Dates are sent as Unix
// seconds at UTC midnight.
func (b *Builder) AwardTool(p SearchParams) string {
	from, to := b.endpoints(p)
	dateFrom := departDate(p)
	dateTo := datetime.NormalizeDate(p.DateTo, dateFrom)
	start := strconv.FormatInt(unixSeconds(dateFrom), 10)
	end := strconv.FormatInt(unixSeconds(dateTo), 10)

	flightWay := "oneway"
	if p.IsRoundTrip() {
		flightWay = "roundtrip"
	}

	var q query
	q.Set("flightWay", flightWay)
	q.Set("pax", "1")
	q.Set("children", "0")
	q.Set("cabins", awardToolCabins)
	q.Set("from", from)
	q.Set("to", to)
	q.Set("programs", awardToolPrograms)
	q.Set("targetId", "")
	q.Set("range", "false")
	q.Set("rangeV2", "false")
	if p.IsRoundTrip() {
		q.Set("roundTripDepartureDate", start)
		q.Set("roundTripReturnDate", end)
	} else {
		q.Set("oneWayRangeStartDate", start)
		q.Set("oneWayRangeEndDate", end)
	}
	return awardToolBase + q.Encode()
}
