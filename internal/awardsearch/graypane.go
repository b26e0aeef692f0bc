package awardsearch

import (
	"strconv"
	"strings"

	"github.com/iwvelando/mr-compare/pkg/constants"
	"github.com/iwvelando/mr-compare/pkg/datetime"
	"github.com/iwvelando/mr-compare/pkg/mathutil"
)

// GrayPane links to the seats.aero-backed seat search and alert tool. It is
// one-way oriented: the date range becomes a search window of up to 30 days.
func (b *Builder) GrayPane(p SearchParams) string {
	origin, destination := b.endpoints(p)
	dateFrom := departDate(p)
	windowEnd, _ := datetime.AddDays(dateFrom, constants.SearchWindowDays)
	dateTo := datetime.NormalizeDate(p.DateTo, windowEnd)

	days, _ := datetime.CeilDaysBetween(dateFrom, dateTo)
	window := mathutil.MinInt(constants.SearchWindowDays, days)
	if window == 0 {
		window = constants.SearchWindowDays
	}

	var q query
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("selectedDate", dateFrom)
	q.Set("dateFrom", dateFrom)
	q.Set("dateTo", dateTo)
	q.Set("searchWindowDays", strconv.Itoa(window))
	return strings.TrimSuffix(b.graypaneBase, "/") + "/search?" + q.Encode()
}
