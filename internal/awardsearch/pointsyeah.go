package awardsearch

import "github.com/iwvelando/mr-compare/pkg/datetime"

const pointsYeahBase = "https://www.pointsyeah.com/search?"

// pointsYeahPrograms is sent pre-encoded and is therefore encoded a second
// time in the final link, which is the form the site accepts.
const pointsYeahPrograms = "AR%2CAM%2CAC%2CKL%2CAS%2CAA%2CAV%2CDL%2CEK%2CEY%2CAY%2CB6%2CQF%2CSQ%2CTK%2CVS"

// PointsYeah links to the points comparison search with Amex as the bank.
func (b *Builder) PointsYeah(p SearchParams) string {
	departure, arrival := b.endpoints(p)
	depart := departDate(p)
	tripType := "1"
	if p.IsRoundTrip() {
		tripType = "2"
	}

	var q query
	q.Set("cabins", "")
	q.Set("banks", "Amex")
	q.Set("airlineProgram", pointsYeahPrograms)
	q.Set("tripType", tripType)
	q.Set("adults", "1")
	q.Set("children", "0")
	q.Set("departure", departure)
	q.Set("arrival", arrival)
	q.Set("departDate", depart)
	q.Set("departDateSec", depart)
	q.Set("multiday", "false")
	if p.IsRoundTrip() {
		ret := datetime.NormalizeDate(p.DateTo, depart)
		q.Set("returnDate", ret)
		q.Set("returnDateSec", ret)
	}
	return pointsYeahBase + q.Encode()
}
