// Package report assembles the partner comparison table and the award-search
// links for one balance and one itinerary.
package report

import (
	"github.com/iwvelando/mr-compare/internal/awardsearch"
	"github.com/iwvelando/mr-compare/internal/partner"
)

// Entry is a table row plus the partner's booking site.
type Entry struct {
	partner.Row
	BookingURL string `json:"bookingUrl,omitempty"`
}

// Report is everything the CLI and the dashboard render.
type Report struct {
	Balance   int64                    `json:"balance"`
	GiftRate  float64                  `json:"giftRate"`
	GiftValue float64                  `json:"giftValue"`
	Category  partner.CategoryFilter   `json:"category"`
	SortBy    partner.SortKey          `json:"sortBy,omitempty"`
	Direction partner.Direction        `json:"sortDir"`
	Partners  []Entry                  `json:"partners"`
	Search    awardsearch.SearchParams `json:"search"`
	Links     []awardsearch.Link       `json:"links"`
}

// Request holds the inputs of a report.
type Request struct {
	Balance int64
	Query   partner.Query
	Search  awardsearch.SearchParams
}

// Build computes the report for the given partners. A nil builder skips the
// search links.
func Build(partners []partner.Partner, builder *awardsearch.Builder, req Request) Report {
	balance := float64(req.Balance)
	rows := partner.Rows(partners, balance, req.Query)

	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = Entry{Row: row}
		if u, ok := partner.BookingURL(row.Partner.ID); ok {
			entries[i].BookingURL = u
		}
	}

	direction := req.Query.Direction
	if direction == "" {
		direction = partner.Descending
	}
	category := req.Query.Category
	if category == "" {
		category = partner.FilterAll
	}

	r := Report{
		Balance:   req.Balance,
		GiftRate:  partner.GiftRate,
		GiftValue: partner.GiftCardValue(balance),
		Category:  category,
		SortBy:    req.Query.SortBy,
		Direction: direction,
		Partners:  entries,
		Search:    req.Search,
		Links:     []awardsearch.Link{},
	}
	if builder != nil {
		r.Links = builder.Links(req.Search)
	}
	return r
}

// Best returns the entry with the highest cash value. Ties go to the entry
// listed first.
func (r Report) Best() (Entry, bool) {
	if len(r.Partners) == 0 {
		return Entry{}, false
	}
	best := r.Partners[0]
	for _, e := range r.Partners[1:] {
		if e.CashValue > best.CashValue {
			best = e
		}
	}
	return best, true
}

// AboveGiftCount counts partners that beat the gift card baseline.
func (r Report) AboveGiftCount() int {
	n := 0
	for _, e := range r.Partners {
		if e.AboveGift {
			n++
		}
	}
	return n
}
