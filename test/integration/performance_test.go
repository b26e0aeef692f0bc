package integration

import (
	"os"
	"testing"
	"time"

	"github.com/iwvelando/mr-compare/internal/awardsearch"
	"github.com/iwvelando/mr-compare/internal/partner"
	"github.com/iwvelando/mr-compare/internal/report"
)

// TestMain is a simple test runner hook for debugging
func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}

// TestPerformance checks that building reports stays cheap enough to run per
// keystroke on the dashboard.
func TestPerformance(t *testing.T) {
	partners := partner.All()
	builder := awardsearch.NewBuilder(awardsearch.WithClock(awardsearch.FixedClock(fixedNow)))
	req := report.Request{
		Balance: 1100000,
		Query:   partner.Query{SortBy: partner.SortCashValue},
		Search:  awardsearch.DefaultSearchParams(),
	}

	const iterations = 1000
	start := time.Now()
	for i := 0; i < iterations; i++ {
		r := report.Build(partners, builder, req)
		if len(r.Partners) != 21 {
			t.Fatalf("unexpected partner count %d", len(r.Partners))
		}
	}
	elapsed := time.Since(start)
	t.Logf("built %d reports in %v (%v each)", iterations, elapsed, elapsed/iterations)

	if elapsed > 5*time.Second {
		t.Errorf("building %d reports took %v, expected under 5s", iterations, elapsed)
	}
}

// TestDataConsistency checks that repeated builds produce identical reports.
func TestDataConsistency(t *testing.T) {
	partners := partner.All()
	builder := awardsearch.NewBuilder(awardsearch.WithClock(awardsearch.FixedClock(fixedNow)))
	req := report.Request{Balance: 1234567, Search: awardsearch.DefaultSearchParams()}

	first := report.Build(partners, builder, req)
	for i := 0; i < 5; i++ {
		next := report.Build(partners, builder, req)
		for j := range first.Partners {
			if first.Partners[j].Partner.ID != next.Partners[j].Partner.ID ||
				first.Partners[j].CashValue != next.Partners[j].CashValue {
				t.Fatalf("run %d differs at row %d", i, j)
			}
		}
		for j := range first.Links {
			if first.Links[j] != next.Links[j] {
				t.Fatalf("run %d link %s differs", i, first.Links[j].ID)
			}
		}
	}
}

func BenchmarkRows(b *testing.B) {
	partners := partner.All()
	q := partner.Query{Category: partner.FilterAll, SortBy: partner.SortMiles, Direction: partner.Descending}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		partner.Rows(partners, 1100000, q)
	}
}

func BenchmarkLinks(b *testing.B) {
	builder := awardsearch.NewBuilder(awardsearch.WithClock(awardsearch.FixedClock(fixedNow)))
	p := awardsearch.DefaultSearchParams()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		builder.Links(p)
	}
}
