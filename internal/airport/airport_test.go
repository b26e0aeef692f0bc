package airport

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestBundledList(t *testing.T) {
	require.Len(t, Bundled, 31)
	seen := map[string]bool{}
	for _, a := range Bundled {
		assert.Len(t, a.IATA, 3, a.Name)
		assert.False(t, seen[a.IATA], "duplicate %s", a.IATA)
		seen[a.IATA] = true
	}
	assert.Equal(t, "GMP", Bundled[0].IATA)
}

func TestFindByIATA(t *testing.T) {
	a, ok := FindByIATA(Bundled, " icn ")
	require.True(t, ok)
	assert.Equal(t, "Incheon International Airport", a.Name)

	_, ok = FindByIATA(Bundled, "")
	assert.False(t, ok)
	_, ok = FindByIATA(Bundled, "XYZ")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		limit    int
		expected []string
	}{
		{"City matches in list order", "tokyo", 10, []string{"HND", "NRT"}},
		{"Limit applies", "seoul", 1, []string{"GMP"}},
		{"Country", "united kingdom", 10, []string{"LHR", "LGW"}},
		{"ICAO", "rjaa", 10, []string{"NRT"}},
		{"Empty query", "  ", 10, nil},
		{"Zero limit", "tokyo", 0, nil},
		{"No match", "atlantis", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, a := range Search(Bundled, tt.query, tt.limit) {
				got = append(got, a.IATA)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveIATA(t *testing.T) {
	r := NewResolver(nil)
	tests := []struct {
		input    string
		expected string
	}{
		{"HND", "HND"},
		{" hnd ", "HND"},
		{"Tokyo", "HND"},
		{"Narita", "NRT"},
		{"heathrow", "LHR"},
		{"xyz", "XYZ"},
		{"", "GMP"},
		{"   ", "GMP"},
		{"12", "GMP"},
		{"atlantis", "GMP"},
		{"AB1", "GMP"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.ResolveIATA(tt.input))
		})
	}
}

func TestResolveIATAPrefersExactCode(t *testing.T) {
	// "fra" is also a substring of "France", which lists CDG first.
	r := NewResolver(nil)
	assert.Equal(t, "FRA", r.ResolveIATA("fra"))
	assert.Equal(t, "CDG", r.ResolveIATA("france"))
}

const sampleJSON = `[
  {"iata": "GMP", "icao": "RKSS", "name": "Gimpo International Airport", "city": "Seoul", "country": "South Korea", "latitude": 37.5583, "longitude": 126.7906},
  {"iata": "\\N", "icao": "ZZZZ", "name": "Unlisted Field", "city": "Nowhere", "country": "Nowhere", "latitude": "1.5", "longitude": "2.5"},
  {"iata": "", "icao": "YYYY", "name": "Blank Field", "city": "Nowhere", "country": "Nowhere", "latitude": 0, "longitude": 0},
  {"iata": "CJU", "icao": "RKPC", "name": "Jeju International Airport", "city": "Jeju", "country": "South Korea", "latitude": "33.5113", "longitude": "126.4930"}
]`

func TestDecode(t *testing.T) {
	list, err := Decode([]byte(sampleJSON))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "GMP", list[0].IATA)
	assert.Equal(t, "CJU", list[1].IATA)
	assert.InDelta(t, 33.5113, list[1].Latitude, 1e-9)

	_, err = Decode([]byte(`{"not": "an array"}`))
	assert.Error(t, err)
}

func TestDecodeNormalizesCodes(t *testing.T) {
	list, err := Decode([]byte(`[
  {"iata": "ab", "name": "Tiny Strip", "city": "Nowhere", "country": "Nowhere"},
  {"iata": "LONGX", "name": "Long Code Field", "city": "Nowhere", "country": "Nowhere"},
  {"iata": "nrt", "name": "Narita International Airport", "city": "Tokyo", "country": "Japan"},
  {"iata": " pus ", "name": "Gimhae International Airport", "city": "Busan", "country": "South Korea"},
  {"iata": "1CN", "name": "Digit Field", "city": "Nowhere", "country": "Nowhere"}
]`))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "NRT", list[0].IATA)
	assert.Equal(t, "PUS", list[1].IATA)

	r := NewResolver(list)
	for _, input := range []string{"ab", "tiny", "long code", "nrt", "narita", "busan", "digit", "", "seoul"} {
		got := r.ResolveIATA(input)
		assert.Regexp(t, `^[A-Z]{3}$`, got, "ResolveIATA(%q)", input)
	}
	assert.Equal(t, "NRT", r.ResolveIATA("nrt"))
	assert.Equal(t, "PUS", r.ResolveIATA("busan"))
	assert.Equal(t, DefaultCode, r.ResolveIATA("long code"))
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "airports.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o600))
	return path
}

func TestDirectoryLoadsOnce(t *testing.T) {
	var loads atomic.Int32
	d := NewDirectory(writeSample(t), zaptest.NewLogger(t),
		WithLoadObserver(func(error) { loads.Add(1) }))

	var wg sync.WaitGroup
	results := make([][]Record, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			list, err := d.Full(context.Background())
			assert.NoError(t, err)
			results[i] = list
		}(i)
	}
	wg.Wait()

	_, err := d.Full(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), loads.Load())
	for _, list := range results {
		assert.Len(t, list, 2)
	}

	// Jeju is only in the full list; the directory resolver finds it.
	assert.Equal(t, "CJU", d.Resolver(context.Background()).ResolveIATA("jeju"))
}

func TestDirectoryRetriesFailedLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airports.json")
	var failures atomic.Int32
	d := NewDirectory(path, zaptest.NewLogger(t), WithLoadObserver(func(err error) {
		if err != nil {
			failures.Add(1)
		}
	}))

	_, err := d.Full(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), failures.Load())
	assert.Equal(t, Bundled, d.List(context.Background()))

	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o600))
	list, err := d.Full(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestDirectoryWithoutFile(t *testing.T) {
	d := NewDirectory("", nil)
	_, err := d.Full(context.Background())
	assert.Error(t, err)
	assert.Equal(t, Bundled, d.List(context.Background()))
	assert.Equal(t, "HND", d.Resolver(context.Background()).ResolveIATA("Haneda"))
}
