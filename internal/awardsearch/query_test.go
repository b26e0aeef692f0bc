package awardsearch

import (
	"net/url"
	"testing"
)

func TestFormEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"GMP", "GMP"},
		{"2026-03-19", "2026-03-19"},
		{"a b", "a+b"},
		{"a&b=c", "a%26b%3Dc"},
		{"100%", "100%25"},
		{"AR%2CAM", "AR%252CAM"},
		{"*-._~", "*-._%7E"},
		{"a+b", "a%2Bb"},
		{"서울", "%EC%84%9C%EC%9A%B8"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := formEscape(tt.input); result != tt.expected {
				t.Errorf("formEscape(%q) = %s, expected %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestQuerySetAndAdd(t *testing.T) {
	var q query
	q.Set("a", "1")
	q.Add("b", "2")
	q.Add("a", "3")
	q.Add("c", "4")
	if got := q.Encode(); got != "a=1&b=2&a=3&c=4" {
		t.Fatalf("Encode() = %s", got)
	}

	// Set keeps the first position and removes later duplicates.
	q.Set("a", "5")
	if got := q.Encode(); got != "a=5&b=2&c=4" {
		t.Errorf("Encode() after Set = %s, expected a=5&b=2&c=4", got)
	}

	q.Set("d", "")
	if got := q.Encode(); got != "a=5&b=2&c=4&d=" {
		t.Errorf("Encode() after new Set = %s", got)
	}
}

func TestQueryRoundTrip(t *testing.T) {
	values := []string{
		"Seoul Gimpo",
		"R&D=ok",
		"50% off",
		"AR%2CAM%2CAC",
		"Economy%26Premium+Economy",
		"김포 → 하네다",
		"a/b?c#d",
	}

	var q query
	for _, v := range values {
		q.Add("v", v)
	}
	parsed, err := url.ParseQuery(q.Encode())
	if err != nil {
		t.Fatalf("ParseQuery() error = %v", err)
	}
	got := parsed["v"]
	if len(got) != len(values) {
		t.Fatalf("decoded %d values, expected %d", len(got), len(values))
	}
	for i := range values {
		if got[i] != values[i] {
			t.Errorf("value %d decoded to %q, expected %q", i, got[i], values[i])
		}
	}
}

func TestParseEnums(t *testing.T) {
	routeTests := []struct {
		input    string
		expected RouteType
		wantErr  bool
	}{
		{"oneway", OneWay, false},
		{"Round-Trip", RoundTrip, false},
		{"", OneWay, false},
		{"multi-city", "", true},
	}
	for _, tt := range routeTests {
		got, err := ParseRouteType(tt.input)
		if (err != nil) != tt.wantErr || got != tt.expected {
			t.Errorf("ParseRouteType(%q) = %v, %v", tt.input, got, err)
		}
	}

	cabinTests := []struct {
		input    string
		expected Cabin
		wantErr  bool
	}{
		{"economy", Economy, false},
		{"premium-economy", PremiumEconomy, false},
		{"PREMIUM", PremiumEconomy, false},
		{"business", Business, false},
		{"first", First, false},
		{"coach", "", true},
	}
	for _, tt := range cabinTests {
		got, err := ParseCabin(tt.input)
		if (err != nil) != tt.wantErr || got != tt.expected {
			t.Errorf("ParseCabin(%q) = %v, %v", tt.input, got, err)
		}
	}

	stopTests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{"0", 0, false},
		{"2", 2, false},
		{"", 0, false},
		{"3", 0, true},
		{"-1", 0, true},
		{"many", 0, true},
	}
	for _, tt := range stopTests {
		got, err := ParseStops(tt.input)
		if (err != nil) != tt.wantErr || got != tt.expected {
			t.Errorf("ParseStops(%q) = %v, %v", tt.input, got, err)
		}
	}
}

func TestToolsRegistry(t *testing.T) {
	expected := []string{"graypane", "pointsyeah", "awardtool", "awardhacker", "roame"}
	tools := Tools()
	if len(tools) != len(expected) {
		t.Fatalf("Tools() returned %d tools, expected %d", len(tools), len(expected))
	}
	for i, tool := range tools {
		if tool.ID != expected[i] {
			t.Errorf("tool %d = %s, expected %s", i, tool.ID, expected[i])
		}
		if tool.Name == "" || tool.Description == "" {
			t.Errorf("tool %s is missing display text", tool.ID)
		}
	}

	b := newTestBuilder()
	p := DefaultSearchParams()
	links := b.Links(p)
	for i, link := range links {
		if link.ID != expected[i] {
			t.Errorf("link %d = %s, expected %s", i, link.ID, expected[i])
		}
		single, err := b.Link(link.ID, p)
		if err != nil {
			t.Fatalf("Link(%s) error = %v", link.ID, err)
		}
		if single.URL != link.URL {
			t.Errorf("Link(%s) = %s, expected %s", link.ID, single.URL, link.URL)
		}
	}
	if _, err := b.Link("kayak", p); err == nil {
		t.Errorf("Link(kayak) expected error")
	}
}
