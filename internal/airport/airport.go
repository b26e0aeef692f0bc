// Package airport resolves free-text airport input to IATA codes against a
// bundled airport list or a larger list loaded on demand.
package airport

import (
	"regexp"
	"strings"

	"github.com/iwvelando/mr-compare/pkg/constants"
)

// Record describes one airport.
type Record struct {
	IATA      string  `json:"iata"`
	ICAO      string  `json:"icao"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultCode is returned when input cannot be resolved any other way.
const DefaultCode = constants.DefaultAirport

var threeLetters = regexp.MustCompile(`^[A-Za-z]{3}$`)

// Bundled is the small airport list available without loading anything.
var Bundled = []Record{
	{IATA: "GMP", ICAO: "RKSS", Name: "Gimpo International Airport", City: "Seoul", Country: "South Korea", Latitude: 37.5583, Longitude: 126.7906},
	{IATA: "ICN", ICAO: "RKSI", Name: "Incheon International Airport", City: "Seoul", Country: "South Korea", Latitude: 37.4602, Longitude: 126.4407},
	{IATA: "HND", ICAO: "RJTT", Name: "Tokyo Haneda Airport", City: "Tokyo", Country: "Japan", Latitude: 35.5494, Longitude: 139.7798},
	{IATA: "NRT", ICAO: "RJAA", Name: "Narita International Airport", City: "Tokyo", Country: "Japan", Latitude: 35.7720, Longitude: 140.3929},
	{IATA: "KIX", ICAO: "RJBB", Name: "Kansai International Airport", City: "Osaka", Country: "Japan", Latitude: 34.4347, Longitude: 135.2441},
	{IATA: "LAX", ICAO: "KLAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States", Latitude: 33.9425, Longitude: -118.4081},
	{IATA: "JFK", ICAO: "KJFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "United States", Latitude: 40.6398, Longitude: -73.7787},
	{IATA: "LHR", ICAO: "EGLL", Name: "London Heathrow Airport", City: "London", Country: "United Kingdom", Latitude: 51.4700, Longitude: -0.4543},
	{IATA: "CDG", ICAO: "LFPG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France", Latitude: 49.0097, Longitude: 2.5478},
	{IATA: "SIN", ICAO: "WSSS", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore", Latitude: 1.3644, Longitude: 103.9915},
	{IATA: "HKG", ICAO: "VHHH", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong", Latitude: 22.3080, Longitude: 113.9185},
	{IATA: "BKK", ICAO: "VTBS", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand", Latitude: 13.6900, Longitude: 100.7501},
	{IATA: "DXB", ICAO: "OMDB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates", Latitude: 25.2532, Longitude: 55.3657},
	{IATA: "FRA", ICAO: "EDDF", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", Latitude: 50.0379, Longitude: 8.5622},
	{IATA: "AMS", ICAO: "EHAM", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands", Latitude: 52.3105, Longitude: 4.7683},
	{IATA: "SFO", ICAO: "KSFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "United States", Latitude: 37.6213, Longitude: -122.3790},
	{IATA: "ORD", ICAO: "KORD", Name: "O'Hare International Airport", City: "Chicago", Country: "United States", Latitude: 41.9742, Longitude: -87.9073},
	{IATA: "PVG", ICAO: "ZSPD", Name: "Shanghai Pudong International Airport", City: "Shanghai", Country: "China", Latitude: 31.1434, Longitude: 121.8052},
	{IATA: "PEK", ICAO: "ZBAA", Name: "Beijing Capital International Airport", City: "Beijing", Country: "China", Latitude: 40.0799, Longitude: 116.6031},
	{IATA: "SYD", ICAO: "YSSY", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia", Latitude: -33.9399, Longitude: 151.1753},
	{IATA: "MNL", ICAO: "RPLL", Name: "Ninoy Aquino International Airport", City: "Manila", Country: "Philippines", Latitude: 14.5086, Longitude: 121.0194},
	{IATA: "SGN", ICAO: "VVTS", Name: "Tan Son Nhat International Airport", City: "Ho Chi Minh City", Country: "Vietnam", Latitude: 10.8188, Longitude: 106.6519},
	{IATA: "HEL", ICAO: "EFHK", Name: "Helsinki Vantaa Airport", City: "Helsinki", Country: "Finland", Latitude: 60.3172, Longitude: 24.9633},
	{IATA: "DOH", ICAO: "OTHH", Name: "Hamad International Airport", City: "Doha", Country: "Qatar", Latitude: 25.2731, Longitude: 51.6080},
	{IATA: "AUH", ICAO: "OMAA", Name: "Abu Dhabi International Airport", City: "Abu Dhabi", Country: "United Arab Emirates", Latitude: 24.4330, Longitude: 54.6511},
	{IATA: "LGW", ICAO: "EGKK", Name: "London Gatwick Airport", City: "London", Country: "United Kingdom", Latitude: 51.1481, Longitude: -0.1903},
	{IATA: "MIA", ICAO: "KMIA", Name: "Miami International Airport", City: "Miami", Country: "United States", Latitude: 25.7959, Longitude: -80.2870},
	{IATA: "SEA", ICAO: "KSEA", Name: "Seattle–Tacoma International Airport", City: "Seattle", Country: "United States", Latitude: 47.4502, Longitude: -122.3088},
	{IATA: "YVR", ICAO: "CYVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "Canada", Latitude: 49.1967, Longitude: -123.1815},
	{IATA: "TPE", ICAO: "RCTP", Name: "Taiwan Taoyuan International Airport", City: "Taipei", Country: "Taiwan", Latitude: 25.0797, Longitude: 121.2342},
	{IATA: "KUL", ICAO: "WMKK", Name: "Kuala Lumpur International Airport", City: "Kuala Lumpur", Country: "Malaysia", Latitude: 2.7456, Longitude: 101.7099},
}

// FindByIATA returns the record whose code equals the trimmed, upper-cased input.
func FindByIATA(list []Record, code string) (Record, bool) {
	want := strings.ToUpper(strings.TrimSpace(code))
	if want == "" {
		return Record{}, false
	}
	for _, a := range list {
		if a.IATA == want {
			return a, true
		}
	}
	return Record{}, false
}

// Search returns up to limit records whose name, codes, city or country
// contain the query, case-insensitively, in list order.
func Search(list []Record, query string, limit int) []Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}
	var out []Record
	for _, a := range list {
		if a.matches(q) {
			out = append(out, a)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func (a Record) matches(q string) bool {
	return strings.Contains(strings.ToLower(a.Name), q) ||
		strings.Contains(strings.ToLower(a.IATA), q) ||
		(a.ICAO != "" && strings.Contains(strings.ToLower(a.ICAO), q)) ||
		strings.Contains(strings.ToLower(a.City), q) ||
		strings.Contains(strings.ToLower(a.Country), q)
}

// Resolver turns free text into an IATA code using a fixed airport list.
type Resolver struct {
	list []Record
}

// NewResolver returns a resolver over list, or over the bundled list when list is empty.
func NewResolver(list []Record) *Resolver {
	if len(list) == 0 {
		list = Bundled
	}
	return &Resolver{list: list}
}

// ResolveIATA always returns a three-letter code: an exact code match, else
// the first search match, else the input itself when it is three letters,
// else DefaultCode.
func (r *Resolver) ResolveIATA(text string) string {
	v := strings.TrimSpace(text)
	if a, ok := FindByIATA(r.list, v); ok {
		return a.IATA
	}
	if found := Search(r.list, v, 1); len(found) > 0 {
		return found[0].IATA
	}
	if threeLetters.MatchString(v) {
		return strings.ToUpper(v)
	}
	return DefaultCode
}
