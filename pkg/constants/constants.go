// Package constants provides shared constants for the mr-compare application.
package constants

// DateLayout is the ISO calendar date format used by every search tool and by
// the configuration file.
const DateLayout = "2006-01-02"

// Valuation constants
const (
	// GiftRate is the KRW obtained per point when cashing out through gift
	// cards (1,100,000 points = 7,700,000 KRW). Every partner valuation is
	// compared against it.
	GiftRate = 7.0

	// RatioTolerance is how close a conversion ratio must be to 1 to be shown as 1:1.
	RatioTolerance = 0.01

	// DecimalPrecision is the precision for rounding to 2 decimal places
	DecimalPrecision = 100

	// DefaultBalance is the balance shown when none is configured.
	DefaultBalance = 1_100_000
)

// Award search defaults
const (
	// DefaultDepartDate is used whenever a departure date is missing or invalid.
	DefaultDepartDate = "2026-03-19"

	// DefaultAirport is the IATA code used when free text cannot be resolved.
	DefaultAirport = "GMP"

	// DefaultDestination is the arrival airport preselected in the search form.
	DefaultDestination = "HND"

	// SearchWindowDays is the longest window GrayPane accepts, and the offset
	// used to derive a missing end date.
	SearchWindowDays = 30

	// MaxStopsCeiling caps the stop count sent to Roame.
	MaxStopsCeiling = 3
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable JSON output format
	OutputFormatJSON = "json"

	// OutputFormatXLSX writes a spreadsheet to the configured output file
	OutputFormatXLSX = "xlsx"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultXLSXFile is written when xlsx output is requested without a file name
	DefaultXLSXFile = "mr-compare.xlsx"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum JSON request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultRequestTimeoutSeconds bounds every API request
	DefaultRequestTimeoutSeconds = 15

	// DefaultRateLimitRPS is the sustained request rate allowed per process
	DefaultRateLimitRPS = 20

	// DefaultRateLimitBurst is the burst allowed on top of DefaultRateLimitRPS
	DefaultRateLimitBurst = 40

	// DefaultAirportSearchLimit is the number of airports returned by a search
	DefaultAirportSearchLimit = 10
)
