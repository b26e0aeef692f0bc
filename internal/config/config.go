// Package config defines the data structures related to configuration and
// includes functions for loading and interpreting the config.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/iwvelando/mr-compare/internal/awardsearch"
	"github.com/iwvelando/mr-compare/internal/partner"
	"github.com/iwvelando/mr-compare/pkg/constants"
	"github.com/iwvelando/mr-compare/pkg/validation"
)

// Configuration holds all configuration for mr-compare.
type Configuration struct {
	// Balance is the raw point balance; anything but digits is ignored.
	Balance  string         `yaml:"balance"`
	Table    TableConfig    `yaml:"table"`
	Search   SearchConfig   `yaml:"search"`
	Airports AirportsConfig `yaml:"airports"`
	Tools    ToolsConfig    `yaml:"tools"`
	Map      MapConfig      `yaml:"map"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
}

// TableConfig selects and orders the partner table.
type TableConfig struct {
	Category string `yaml:"category"` // all, flight, hotel
	SortBy   string `yaml:"sortBy"`   // miles, cash-value or empty
	SortDir  string `yaml:"sortDir"`  // asc, desc
}

// SearchConfig is the itinerary used for the award-search links.
type SearchConfig struct {
	Origin      string `yaml:"origin"`
	Destination string `yaml:"destination"`
	DateFrom    string `yaml:"dateFrom"`
	DateTo      string `yaml:"dateTo"`
	RouteType   string `yaml:"routeType"`
	Cabin       string `yaml:"cabin"`
	Stops       int    `yaml:"stops"`
}

// AirportsConfig points at an optional full airport list.
type AirportsConfig struct {
	File string `yaml:"file"`
}

// ToolsConfig overrides search tool endpoints.
type ToolsConfig struct {
	GrayPaneBase string `yaml:"graypaneBase"`
}

// MapConfig carries the access token handed to the dashboard map.
type MapConfig struct {
	Token string `yaml:"token"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json, xlsx
	File   string `yaml:"file,omitempty"`   // xlsx target
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := awardsearch.DefaultSearchParams()
	v.SetDefault("balance", fmt.Sprint(constants.DefaultBalance))
	v.SetDefault("table.category", string(partner.FilterAll))
	v.SetDefault("table.sortBy", "")
	v.SetDefault("table.sortDir", string(partner.Descending))
	v.SetDefault("search.origin", defaults.Origin)
	v.SetDefault("search.destination", defaults.Destination)
	v.SetDefault("search.dateFrom", defaults.DateFrom)
	v.SetDefault("search.dateTo", defaults.DateTo)
	v.SetDefault("search.routeType", string(defaults.RouteType))
	v.SetDefault("search.cabin", string(defaults.Cabin))
	v.SetDefault("search.stops", defaults.Stops)
	v.SetDefault("airports.file", "")
	v.SetDefault("tools.graypaneBase", awardsearch.DefaultGrayPaneBase)
	v.SetDefault("map.token", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("output.file", constants.DefaultXLSXFile)
	return v
}

// loadEnvFiles loads .env files next to the config and in the working
// directory. Variables already set in the environment win. Missing files are
// skipped; a file that exists but does not parse is an error.
func loadEnvFiles(configPath string) error {
	paths := []string{".env"}
	if configPath != "" {
		if p := filepath.Join(filepath.Dir(configPath), ".env"); p != ".env" {
			paths = append([]string{p}, paths...)
		}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("error loading env file %s: %w", p, err)
		}
	}
	return nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables such as MAP_TOKEN or
// SEARCH_ORIGIN override file values.
func LoadConfiguration(configPath string) (*Configuration, error) {
	if err := loadEnvFiles(configPath); err != nil {
		return nil, err
	}

	v := newViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	return decode(v)
}

// Defaults returns the configuration used when no file is given.
func Defaults() *Configuration {
	conf, err := decode(newViper())
	if err != nil {
		// Defaults are static and always decode.
		panic(err)
	}
	return conf
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &configuration, nil
}

// BalanceValue parses the configured balance, yielding 0 when it holds no digits.
func (c *Configuration) BalanceValue() int64 {
	return partner.ParseBalance(c.Balance)
}

// TableQuery interprets the table settings. Unknown values fall back to
// showing every partner in dataset order, descending.
func (c *Configuration) TableQuery() partner.Query {
	category, _ := partner.ParseCategory(c.Table.Category)
	sortBy, _ := partner.ParseSortKey(c.Table.SortBy)
	dir, _ := partner.ParseDirection(c.Table.SortDir)
	return partner.Query{Category: category, SortBy: sortBy, Direction: dir}
}

// SearchParams interprets the search settings. Unknown route types fall back
// to one-way, unknown cabins to business and out-of-range stops to 0.
func (c *Configuration) SearchParams() awardsearch.SearchParams {
	route, err := awardsearch.ParseRouteType(c.Search.RouteType)
	if err != nil {
		route = awardsearch.OneWay
	}
	cabin, err := awardsearch.ParseCabin(c.Search.Cabin)
	if err != nil {
		cabin = awardsearch.Business
	}
	stops := c.Search.Stops
	if stops < 0 || stops > awardsearch.MaxStops {
		stops = 0
	}
	return awardsearch.SearchParams{
		Origin:      c.Search.Origin,
		Destination: c.Search.Destination,
		DateFrom:    c.Search.DateFrom,
		DateTo:      c.Search.DateTo,
		RouteType:   route,
		Cabin:       cabin,
		Stops:       stops,
	}
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if _, err := partner.ParseCategory(c.Table.Category); err != nil {
		warnings = append(warnings, fmt.Sprintf("%v - showing all partners", err))
	}
	if _, err := partner.ParseSortKey(c.Table.SortBy); err != nil {
		warnings = append(warnings, fmt.Sprintf("%v - keeping dataset order", err))
	}
	if _, err := partner.ParseDirection(c.Table.SortDir); err != nil {
		warnings = append(warnings, fmt.Sprintf("%v - sorting descending", err))
	}
	if _, err := awardsearch.ParseRouteType(c.Search.RouteType); err != nil {
		warnings = append(warnings, fmt.Sprintf("%v - searching one-way", err))
	}
	if _, err := awardsearch.ParseCabin(c.Search.Cabin); err != nil {
		warnings = append(warnings, fmt.Sprintf("%v - searching business", err))
	}
	if strings.TrimSpace(c.Balance) != "" && c.BalanceValue() == 0 && strings.Trim(c.Balance, "0, ") != "" {
		warnings = append(warnings, fmt.Sprintf("Balance '%s' could not be parsed - using 0", c.Balance))
	}

	validator := validation.ConfigValidator{
		Balance: c.BalanceValue(),
		Search: validation.SearchConfig{
			Origin:      c.Search.Origin,
			Destination: c.Search.Destination,
			DateFrom:    c.Search.DateFrom,
			DateTo:      c.Search.DateTo,
			Stops:       c.Search.Stops,
		},
	}
	return append(warnings, validator.ValidateAll()...)
}
