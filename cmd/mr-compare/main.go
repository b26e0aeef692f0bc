package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/mr-compare/internal/airport"
	"github.com/iwvelando/mr-compare/internal/awardsearch"
	"github.com/iwvelando/mr-compare/internal/config"
	"github.com/iwvelando/mr-compare/internal/partner"
	"github.com/iwvelando/mr-compare/internal/report"
	"github.com/iwvelando/mr-compare/pkg/constants"
	"github.com/iwvelando/mr-compare/pkg/output"
	"github.com/iwvelando/mr-compare/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json, xlsx")
	outputFileFlag := flag.String("output-file", "", "xlsx output file override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	balanceFlag := flag.String("balance", "", "MR point balance override, e.g. 1,100,000")
	categoryFlag := flag.String("category", "", "partner filter override: all, flight, hotel")
	sortFlag := flag.String("sort", "", "sort key override: miles, cash-value")
	sortDirFlag := flag.String("sort-dir", "", "sort direction override: asc, desc")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	// Initialize logging based on config and CLI override
	logger, err := config.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI overrides take precedence over the config file
	if *balanceFlag != "" {
		conf.Balance = *balanceFlag
	}
	if *categoryFlag != "" {
		conf.Table.Category = *categoryFlag
	}
	if *sortFlag != "" {
		conf.Table.SortBy = *sortFlag
	}
	if *sortDirFlag != "" {
		conf.Table.SortDir = *sortDirFlag
	}

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	outputFile := conf.Output.File
	if *outputFileFlag != "" {
		outputFile = *outputFileFlag
	}
	if outputFile == "" {
		outputFile = constants.DefaultXLSXFile
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	partners := partner.All()
	if err := partner.Validate(partners); err != nil {
		logger.Fatal("partner dataset is invalid",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	directory := airport.NewDirectory(conf.Airports.File, logger)
	builder := awardsearch.NewBuilder(
		awardsearch.WithResolver(directory.Resolver(context.Background())),
		awardsearch.WithGrayPaneBase(conf.Tools.GrayPaneBase),
	)

	results := report.Build(partners, builder, report.Request{
		Balance: conf.BalanceValue(),
		Query:   conf.TableQuery(),
		Search:  conf.SearchParams(),
	})
	logger.Debug("built report",
		zap.String("op", "main"),
		zap.Int64("balance", results.Balance),
		zap.Int("partners", len(results.Partners)),
		zap.Int("aboveGift", results.AboveGiftCount()),
	)

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		err = output.PrettyFormat(os.Stdout, results)
	case constants.OutputFormatCSV:
		err = output.CsvFormat(os.Stdout, results)
	case constants.OutputFormatJSON:
		err = output.JSONFormat(os.Stdout, results)
	case constants.OutputFormatXLSX:
		err = output.XLSXFormat(outputFile, results)
		if err == nil {
			logger.Info("wrote workbook",
				zap.String("op", "main"),
				zap.String("file", outputFile),
			)
		}
	}
	if err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.String("format", outputFormat),
			zap.Error(err),
		)
	}
}
