package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/mr-compare/internal/airport"
	"github.com/iwvelando/mr-compare/internal/config"
	"github.com/iwvelando/mr-compare/internal/observability"
	"github.com/iwvelando/mr-compare/internal/partner"
	"github.com/iwvelando/mr-compare/internal/server"
	"github.com/iwvelando/mr-compare/pkg/constants"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	serverConfigLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	appConfigLocation := flag.String("app-config", constants.DefaultConfigFile, "path to application configuration file")
	address := flag.String("address", "", "listen address override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	serverConf, err := server.LoadConfig(*serverConfigLocation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *serverConfigLocation, err)
		os.Exit(1)
	}
	if *address != "" {
		serverConf.Address = *address
	}

	logger, err := config.NewLogger(serverConf.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// The application config is optional for the server; defaults apply.
	appConf := config.Defaults()
	if _, statErr := os.Stat(*appConfigLocation); statErr == nil {
		appConf, err = config.LoadConfiguration(*appConfigLocation)
		if err != nil {
			logger.Fatal("failed to load application configuration",
				zap.String("op", "main"),
				zap.String("file", *appConfigLocation),
				zap.Error(err),
			)
		}
	} else {
		logger.Info("application configuration not found, using defaults",
			zap.String("op", "main"),
			zap.String("file", *appConfigLocation),
		)
	}
	for _, warning := range appConf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if err := partner.Validate(partner.All()); err != nil {
		logger.Fatal("partner dataset is invalid",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	registry := observability.InitRegistry()
	directory := airport.NewDirectory(appConf.Airports.File, logger,
		airport.WithLoadObserver(observability.ObserveAirportLoad))

	handler := server.NewHandler(server.Options{
		Logger:    logger,
		Config:    serverConf,
		App:       appConf,
		Directory: directory,
		Registry:  registry,
		Version:   version,
	})

	srv := &http.Server{
		Addr:              serverConf.Address,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server",
			zap.String("op", "main"),
			zap.String("address", serverConf.Address),
			zap.String("version", version),
			zap.Int64("maxBodySize", serverConf.BodySizeBytes()),
			zap.Duration("requestTimeout", serverConf.Timeout()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	logger.Info("server stopped", zap.String("op", "main"))
}
