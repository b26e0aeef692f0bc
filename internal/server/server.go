// Package server exposes the partner table, the award-search links and the
// airport directory over a JSON API, plus the embedded dashboard page.
package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/iwvelando/mr-compare/internal/airport"
	"github.com/iwvelando/mr-compare/internal/awardsearch"
	"github.com/iwvelando/mr-compare/internal/config"
	"github.com/iwvelando/mr-compare/internal/observability"
	"github.com/iwvelando/mr-compare/internal/partner"
)

//go:embed static/*
var staticFiles embed.FS

// Options wires the handler to its collaborators. Nil fields fall back to
// defaults; a nil Registry leaves /metrics unmounted.
type Options struct {
	Logger    *zap.Logger
	Config    *Config
	App       *config.Configuration
	Directory *airport.Directory
	Registry  *prometheus.Registry
	Clock     awardsearch.Clock
	Version   string
}

type handler struct {
	logger      *zap.Logger
	app         *config.Configuration
	directory   *airport.Directory
	partners    []partner.Partner
	clock       awardsearch.Clock
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the dashboard and API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}

	app := opts.App
	if app == nil {
		app = config.Defaults()
	}

	directory := opts.Directory
	if directory == nil {
		directory = airport.NewDirectory(app.Airports.File, logger,
			airport.WithLoadObserver(observability.ObserveAirportLoad))
	}

	clock := opts.Clock
	if clock == nil {
		clock = awardsearch.SystemClock{}
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		app:         app,
		directory:   directory,
		partners:    partner.All(),
		clock:       clock,
		maxBodySize: cfg.BodySizeBytes(),
		version:     trimmedVersion,
	}
	if h.maxBodySize <= 0 {
		h.maxBodySize = DefaultConfig().BodySizeBytes()
	}

	var limiter *rate.Limiter
	if cfg.RateLimit.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	if cfg.Timeout() > 0 {
		r.Use(Timeout(cfg.Timeout()))
	}
	r.Use(Metrics)
	r.Use(AccessLog(logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Registry != nil {
		r.Handle("/metrics", observability.MetricsHandler(opts.Registry))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(RateLimit(limiter))
		r.Get("/version", h.handleVersion)
		r.Get("/config", h.handleConfig)
		r.Get("/partners", h.handlePartners)
		r.Get("/partners/{id}", h.handlePartner)
		r.Post("/search-links", h.handleSearchLinks)
		r.Post("/search-links/{tool}", h.handleSearchLink)
		r.Get("/airports", h.handleAirports)
		r.Get("/airports/resolve", h.handleResolveAirport)
	})

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	r.Get("/", fileServer.ServeHTTP)
	r.Get("/static/*", http.StripPrefix("/static/", fileServer).ServeHTTP)

	return r
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
		zap.String("requestId", chimw.GetReqID(r.Context())),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
	} else {
		h.logger.Debug("request rejected", fields...)
	}
	writeError(w, status, msg)
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
