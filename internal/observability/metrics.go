// Package observability holds the prometheus collectors shared by the
// server and the link builders.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mrcompare"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	LinksBuilt = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "search_links_built_total", Help: "Award search links built."},
		[]string{"tool"},
	)
	RateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limited_total", Help: "Requests rejected by the rate limiter."},
		[]string{"route"},
	)
	AirportLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "airport_list_loads_total", Help: "Full airport list load attempts."},
		[]string{"result"}, // result: ok|error
	)
)

// InitRegistry returns a registry with every collector of this package plus
// the Go runtime and process collectors.
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, LinksBuilt, RateLimited, AirportLoads)
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveLink(tool string) {
	LinksBuilt.WithLabelValues(tool).Inc()
}

func ObserveRateLimited(route string) {
	RateLimited.WithLabelValues(route).Inc()
}

func ObserveAirportLoad(err error) {
	if err != nil {
		AirportLoads.WithLabelValues("error").Inc()
		return
	}
	AirportLoads.WithLabelValues("ok").Inc()
}
