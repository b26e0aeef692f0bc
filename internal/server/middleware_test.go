package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAccessLogRemoteAddress(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{"Direct connection", nil, "192.0.2.1"},
		{"Forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "203.0.113.7"},
		{"Real IP header", map[string]string{"X-Real-IP": "198.51.100.4"}, "198.51.100.4"},
		{"Real IP wins over forwarded", map[string]string{
			"X-Real-IP":       "198.51.100.4",
			"X-Forwarded-For": "203.0.113.7",
		}, "198.51.100.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			r := chi.NewRouter()
			r.Use(chimw.RealIP)
			r.Use(AccessLog(zap.New(core)))
			r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "192.0.2.1:4321"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			entries := logs.FilterMessage("http_request").All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, tt.expected, fields["remote"])
			assert.Equal(t, int64(http.StatusTeapot), fields["status"])
			assert.Equal(t, "/ping", fields["route"])
		})
	}
}

func TestAccessLogDefaultStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := AccessLog(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/quiet", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
	assert.Equal(t, "/quiet", entries[0].ContextMap()["route"])
}
