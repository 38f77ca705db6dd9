package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/kinetic-booking/internal/api/middleware"
	"github.com/m04kA/kinetic-booking/pkg/metrics"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func named(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(name))
	}
}

func newLimiter(t *testing.T, perMinute, burst int) *middleware.RateLimiter {
	t.Helper()

	limiter, err := middleware.NewRateLimiter(perMinute, burst, nil)
	require.NoError(t, err)
	return limiter
}

func testHandlers() Handlers {
	return Handlers{
		GetCalendar:      named("calendar"),
		GetSlots:         named("slots"),
		CreateBooking:    named("bookings"),
		SendConfirmation: named("send-confirmation"),
	}
}

func TestNewRouter_Routes(t *testing.T) {
	r := NewRouter(testHandlers(), RouterConfig{Logger: nopLogger{}})

	tests := []struct {
		method, path string
		status       int
		body         string
	}{
		{http.MethodGet, "/api/v1/calendar", http.StatusOK, "calendar"},
		{http.MethodGet, "/api/v1/slots", http.StatusOK, "slots"},
		{http.MethodPost, "/api/v1/bookings", http.StatusOK, "bookings"},
		{http.MethodPost, "/api/send-confirmation", http.StatusOK, "send-confirmation"},
		{http.MethodGet, "/liveness", http.StatusNoContent, ""},
		{http.MethodGet, "/api/v1/bookings", http.StatusMethodNotAllowed, ""},
		{http.MethodGet, "/metrics", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

		assert.Equal(t, tt.status, rec.Code, "%s %s", tt.method, tt.path)
		if tt.body != "" {
			assert.Equal(t, tt.body, rec.Body.String())
		}
		if tt.status < http.StatusBadRequest {
			assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))
		}
	}
}

func TestNewRouter_MetricsEndpoint(t *testing.T) {
	m := metrics.NewWithRegistry("router_test", prometheus.NewRegistry())
	r := NewRouter(testHandlers(), RouterConfig{Metrics: m, MetricsPath: "/metrics", Logger: nopLogger{}})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewRouter_RateLimitOnlyOnBookings(t *testing.T) {
	r := NewRouter(testHandlers(), RouterConfig{
		RateLimiter: newLimiter(t, 1, 1),
		Logger:      nopLogger{},
	})

	do := func(method, path string) int {
		req := httptest.NewRequest(method, path, nil)
		req.RemoteAddr = "10.0.0.9:4000"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do(http.MethodPost, "/api/v1/bookings"))
	assert.Equal(t, http.StatusTooManyRequests, do(http.MethodPost, "/api/v1/bookings"))
	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/v1/calendar"))
	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/v1/calendar"))
}

func TestNewRouter_ConfirmationsFromOneCallerNotLimited(t *testing.T) {
	r := NewRouter(testHandlers(), RouterConfig{
		RateLimiter: newLimiter(t, 20, 5),
		Logger:      nopLogger{},
	})

	for i := 0; i < 8; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/send-confirmation", nil)
		req.RemoteAddr = "127.0.0.1:51000"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "confirmation #%d", i+1)
	}
}
