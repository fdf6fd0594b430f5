package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservations/pkg/metrics"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAuth(t *testing.T) {
	var seen int64
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "42", http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"not a number", "abc", http.StatusUnauthorized},
		{"negative", "-1", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set(UserIDHeader, tt.header)
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, r)
			assert.Equal(t, tt.want, w.Code)
		})
	}

	assert.Equal(t, int64(42), seen)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, 2)
	limiter.now = func() time.Time { return now }
	h := limiter.Middleware(http.HandlerFunc(okHandler))

	call := func(ip string) int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = ip + ":5555"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))

	// Другой клиент имеет собственный лимит
	assert.Equal(t, http.StatusOK, call("10.0.0.2"))

	// Через секунду появляется новый токен
	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.168.1.5:4000"
	assert.Equal(t, "192.168.1.5", clientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientIP(r))
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m))
	router.HandleFunc("/hotels/{hotelId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	for _, id := range []string{"1", "2"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/hotels/"+id, nil))
	}

	count := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/hotels/{hotelId}", "404"))
	require.Equal(t, 2.0, count)
}

func TestMetricsMiddleware_NilMetrics(t *testing.T) {
	h := MetricsMiddleware(nil)(http.HandlerFunc(okHandler))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
