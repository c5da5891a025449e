package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/RoomBookingService/pkg/metrics"
)

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "room-booking")

	router := mux.NewRouter()
	router.Use(Metrics(m))
	router.HandleFunc("/api/v1/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodDelete)

	for _, id := range []string{"1", "2", "3"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/"+id, nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues("room-booking", http.MethodDelete, "/api/v1/bookings/{id}", "404")))
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	const incoming = "5b0c3f1e-8f6a-4c53-9a8e-7f1f0a3b2c11"
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set(RequestIDHeader, incoming)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, incoming, seen)
}

func TestRecovery(t *testing.T) {
	h := Recovery(nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
