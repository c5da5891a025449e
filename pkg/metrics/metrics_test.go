package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordBookingDecision(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "room-booking")

	m.RecordBookingDecision("create", "rejected", "conflict")
	m.RecordBookingDecision("create", "rejected", "conflict")
	m.RecordBookingDecision("create", "accepted", "")

	assert.Equal(t, 2.0, testutil.ToFloat64(
		m.BookingDecisions.WithLabelValues("room-booking", "create", "rejected", "conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.BookingDecisions.WithLabelValues("room-booking", "create", "accepted", "")))
	assert.Equal(t, "room-booking", m.Service())
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordBookingDecision("delete", "accepted", "")
	})
	assert.Empty(t, m.Service())
}
