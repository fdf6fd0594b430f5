package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_BusinessCounters(t *testing.T) {
	m := NewWithRegisterer("hotel-test", prometheus.NewRegistry())

	m.ObserveReservationCreated("block", 3)
	m.ObserveBlockQuote(true)
	m.ObserveBlockQuote(false)
	m.ObserveBlockQuote(true)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.ReservationsCreated.WithLabelValues("block")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BlockQuotesTotal.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BlockQuotesTotal.WithLabelValues("false")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveReservationCreated("single", 1)
		m.ObserveBlockQuote(true)
		m.ObserveAvailabilitySearch("ok")
		m.ObserveReport("occupancy", "pdf")
	})
}
