package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New(reg)

	m.BookingsCreated.Inc()
	m.BookingRejections.WithLabelValues(ReasonNoVans).Inc()
	m.RequestsTotal.WithLabelValues("/api/trips", "200", "GET").Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}

	assert.Contains(t, names, "tripbooker_bookings_created_total")
	assert.Contains(t, names, "tripbooker_booking_rejections_total")
	assert.Contains(t, names, "tripbooker_http_requests_total")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingRejections.WithLabelValues(ReasonNoVans)))
}

func TestNewPanicsOnDuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
