package observed

import (
	"context"
	"testing"

	"tripBooker/internal/catalog"
	"tripBooker/internal/lib/logger/handlers/slogdiscard"
	"tripBooker/internal/lib/metrics"
	"tripBooker/internal/models"
	"tripBooker/internal/storage"
	"tripBooker/internal/storage/memory"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRecordsOutcomes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := metrics.New(prometheus.NewRegistry())
	l := New(memory.New(slogdiscard.NewDiscardLogger(), catalog.Default()), m)

	for i := 0; i < models.TotalVans; i++ {
		_, err := l.CreateBooking(ctx, models.NewBooking{TripID: 2, Date: "2024-07-01"})
		require.NoError(t, err)
	}

	_, err := l.CreateBooking(ctx, models.NewBooking{TripID: 2, Date: "2024-07-01"})
	require.ErrorIs(t, err, storage.ErrNoVansAvailable)

	_, err = l.CreateBooking(ctx, models.NewBooking{TripID: 9, Date: "2024-07-01"})
	require.ErrorIs(t, err, storage.ErrTripNotFound)

	_, err = l.DeleteBooking(ctx, "booking-1")
	require.NoError(t, err)

	_, err = l.DeleteBooking(ctx, "booking-1")
	require.ErrorIs(t, err, storage.ErrBookingNotFound)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.BookingsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingRejections.WithLabelValues(metrics.ReasonNoVans)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingRejections.WithLabelValues(metrics.ReasonTripNotFound)))

	bookings, err := l.GetAllBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, models.TotalVans-1)
}
