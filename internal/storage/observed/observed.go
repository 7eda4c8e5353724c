// Package observed wraps a ledger and records booking outcomes in Prometheus.
package observed

import (
	"context"
	"errors"

	"tripBooker/internal/lib/metrics"
	"tripBooker/internal/models"
	"tripBooker/internal/storage"
)

type Ledger struct {
	storage.Ledger
	m *metrics.Metrics
}

func New(ledger storage.Ledger, m *metrics.Metrics) *Ledger {
	return &Ledger{Ledger: ledger, m: m}
}

func (l *Ledger) CreateBooking(ctx context.Context, nb models.NewBooking) (models.Booking, error) {
	booking, err := l.Ledger.CreateBooking(ctx, nb)

	switch {
	case err == nil:
		l.m.BookingsCreated.Inc()
	case errors.Is(err, storage.ErrTripNotFound):
		l.m.BookingRejections.WithLabelValues(metrics.ReasonTripNotFound).Inc()
	case errors.Is(err, storage.ErrNoVansAvailable):
		l.m.BookingRejections.WithLabelValues(metrics.ReasonNoVans).Inc()
	}

	return booking, err
}

func (l *Ledger) DeleteBooking(ctx context.Context, id string) (models.Booking, error) {
	booking, err := l.Ledger.DeleteBooking(ctx, id)
	if err == nil {
		l.m.BookingsDeleted.Inc()
	}

	return booking, err
}
