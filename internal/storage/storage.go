package storage

import (
	"context"
	"errors"

	"tripBooker/internal/models"
)

var (
	ErrTripNotFound    = errors.New("trip not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrNoVansAvailable = errors.New("no vans available")
)

// TripFinder resolves trip ids against the trip catalog.
type TripFinder interface {
	Trip(id int) (models.Trip, bool)
}

// Ledger is implemented by every booking backend.
type Ledger interface {
	CheckAvailability(ctx context.Context, date models.Date) (models.Availability, error)
	CreateBooking(ctx context.Context, nb models.NewBooking) (models.Booking, error)
	GetAllBookings(ctx context.Context) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id, status string) (models.Booking, error)
	DeleteBooking(ctx context.Context, id string) (models.Booking, error)
}
