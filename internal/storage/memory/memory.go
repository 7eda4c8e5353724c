// Package memory implements the booking ledger in process memory.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tripBooker/internal/models"
	"tripBooker/internal/storage"
)

type Storage struct {
	log   *slog.Logger
	trips storage.TripFinder
	now   func() time.Time

	mu       sync.RWMutex
	bookings []models.Booking
	counter  int
}

func New(log *slog.Logger, trips storage.TripFinder) *Storage {
	return &Storage{
		log:     log.With(slog.String("component", "storage/memory")),
		trips:   trips,
		now:     time.Now,
		counter: 1,
	}
}

func (s *Storage) CheckAvailability(_ context.Context, date models.Date) (models.Availability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.NewAvailability(s.countForDate(date)), nil
}

// CreateBooking commits a booking if the trip exists and the date still has a
// free van. The capacity check and the append share one critical section.
func (s *Storage) CreateBooking(_ context.Context, nb models.NewBooking) (models.Booking, error) {
	const op = "storage.memory.CreateBooking"

	trip, ok := s.trips.Trip(nb.TripID)
	if !ok {
		return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrTripNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.countForDate(nb.Date) >= models.TotalVans {
		return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrNoVansAvailable)
	}

	booking := models.Booking{
		ID:          fmt.Sprintf("booking-%d", s.counter),
		TripID:      nb.TripID,
		TripName:    trip.Title,
		UserName:    nb.UserName,
		UserEmail:   nb.UserEmail,
		Date:        nb.Date,
		Price:       trip.Price,
		Status:      models.StatusConfirmed,
		BookingDate: models.FormatBookingDate(s.now()),
	}

	s.counter++
	s.bookings = append(s.bookings, booking)

	s.log.Debug("booking stored", slog.Any("bookings", s.bookings))

	return booking, nil
}

func (s *Storage) GetAllBookings(_ context.Context) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)

	return out, nil
}

func (s *Storage) GetBooking(_ context.Context, id string) (models.Booking, error) {
	const op = "storage.memory.GetBooking"

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
	}

	return s.bookings[i], nil
}

func (s *Storage) UpdateBookingStatus(_ context.Context, id, status string) (models.Booking, error) {
	const op = "storage.memory.UpdateBookingStatus"

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
	}

	s.bookings[i].Status = status

	return s.bookings[i], nil
}

func (s *Storage) DeleteBooking(_ context.Context, id string) (models.Booking, error) {
	const op = "storage.memory.DeleteBooking"

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
	}

	deleted := s.bookings[i]
	s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)

	return deleted, nil
}

// countForDate must be called with mu held.
func (s *Storage) countForDate(date models.Date) int {
	n := 0
	for _, b := range s.bookings {
		if b.Date == date {
			n++
		}
	}

	return n
}

// indexOf must be called with mu held.
func (s *Storage) indexOf(id string) int {
	for i, b := range s.bookings {
		if b.ID == id {
			return i
		}
	}

	return -1
}
