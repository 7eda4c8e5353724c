package models

import "time"

const (
	StatusConfirmed = "confirmed"

	// BookingDateLayout renders timestamps in UTC with millisecond precision.
	BookingDateLayout = "2006-01-02T15:04:05.000Z"
)

type Booking struct {
	ID          string `json:"id"`
	TripID      int    `json:"tripId"`
	TripName    string `json:"tripName"`
	UserName    string `json:"userName"`
	UserEmail   string `json:"userEmail"`
	Date        Date   `json:"date"`
	Price       int    `json:"price"`
	Status      string `json:"status"`
	BookingDate string `json:"bookingDate"`
}

// NewBooking is the caller-supplied part of a booking.
type NewBooking struct {
	TripID    int
	UserName  string
	UserEmail string
	Date      Date
}

func FormatBookingDate(t time.Time) string {
	return t.UTC().Format(BookingDateLayout)
}
