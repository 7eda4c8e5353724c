package getAllBookings

import (
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"tripBooker/internal/lib/api/response"
	"tripBooker/internal/lib/logger/sl"
	"tripBooker/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsGetter
type BookingsGetter interface {
	GetAllBookings(ctx context.Context) ([]models.Booking, error)
}

func New(log *slog.Logger, bookingsGetter BookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getAllBookings.New"

		log := log.With(slog.String("op", op))

		bookings, err := bookingsGetter.GetAllBookings(r.Context())
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		if bookings == nil {
			bookings = []models.Booking{}
		}

		log.Info("bookings retrieved successfully", slog.Int("count", len(bookings)))

		render.JSON(w, r, bookings)
	}
}
