package getBooking

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"tripBooker/internal/lib/api/response"
	"tripBooker/internal/lib/logger/sl"
	"tripBooker/internal/models"
	"tripBooker/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGetter
type BookingGetter interface {
	GetBooking(ctx context.Context, id string) (models.Booking, error)
}

func New(log *slog.Logger, getter BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log := log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("booking_id", id))

		booking, err := getter.GetBooking(r.Context(), id)
		if errors.Is(err, storage.ErrBookingNotFound) {
			log.Info("booking not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Booking not found"))
			return
		}
		if err != nil {
			log.Error("failed to get booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booking"))
			return
		}

		render.JSON(w, r, booking)
	}
}
