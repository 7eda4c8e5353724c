package updateBooking

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"io"
	"log/slog"
	"net/http"
	"tripBooker/internal/lib/api/response"
	"tripBooker/internal/lib/logger/sl"
	"tripBooker/internal/models"
	"tripBooker/internal/storage"
)

// Request.Status is free text unless strict validation is enabled.
type Request struct {
	Status string `json:"status" validate:"required,oneof=confirmed pending cancelled completed"`
}

type Response struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	UpdateBookingStatus(ctx context.Context, id, status string) (models.Booking, error)
}

func New(log *slog.Logger, updater BookingUpdater, strict bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

		log := log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("booking_id", id))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if strict {
			if err = validator.New().Struct(req); err != nil {
				var validateErr validator.ValidationErrors
				errors.As(err, &validateErr)

				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		booking, err := updater.UpdateBookingStatus(r.Context(), id, req.Status)
		if errors.Is(err, storage.ErrBookingNotFound) {
			log.Info("booking not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Booking not found"))
			return
		}
		if err != nil {
			log.Error("failed to update booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update booking"))
			return
		}

		log.Info("booking status updated", slog.String("status", booking.Status))

		render.JSON(w, r, Response{
			Response: response.OK("Booking updated"),
			Booking:  &booking,
		})
	}
}
