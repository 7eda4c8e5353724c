package checkAvailability

import (
	"context"
	"errors"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"io"
	"log/slog"
	"net/http"
	"tripBooker/internal/lib/api/response"
	"tripBooker/internal/lib/logger/sl"
	"tripBooker/internal/models"
)

type Request struct {
	Date models.Date `json:"date" validate:"required,datetime=2006-01-02"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AvailabilityChecker
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, date models.Date) (models.Availability, error)
}

func New(log *slog.Logger, checker AvailabilityChecker, strict bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.checkAvailability.New"

		log := log.With(slog.String("op", op))

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

		availability, err := checker.CheckAvailability(r.Context(), req.Date)
		if err != nil {
			log.Error("failed to check availability", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to check availability"))
			return
		}

		log.Debug("availability checked",
			slog.String("date", string(req.Date)),
			slog.Int("booked_vans", availability.BookedVans),
		)

		render.JSON(w, r, availability)
	}
}
