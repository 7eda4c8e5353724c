package createBooking

import (
	"context"
	"errors"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"io"
	"log/slog"
	"net/http"
	"tripBooker/internal/lib/api/response"
	"tripBooker/internal/lib/api/tripid"
	"tripBooker/internal/lib/logger/sl"
	"tripBooker/internal/models"
	"tripBooker/internal/storage"
)

const (
	msgCreated      = "Booking created successfully"
	msgTripNotFound = "Trip not found"
	msgNoVans       = "No vans available for the selected date. Please choose another date."
	msgCreateFailed = "failed to create booking"
	msgDecodeFailed = "failed to decode request"
)

type Request struct {
	TripID    tripid.ID   `json:"tripId"`
	UserName  string      `json:"userName" validate:"required"`
	UserEmail string      `json:"userEmail" validate:"required,email"`
	Date      models.Date `json:"date" validate:"required,datetime=2006-01-02"`
}

type Response struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(ctx context.Context, nb models.NewBooking) (models.Booking, error)
}

// New handles POST /api/bookings. With strict set, the request body is
// validated before it reaches the ledger.
func New(log *slog.Logger, creator BookingCreator, strict bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(msgDecodeFailed))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

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

		if !req.TripID.Valid {
			log.Info("trip id is not a number")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error(msgTripNotFound))
			return
		}

		booking, err := creator.CreateBooking(r.Context(), models.NewBooking{
			TripID:    req.TripID.Value,
			UserName:  req.UserName,
			UserEmail: req.UserEmail,
			Date:      req.Date,
		})
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrTripNotFound):
				log.Info("trip not found", slog.Int("trip_id", req.TripID.Value))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(msgTripNotFound))
			case errors.Is(err, storage.ErrNoVansAvailable):
				log.Info("no vans available", slog.String("date", string(req.Date)))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(msgNoVans))
			default:
				log.Error("failed to create booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(msgCreateFailed))
			}
			return
		}

		log.Info("booking created", slog.String("id", booking.ID))

		responseOK(w, r, booking)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking models.Booking) {
	render.JSON(w, r, Response{
		Response: response.OK(msgCreated),
		Booking:  &booking,
	})
}
