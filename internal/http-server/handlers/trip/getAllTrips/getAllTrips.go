package getAllTrips

import (
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"tripBooker/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TripsGetter
type TripsGetter interface {
	GetAllTrips() []models.Trip
}

func New(log *slog.Logger, tripsGetter TripsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.trip.getAllTrips.New"

		log := log.With(slog.String("op", op))

		trips := tripsGetter.GetAllTrips()
		if trips == nil {
			trips = []models.Trip{}
		}

		log.Debug("trips retrieved", slog.Int("count", len(trips)))

		render.JSON(w, r, trips)
	}
}
