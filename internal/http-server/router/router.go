package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"log/slog"
	"net/http"
	"tripBooker/internal/http-server/handlers/booking/checkAvailability"
	"tripBooker/internal/http-server/handlers/booking/createBooking"
	"tripBooker/internal/http-server/handlers/booking/deleteBooking"
	"tripBooker/internal/http-server/handlers/booking/getAllBookings"
	"tripBooker/internal/http-server/handlers/booking/getBooking"
	"tripBooker/internal/http-server/handlers/booking/updateBooking"
	"tripBooker/internal/http-server/handlers/trip/getAllTrips"
	"tripBooker/internal/http-server/middleware/mwlogger"
	"tripBooker/internal/http-server/middleware/mwmetrics"
	"tripBooker/internal/http-server/middleware/mwratelimit"
	"tripBooker/internal/http-server/middleware/mwtracing"
	"tripBooker/internal/lib/metrics"
	"tripBooker/internal/storage"
)

type Options struct {
	// Strict enables request body validation on the booking endpoints.
	Strict bool
	// Limiter is nil when rate limiting is disabled.
	Limiter *mwratelimit.Limiter
	Metrics *metrics.Metrics
	// Gatherer backs /metrics. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

func New(log *slog.Logger, trips getAllTrips.TripsGetter, ledger storage.Ledger, opts Options) *chi.Mux {
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.TracerProvider == nil {
		opts.TracerProvider = otel.GetTracerProvider()
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
	router.Use(mwtracing.New(opts.TracerProvider))
	if opts.Metrics != nil {
		router.Use(mwmetrics.New(opts.Metrics))
	}
	if opts.Limiter != nil {
		router.Use(mwratelimit.New(log, opts.Limiter, opts.Metrics))
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))

	router.Route("/api", func(r chi.Router) {
		r.Get("/trips", getAllTrips.New(log, trips))
		r.Post("/check-availability", checkAvailability.New(log, ledger, opts.Strict))

		r.Post("/bookings", createBooking.New(log, ledger, opts.Strict))
		r.Get("/bookings", getAllBookings.New(log, ledger))
		r.Get("/bookings/{id}", getBooking.New(log, ledger))
		r.Put("/bookings/{id}", updateBooking.New(log, ledger, opts.Strict))
		r.Delete("/bookings/{id}", deleteBooking.New(log, ledger))
	})

	return router
}
