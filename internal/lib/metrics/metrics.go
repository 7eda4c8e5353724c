package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tripbooker"

// Rejection reasons for BookingRejections.
const (
	ReasonTripNotFound = "trip_not_found"
	ReasonNoVans       = "no_vans"
)

type Metrics struct {
	RequestsTotal     *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	BookingsCreated   prometheus.Counter
	BookingsDeleted   prometheus.Counter
	BookingRejections *prometheus.CounterVec
	RateLimitExceeded prometheus.Counter
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer to
// expose them on the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"route", "code", "method"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		BookingsCreated: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_created_total",
				Help:      "Total number of bookings committed to the ledger",
			},
		),
		BookingsDeleted: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_deleted_total",
				Help:      "Total number of bookings removed from the ledger",
			},
		),
		BookingRejections: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "booking_rejections_total",
				Help:      "Booking attempts refused by the ledger",
			},
			[]string{"reason"},
		),
		RateLimitExceeded: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limit_exceeded_total",
				Help:      "Requests refused by the rate limiter",
			},
		),
	}
}
