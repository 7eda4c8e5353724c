package mwmetrics

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"net/http"
	"strconv"
	"time"
	"tripBooker/internal/lib/metrics"
)

// unmatched labels requests that no route matched, keeping label cardinality bounded.
const unmatched = "unmatched"

func New(m *metrics.Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()
			next.ServeHTTP(ww, r)

			route := unmatched
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			m.RequestsTotal.WithLabelValues(route, strconv.Itoa(status), r.Method).Inc()
			m.RequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
		}

		return http.HandlerFunc(fn)
	}
}
