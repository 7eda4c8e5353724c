package mwratelimit

import (
	"github.com/go-chi/render"
	"golang.org/x/time/rate"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"tripBooker/internal/lib/api/response"
	"tripBooker/internal/lib/metrics"
)

// Limiter hands out one token bucket per client IP.
type Limiter struct {
	rps   rate.Limit
	burst int

	mu       sync.Mutex
	visitors map[string]*rate.Limiter
}

func NewLimiter(rps float64, burst int) *Limiter {
	return &Limiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		visitors: make(map[string]*rate.Limiter),
	}
}

func (l *Limiter) visitor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.visitors[ip]
	if !exists {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.visitors[ip] = limiter
	}

	return limiter
}

// Allow reports whether a request from ip may proceed now.
func (l *Limiter) Allow(ip string) bool {
	return l.visitor(ip).Allow()
}

func New(log *slog.Logger, l *Limiter, m *metrics.Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/ratelimit"),
		)

		log.Info("rate limit middleware enabled",
			slog.Float64("rps", float64(l.rps)),
			slog.Int("burst", l.burst),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if !l.Allow(ip) {
				log.Warn("rate limit exceeded", slog.String("ip", ip))
				if m != nil {
					m.RateLimitExceeded.Inc()
				}

				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("Too Many Requests"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

// clientIP drops the port from RemoteAddr. middleware.RealIP may already have
// replaced it with a bare address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
