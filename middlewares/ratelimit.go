package middlewares

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// RateLimit returns middleware that rejects requests with 429 while limiter has no tokens.
// A nil limiter disables limiting.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter(limiter))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// NewLimiter builds a limiter allowing perMinute requests with the given burst.
// perMinute <= 0 returns nil, which RateLimit treats as unlimited.
func NewLimiter(perMinute float64, burst int) *rate.Limiter {
	if perMinute <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perMinute/60), burst)
}

// retryAfter returns whole seconds until the next token, at least 1.
func retryAfter(limiter *rate.Limiter) string {
	limit := limiter.Limit()
	if limit <= 0 || limit == rate.Inf {
		return "1"
	}
	wait := time.Duration(float64(time.Second) / float64(limit))
	return strconv.Itoa(int(math.Max(1, math.Ceil(wait.Seconds()))))
}
