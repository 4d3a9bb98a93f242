// Package middlewares provides net/http middleware for the trigger service router.
//
// All middlewares have the func(http.Handler) http.Handler shape and plug into chi:
//
//	r := chi.NewRouter()
//	r.Use(
//	    middlewares.RequestID(),
//	    middlewares.Recover(log),
//	    middlewares.RequestLogger(log),
//	)
//	r.With(middlewares.RateLimit(rate.NewLimiter(1, 3))).Post("/__scheduled", d.Handler())
//
// # Request ID
//
// RequestID reuses an upstream X-Request-ID (or X-Correlation-ID) header or
// generates a UUID, stores it in the request context and echoes it back.
// RequestIDExtractor adds it to every log record.
//
// # Recover
//
// Recover turns a handler panic into a 500 and logs the panic value and stack.
//
// # Rate limiting
//
// RateLimit answers 429 with a Retry-After header once the token bucket is empty.
// The app puts it in front of the manual trigger route.
package middlewares
