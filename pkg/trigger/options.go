package trigger

import (
	"log/slog"
	"net/http"
	"time"
)

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Observer receives every settled Report. See pkg/metrics for the Prometheus one.
type Observer interface {
	ObserveReport(Report)
}

// config holds dispatcher configuration.
type config struct {
	client    Doer
	logger    *slog.Logger
	observer  Observer
	userAgent string
	endpoints []Endpoint
	timeout   time.Duration
}

// Option configures the dispatcher.
type Option func(*config)

// WithClient sets the HTTP client used for outbound calls.
// Defaults to a plain *http.Client with no timeout of its own.
func WithClient(c Doer) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.client = c
		}
	}
}

// WithEndpoints replaces the default endpoint list.
func WithEndpoints(endpoints ...Endpoint) Option {
	return func(cfg *config) {
		cfg.endpoints = append([]Endpoint(nil), endpoints...)
	}
}

// WithLogger sets the logger for dispatch outcomes.
// If not set, a noop logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithObserver registers an observer for completed dispatches.
func WithObserver(o Observer) Option {
	return func(cfg *config) {
		if o != nil {
			cfg.observer = o
		}
	}
}

// WithTimeout bounds a whole dispatch. Zero leaves the limit to the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(cfg *config) {
		if d >= 0 {
			cfg.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header on outbound requests.
func WithUserAgent(ua string) Option {
	return func(cfg *config) {
		cfg.userAgent = ua
	}
}
