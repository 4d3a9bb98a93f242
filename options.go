package crontrigger

import (
	"context"
	"log/slog"
	"time"

	"github.com/trraform/crontrigger/internal/config"
	"github.com/trraform/crontrigger/middlewares"
	"github.com/trraform/crontrigger/pkg/trigger"
)

// Option configures the application.
type Option func(*App)

// WithContext sets a custom base context for signal handling.
// Useful for testing or when integrating with existing context hierarchies.
// Defaults to context.Background() if not set.
func WithContext(ctx context.Context) Option {
	return func(a *App) {
		if ctx != nil {
			a.baseCtx = ctx
		}
	}
}

// WithLogger sets the application logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithAddress sets the HTTP server address.
// Defaults to ":8080".
func WithAddress(addr string) Option {
	return func(a *App) {
		if addr != "" {
			a.server.Addr = addr
		}
	}
}

// WithBaseURL sets the origin every endpoint path is resolved against.
func WithBaseURL(base string) Option {
	return func(a *App) {
		a.baseURL = base
	}
}

// WithEndpoints replaces the default endpoint set.
func WithEndpoints(endpoints ...trigger.Endpoint) Option {
	return func(a *App) {
		a.endpoints = append([]trigger.Endpoint(nil), endpoints...)
	}
}

// WithHTTPClient sets the client used for outbound calls.
func WithHTTPClient(c trigger.Doer) Option {
	return func(a *App) {
		if c != nil {
			a.client = c
		}
	}
}

// WithDispatchTimeout bounds every outbound call. Zero means no bound.
func WithDispatchTimeout(d time.Duration) Option {
	return func(a *App) {
		if d >= 0 {
			a.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent of outbound calls.
func WithUserAgent(ua string) Option {
	return func(a *App) {
		a.userAgent = ua
	}
}

// WithSchedule sets the cron expression the dispatcher fires on.
// Defaults to every five minutes.
func WithSchedule(expr string) Option {
	return func(a *App) {
		if expr != "" {
			a.schedule = expr
		}
	}
}

// WithLocation sets the time zone the schedule is evaluated in.
// Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(a *App) {
		if loc != nil {
			a.location = loc
		}
	}
}

// WithRunOnStart fires one dispatch as soon as the scheduler starts.
func WithRunOnStart(enabled bool) Option {
	return func(a *App) {
		a.runOnStart = enabled
	}
}

// WithManualTrigger sets the path of the manual trigger route and its rate.
// An empty path disables the route; perMinute <= 0 disables rate limiting.
func WithManualTrigger(path string, perMinute float64, burst int) Option {
	return func(a *App) {
		a.manualPath = path
		a.manualLimiter = middlewares.NewLimiter(perMinute, burst)
	}
}

// WithShutdownTimeout sets the timeout for graceful shutdown.
// This applies to the HTTP server, the scheduler and shutdown hooks.
// Defaults to 30 seconds.
func WithShutdownTimeout(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.shutdownTimeout = d
		}
	}
}

// WithShutdownHook registers a cleanup function to run during shutdown.
// Hooks are called in the order they were registered, after the scheduler stops.
func WithShutdownHook(fn func(context.Context) error) Option {
	return func(a *App) {
		if fn != nil {
			a.shutdownHooks = append(a.shutdownHooks, fn)
		}
	}
}

// WithConfig applies a loaded configuration.
// Options given after it override the corresponding settings.
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		if cfg == nil {
			return
		}
		opts := []Option{
			WithBaseURL(cfg.Trigger.BaseURL),
			WithEndpoints(cfg.TriggerEndpoints()...),
			WithDispatchTimeout(cfg.Trigger.Timeout),
			WithUserAgent(cfg.Trigger.UserAgent),
			WithSchedule(cfg.Trigger.Schedule),
			WithRunOnStart(cfg.Trigger.RunOnStart),
			WithAddress(cfg.HTTP.Address),
			WithManualTrigger(cfg.HTTP.ManualPath, cfg.HTTP.ManualPerMinute, cfg.HTTP.ManualBurst),
			WithShutdownTimeout(cfg.HTTP.ShutdownTimeout),
		}
		if loc, err := cfg.Location(); err == nil {
			opts = append(opts, WithLocation(loc))
		}
		for _, opt := range opts {
			opt(a)
		}
	}
}
