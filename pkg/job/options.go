package job

import (
	"context"
	"log/slog"
	"time"
)

// config holds job manager configuration.
type config struct {
	logger     *slog.Logger
	location   *time.Location
	schedules  []scheduleConfig
	runOnStart bool
}

// newConfig creates a config with defaults.
func newConfig() *config {
	return &config{
		location: time.UTC,
	}
}

// scheduleConfig holds scheduled task configuration.
//
//nolint:betteralign // all fields contain pointers, no optimization possible
type scheduleConfig struct {
	handler  scheduledHandler
	name     string
	schedule string
}

// scheduledHandler is a function type for scheduled task handlers.
type scheduledHandler func(context.Context) error

// Option configures the job manager.
type Option func(*config)

// WithScheduledTask registers a periodic task using structural typing.
// The task must implement Name(), Schedule(), and Handle(ctx) methods.
// Schedule() should return a cron expression (5 fields: min hour day month weekday)
// or a descriptor like "@every 1m".
//
// Example:
//
//	job.WithScheduledTask(trigger.NewTask(dispatcher, "*/5 * * * *"))
func WithScheduledTask[T interface {
	Name() string
	Schedule() string
	Handle(context.Context) error
}](task T) Option {
	return func(c *config) {
		c.schedules = append(c.schedules, scheduleConfig{
			name:     task.Name(),
			schedule: task.Schedule(),
			handler:  task.Handle,
		})
	}
}

// WithLogger sets the logger for task execution.
// If not set, a noop logger is used.
//
// Example:
//
//	job.WithLogger(slog.Default())
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithLocation sets the time zone schedules are evaluated in.
// Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(c *config) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithRunOnStart fires every task once as soon as the manager starts,
// in addition to its regular schedule.
func WithRunOnStart(enabled bool) Option {
	return func(c *config) {
		c.runOnStart = enabled
	}
}
