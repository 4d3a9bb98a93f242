package crontrigger

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"

	"github.com/trraform/crontrigger/pkg/health"
	"github.com/trraform/crontrigger/pkg/job"
	"github.com/trraform/crontrigger/pkg/logger"
	"github.com/trraform/crontrigger/pkg/metrics"
	"github.com/trraform/crontrigger/pkg/trigger"
)

// Default server timeouts (hardcoded, opinionated).
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 60 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
)

// Default routes.
const (
	DefaultManualPath    = "/__scheduled"
	DefaultLivenessPath  = "/health/live"
	DefaultReadinessPath = "/health/ready"
	DefaultMetricsPath   = "/metrics"
	DefaultSchedule      = "*/5 * * * *"
)

// App runs the scheduled dispatcher next to a small HTTP server exposing
// the manual trigger route, health probes and metrics.
// App is immutable after creation; all configuration is done via New().
type App struct {
	baseCtx context.Context
	logger  *slog.Logger

	// Dispatcher settings
	baseURL   string
	endpoints []trigger.Endpoint
	client    trigger.Doer
	timeout   time.Duration
	userAgent string

	// Scheduler settings
	schedule   string
	location   *time.Location
	runOnStart bool

	// HTTP
	server        *http.Server
	router        chi.Router
	manualPath    string
	manualLimiter *rate.Limiter

	dispatcher *trigger.Dispatcher
	scheduler  *job.Manager
	registry   *prometheus.Registry

	// Lifecycle
	shutdownTimeout time.Duration
	shutdownHooks   []func(ctx context.Context) error
	done            chan struct{}
	stopOnce        sync.Once

	mu       sync.Mutex
	listener net.Listener // set during Run()
}

// New creates the application with the given options.
// It fails when the dispatcher or the scheduler cannot be built from them.
//
// Example:
//
//	app, err := crontrigger.New(
//	    crontrigger.WithLogger(log),
//	    crontrigger.WithBaseURL("https://api.example.com"),
//	    crontrigger.WithSchedule("*/5 * * * *"),
//	)
func New(opts ...Option) (*App, error) {
	router := chi.NewRouter()

	a := &App{
		router:          router,
		logger:          logger.NewNope(),
		schedule:        DefaultSchedule,
		location:        time.UTC,
		manualPath:      DefaultManualPath,
		shutdownTimeout: defaultShutdownTimeout,
		done:            make(chan struct{}),
		server: &http.Server{
			Addr:              ":8080",
			Handler:           router,
			ReadTimeout:       defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
			IdleTimeout:       defaultIdleTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			MaxHeaderBytes:    defaultMaxHeaderBytes,
		},
	}

	for _, opt := range opts {
		opt(a)
	}

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	recorder, err := metrics.New(a.registry)
	if err != nil {
		return nil, err
	}

	dispatcherOpts := []trigger.Option{
		trigger.WithLogger(a.logger),
		trigger.WithObserver(recorder),
		trigger.WithTimeout(a.timeout),
	}
	if a.client != nil {
		dispatcherOpts = append(dispatcherOpts, trigger.WithClient(a.client))
	}
	if len(a.endpoints) > 0 {
		dispatcherOpts = append(dispatcherOpts, trigger.WithEndpoints(a.endpoints...))
	}
	if a.userAgent != "" {
		dispatcherOpts = append(dispatcherOpts, trigger.WithUserAgent(a.userAgent))
	}

	a.dispatcher, err = trigger.New(a.baseURL, dispatcherOpts...)
	if err != nil {
		return nil, err
	}

	a.scheduler, err = job.NewManager(
		job.WithScheduledTask(trigger.NewTask(a.dispatcher, a.schedule)),
		job.WithLogger(a.logger),
		job.WithLocation(a.location),
		job.WithRunOnStart(a.runOnStart),
	)
	if err != nil {
		return nil, err
	}

	a.setupRoutes()

	return a, nil
}

// Addr returns the server's listening address.
// Returns empty string if the server hasn't started yet.
func (a *App) Addr() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listener == nil {
		return ""
	}
	return a.listener.Addr().String()
}

// Router returns the HTTP handler with every route mounted.
func (a *App) Router() http.Handler {
	return a.router
}

// Dispatcher returns the dispatcher the scheduler and the manual route share.
func (a *App) Dispatcher() *trigger.Dispatcher {
	return a.dispatcher
}

// Scheduler returns the job manager firing the dispatcher.
func (a *App) Scheduler() *job.Manager {
	return a.scheduler
}

// Gatherer exposes the metrics registry served on the metrics route.
func (a *App) Gatherer() prometheus.Gatherer {
	return a.registry
}

func (a *App) readinessChecks() health.Checks {
	return health.Checks{
		"scheduler": job.Healthcheck(a.scheduler),
	}
}
