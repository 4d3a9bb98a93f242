package crontrigger

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/trraform/crontrigger/middlewares"
	"github.com/trraform/crontrigger/pkg/health"
	"github.com/trraform/crontrigger/pkg/metrics"
)

// Run starts the scheduler and the HTTP server and blocks until shutdown.
// It handles SIGINT and SIGTERM for graceful shutdown.
//
// Returns nil on clean shutdown, or an error if the server
// fails to start or shutdown steps fail.
func (a *App) Run() error {
	logger := a.logger

	baseCtx := a.baseCtx
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Listen first to get actual address
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.listener = ln
	a.mu.Unlock()

	if err := a.scheduler.Start(ctx); err != nil {
		_ = ln.Close()
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case serveErr = <-errCh:
	case <-ctx.Done():
	case <-a.done:
	}

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer shutdownCancel()

	var errs []error
	if serveErr != nil {
		errs = append(errs, serveErr)
	}

	// 1. Stop HTTP server
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}

	// 2. Stop scheduler, waiting for in-flight dispatches
	if err := a.scheduler.Stop(shutdownCtx); err != nil {
		errs = append(errs, err)
		logger.Error("scheduler stop failed", slog.Any("error", err))
	}

	// 3. Run shutdown hooks
	for _, hook := range a.shutdownHooks {
		if err := hook(shutdownCtx); err != nil {
			errs = append(errs, err)
			logger.Error("shutdown hook failed", slog.Any("error", err))
		}
	}

	if len(errs) > 0 {
		logger.Error("shutdown completed with errors")
		return errors.Join(errs...)
	}

	logger.Info("shutdown completed")
	return nil
}

// Stop triggers graceful shutdown programmatically.
// Safe to call more than once.
func (a *App) Stop() {
	a.stopOnce.Do(func() { close(a.done) })
}

// setupRoutes mounts probes, metrics and the manual trigger route.
func (a *App) setupRoutes() {
	r := a.router

	r.Use(middlewares.RequestID())
	r.Use(middlewares.Recover(a.logger))

	r.Get(DefaultLivenessPath, health.LivenessHandler())
	r.Get(DefaultReadinessPath, health.ReadinessHandler(a.readinessChecks(), health.WithLogger(a.logger)))
	r.Handle(DefaultMetricsPath, metrics.Handler(a.registry))

	if a.manualPath == "" {
		return
	}

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequestLogger(a.logger))
		if a.manualLimiter != nil {
			r.Use(middlewares.RateLimit(a.manualLimiter))
		}
		r.Get(a.manualPath, a.dispatcher.Handler())
		r.Post(a.manualPath, a.dispatcher.Handler())
	})
}
