// Package crontrigger runs a scheduled dispatcher that pings a fixed set of
// maintenance endpoints on a remote API.
//
// On every firing the dispatcher issues one GET per endpoint, all at once,
// waits for every call to settle and reports success whatever the outcomes.
// The default endpoints are:
//
//	GET {base}/cron-jobs/update-chunks
//	GET {base}/cron-jobs/refresh-leaderboard
//
// # Quick Start
//
//	app, err := crontrigger.New(
//	    crontrigger.WithLogger(log),
//	    crontrigger.WithBaseURL("https://api.example.com"),
//	    crontrigger.WithSchedule("*/5 * * * *"),
//	)
//	if err != nil {
//	    log.Error("init", slog.Any("error", err))
//	    os.Exit(1)
//	}
//
//	if err := app.Run(); err != nil {
//	    log.Error("run", slog.Any("error", err))
//	}
//
// # HTTP surface
//
// Next to the scheduler, Run serves:
//
//	GET|POST /__scheduled   one dispatch, rate limited, always 200 with an empty body
//	GET      /health/live   liveness
//	GET      /health/ready  readiness (scheduler started, next firing known)
//	GET      /metrics       Prometheus metrics
//
// # Shutdown
//
// On SIGINT, SIGTERM, base context cancellation or [App.Stop] the HTTP server
// stops first, then the scheduler (waiting for in-flight dispatches), then
// shutdown hooks, all bounded by the shutdown timeout.
package crontrigger
