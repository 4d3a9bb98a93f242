// Package trigger fans a scheduled invocation out to the downstream cron-job endpoints.
//
// A [Dispatcher] holds a base URL and a fixed list of [Endpoint] paths. Every call to
// [Dispatcher.Dispatch] issues one GET per endpoint, all of them in flight at the same
// time, and returns once every request has settled. The outcome of each request is
// recorded in the returned [Report] and logged, but it never fails the invocation:
// the downstream service owns retries and validation.
//
// # Quick Start
//
//	d, err := trigger.New("https://api.example.com",
//	    trigger.WithLogger(log),
//	    trigger.WithObserver(recorder),
//	)
//	if err != nil {
//	    return err
//	}
//
//	// GET https://api.example.com/cron-jobs/update-chunks
//	// GET https://api.example.com/cron-jobs/refresh-leaderboard
//	report := d.Dispatch(ctx)
//
// # Scheduling
//
// [NewTask] adapts a dispatcher to the scheduler task shape (Name, Schedule, Handle):
//
//	sched, err := scheduler.New(
//	    scheduler.WithTask(trigger.NewTask(d, "*/5 * * * *")),
//	)
//
// # HTTP
//
// [Dispatcher.Handler] runs a dispatch for an incoming request and always answers
// 200 with an empty body, which mirrors what a scheduled runtime expects back.
//
// # Errors
//
// Only construction can fail:
//
//   - [ErrBaseURLRequired] - empty base URL
//   - [ErrInvalidBaseURL] - base URL is not an absolute http(s) URL
//   - [ErrNoEndpoints] - endpoint list is empty
//   - [ErrInvalidEndpoint] - endpoint has no path
package trigger
