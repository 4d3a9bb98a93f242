// Package job runs periodic tasks on cron schedules.
//
// It is the timer facility of the service: each registered task fires on its
// schedule in its own goroutine. A firing is never skipped or delayed because
// the previous firing of the same task is still running, so overlapping
// invocations are independent.
//
// # Task Definition
//
// Tasks are structs with Name(), Schedule() and Handle() methods.
// No interface import is required - the package uses structural typing:
//
//	type RefreshStats struct {
//	    client *stats.Client
//	}
//
//	func (t *RefreshStats) Name() string     { return "refresh_stats" }
//	func (t *RefreshStats) Schedule() string { return "*/5 * * * *" } // Every 5 minutes
//
//	func (t *RefreshStats) Handle(ctx context.Context) error {
//	    return t.client.Refresh(ctx)
//	}
//
// Schedules use the 5-field cron format (min hour day month weekday) or a
// descriptor such as "@hourly" or "@every 90s". Times are evaluated in UTC
// unless WithLocation is given.
//
// # Usage
//
//	manager, err := job.NewManager(
//	    job.WithScheduledTask(tasks.NewRefreshStats(client)),
//	    job.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//
//	if err := manager.Start(ctx); err != nil {
//	    return err
//	}
//	defer manager.Stop(context.Background())
//
// # Health Checks
//
//	health.Checks{
//	    "scheduler": job.Healthcheck(manager),
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure modes:
//
//   - [ErrNoTasks] - NewManager called without tasks
//   - [ErrTaskNameRequired] - task returned an empty name
//   - [ErrDuplicateTask] - two tasks share a name
//   - [ErrInvalidSchedule] - cron expression could not be parsed
//   - [ErrAlreadyStarted] - Manager already running
//   - [ErrNotStarted] - Manager not running
//   - [ErrHealthcheckFailed] - Health check failed
//
// Errors returned by a task are logged and otherwise dropped; the next firing
// runs as scheduled. Panics are recovered and logged with their stack.
package job
