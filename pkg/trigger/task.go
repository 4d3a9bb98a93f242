package trigger

import "context"

// DefaultTaskName names the scheduled dispatch in logs and health output.
const DefaultTaskName = "cron-triggers"

// Task runs a dispatcher on a cron schedule.
// It satisfies the scheduler task shape: Name, Schedule and Handle.
type Task struct {
	dispatcher *Dispatcher
	name       string
	schedule   string
}

// NewTask wraps d so it fires on schedule (a cron expression or descriptor).
func NewTask(d *Dispatcher, schedule string) *Task {
	return &Task{dispatcher: d, name: DefaultTaskName, schedule: schedule}
}

// Named returns a copy of the task with a different name.
func (t *Task) Named(name string) *Task {
	cp := *t
	if name != "" {
		cp.name = name
	}
	return &cp
}

func (t *Task) Name() string { return t.name }

func (t *Task) Schedule() string { return t.schedule }

// Handle dispatches and always returns nil: downstream failures do not fail the invocation.
func (t *Task) Handle(ctx context.Context) error {
	t.dispatcher.Dispatch(WithSource(ctx, SourceSchedule))
	return nil
}
