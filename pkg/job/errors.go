package job

import "errors"

// Job errors.
var (
	// ErrNoTasks is returned when a manager is created without any task.
	ErrNoTasks = errors.New("job: no tasks registered")

	// ErrTaskNameRequired is returned when a task reports an empty name.
	ErrTaskNameRequired = errors.New("job: task name is required")

	// ErrDuplicateTask is returned when two tasks share a name.
	ErrDuplicateTask = errors.New("job: duplicate task")

	// ErrInvalidSchedule is returned when a cron expression cannot be parsed.
	ErrInvalidSchedule = errors.New("job: invalid schedule")

	// ErrAlreadyStarted is returned when attempting to start a manager
	// that is already running.
	ErrAlreadyStarted = errors.New("job: already started")

	// ErrNotStarted is returned when attempting to stop a manager
	// that is not running.
	ErrNotStarted = errors.New("job: not started")
)
