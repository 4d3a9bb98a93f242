package job

import (
	"context"
	"errors"
	"fmt"
)

// ErrHealthcheckFailed is returned when the job manager health check fails.
var ErrHealthcheckFailed = errors.New("job: healthcheck failed")

var (
	errManagerNil        = errors.New("manager is nil")
	errManagerNotStarted = errors.New("manager not started")
	errNoUpcomingRun     = errors.New("task has no upcoming run")
)

// Healthcheck returns a health check function for the job manager.
// The check verifies that the manager is started and every task has a next firing time.
// Compatible with health.CheckFunc.
//
// Example:
//
//	health.Checks{
//	    "scheduler": job.Healthcheck(manager),
//	}
func Healthcheck(m *Manager) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if m == nil {
			return errors.Join(ErrHealthcheckFailed, errManagerNil)
		}

		m.mu.Lock()
		started := m.started
		m.mu.Unlock()

		if !started {
			return errors.Join(ErrHealthcheckFailed, errManagerNotStarted)
		}

		for _, e := range m.Entries() {
			if e.Next.IsZero() {
				return errors.Join(ErrHealthcheckFailed, fmt.Errorf("%w: %s", errNoUpcomingRun, e.Name))
			}
		}

		return ctx.Err()
	}
}
