package job

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scheduledTestTask implements the scheduled task interface.
type scheduledTestTask struct {
	schedule string
}

func (t *scheduledTestTask) Name() string     { return "scheduled_test" }
func (t *scheduledTestTask) Schedule() string { return t.schedule }

func (t *scheduledTestTask) Handle(ctx context.Context) error {
	return nil
}

func TestWithScheduledTask(t *testing.T) {
	t.Parallel()

	cfg := newConfig()

	task := &scheduledTestTask{schedule: "*/5 * * * *"}
	WithScheduledTask(task)(cfg)

	require.Len(t, cfg.schedules, 1)
	assert.Equal(t, "scheduled_test", cfg.schedules[0].name)
	assert.Equal(t, "*/5 * * * *", cfg.schedules[0].schedule)
	require.NotNil(t, cfg.schedules[0].handler)
	assert.NoError(t, cfg.schedules[0].handler(context.Background()))
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	WithLogger(logger)(cfg)
	assert.Same(t, logger, cfg.logger)

	WithLogger(nil)(cfg)
	assert.Same(t, logger, cfg.logger, "nil logger should be ignored")
}

func TestWithLocation(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	assert.Equal(t, time.UTC, cfg.location)

	loc := time.FixedZone("test", 3600)
	WithLocation(loc)(cfg)
	assert.Equal(t, loc, cfg.location)

	WithLocation(nil)(cfg)
	assert.Equal(t, loc, cfg.location)
}

func TestWithRunOnStart(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	assert.False(t, cfg.runOnStart)

	WithRunOnStart(true)(cfg)
	assert.True(t, cfg.runOnStart)
}
