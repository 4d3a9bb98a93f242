package job

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr string
	}{
		{name: "every minute", expr: "* * * * *"},
		{name: "every 5 minutes", expr: "*/5 * * * *"},
		{name: "daily at midnight", expr: "0 0 * * *"},
		{name: "weekly on Sunday", expr: "0 0 * * 0"},
		{name: "hourly descriptor", expr: "@hourly"},
		{name: "every descriptor", expr: "@every 90s"},
		{name: "surrounding spaces", expr: "  */10 * * * *  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			schedule, err := ParseSchedule(tt.expr)
			require.NoError(t, err)

			now := time.Now()
			assert.True(t, schedule.Next(now).After(now), "next time should be in the future")
		})
	}
}

func TestParseSchedule_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr string
	}{
		{name: "empty", expr: ""},
		{name: "blank", expr: "   "},
		{name: "too few fields", expr: "* * *"},
		{name: "seconds field", expr: "* * * * * *"},
		{name: "invalid minute", expr: "60 * * * *"},
		{name: "invalid hour", expr: "* 25 * * *"},
		{name: "invalid month", expr: "* * * 13 *"},
		{name: "unknown descriptor", expr: "@fortnightly"},
		{name: "garbage", expr: "not a cron expression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseSchedule(tt.expr)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSchedule)
		})
	}
}

func TestCronLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := cronLogger{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	l.Info("wake", "now", "2026-01-01")
	l.Error(errors.New("boom"), "panic", "stack", "trace")

	out := buf.String()
	assert.Contains(t, out, `level=DEBUG msg="cron: wake" now=2026-01-01`)
	assert.Contains(t, out, `level=ERROR msg="cron: panic" error=boom stack=trace`)
}
