package job

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthcheck_NilManager(t *testing.T) {
	t.Parallel()

	check := Healthcheck(nil)
	err := check(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHealthcheckFailed)
	assert.ErrorIs(t, err, errManagerNil)
}

func TestHealthcheck_NotStarted(t *testing.T) {
	t.Parallel()

	manager, err := NewManager(WithScheduledTask(&stubTask{name: "a", schedule: "@hourly"}))
	require.NoError(t, err)

	err = Healthcheck(manager)(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHealthcheckFailed)
	assert.ErrorIs(t, err, errManagerNotStarted)
}

func TestHealthcheck_Started(t *testing.T) {
	t.Parallel()

	manager, err := NewManager(WithScheduledTask(&stubTask{name: "a", schedule: "@hourly"}))
	require.NoError(t, err)
	require.NoError(t, manager.Start(context.Background()))
	t.Cleanup(func() { _ = manager.Stop(context.Background()) })

	assert.NoError(t, Healthcheck(manager)(context.Background()))
}
