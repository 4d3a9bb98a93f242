package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trraform/crontrigger/pkg/health"
)

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	t.Run("plain text", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		health.LivenessHandler()(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		health.LivenessHandler()(w, httptest.NewRequest(http.MethodGet, "/health/live?format=json", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	})
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	t.Run("no checks", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		health.ReadinessHandler(nil)(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("failing check", func(t *testing.T) {
		t.Parallel()
		checks := health.Checks{
			"scheduler": func(context.Context) error { return errors.New("manager not started") },
			"other":     func(context.Context) error { return nil },
		}

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		r.Header.Set("Accept", "application/json")
		health.ReadinessHandler(checks)(w, r)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp health.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, health.StatusUnhealthy, resp.Status)
		assert.Equal(t, "manager not started", resp.Checks["scheduler"].Error)
		assert.Equal(t, health.StatusHealthy, resp.Checks["other"].Status)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("plain text failure", func(t *testing.T) {
		t.Parallel()
		checks := health.Checks{"x": func(context.Context) error { return errors.New("down") }}
		w := httptest.NewRecorder()
		health.ReadinessHandler(checks)(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "Service Unavailable\nx: down", w.Body.String())
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	})
}

func TestRun_Timeout(t *testing.T) {
	t.Parallel()

	checks := health.Checks{
		"slow": func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	}

	resp := health.Run(context.Background(), checks, health.WithTimeout(10*time.Millisecond))

	assert.Equal(t, health.StatusUnhealthy, resp.Status)
	err := resp.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, health.ErrCheckFailed)
	assert.Contains(t, err.Error(), "slow: health: check timeout")
}

func TestResponse_ErrHealthy(t *testing.T) {
	t.Parallel()

	resp := health.Run(context.Background(), health.Checks{"ok": func(context.Context) error { return nil }})
	assert.NoError(t, resp.Err())
}
