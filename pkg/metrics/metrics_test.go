package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trraform/crontrigger/pkg/metrics"
	"github.com/trraform/crontrigger/pkg/trigger"
)

func sampleReport(source string) trigger.Report {
	return trigger.Report{
		RunID:    "r1",
		Source:   source,
		Duration: 120 * time.Millisecond,
		Outcomes: []trigger.Outcome{
			{Endpoint: "update-chunks", StatusCode: http.StatusOK, Duration: 100 * time.Millisecond},
			{Endpoint: "refresh-leaderboard", Err: errors.New("refused"), Duration: 5 * time.Millisecond},
		},
	}
}

func TestRecorder_ObserveReport(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)

	rec.ObserveReport(sampleReport(trigger.SourceSchedule))
	rec.ObserveReport(sampleReport(trigger.SourceSchedule))
	rec.ObserveReport(sampleReport(trigger.SourceManual))

	count, err := testutil.GatherAndCount(reg, "crontrigger_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	expected := `
# HELP crontrigger_invocations_total Total number of dispatches, by what fired them.
# TYPE crontrigger_invocations_total counter
crontrigger_invocations_total{source="manual"} 1
crontrigger_invocations_total{source="schedule"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "crontrigger_invocations_total"))

	expected = `
# HELP crontrigger_requests_total Outbound requests, by endpoint and result (ok, http_error, transport_error).
# TYPE crontrigger_requests_total counter
crontrigger_requests_total{endpoint="refresh-leaderboard",result="transport_error"} 3
crontrigger_requests_total{endpoint="update-chunks",result="ok"} 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "crontrigger_requests_total"))
}

func TestNew_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)

	_, err = metrics.New(reg)
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)
	rec.ObserveReport(sampleReport(trigger.SourceCLI))

	srv := httptest.NewServer(metrics.Handler(reg))
	t.Cleanup(srv.Close)

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `crontrigger_invocations_total{source="cli"} 1`)
}
