package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpointFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Endpoint
	}{
		{"/cron-jobs/update-chunks", Endpoint{Name: "update-chunks", Path: "/cron-jobs/update-chunks"}},
		{"cron-jobs/refresh-leaderboard/", Endpoint{Name: "refresh-leaderboard", Path: "cron-jobs/refresh-leaderboard/"}},
		{" /ping ", Endpoint{Name: "ping", Path: "/ping"}},
		{"/", Endpoint{Name: "", Path: "/"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, EndpointFromPath(tt.path))
		})
	}
}

func TestEndpointsFromPaths_SkipsBlanks(t *testing.T) {
	t.Parallel()

	got := EndpointsFromPaths([]string{"/a/b", "", "  ", "/c"})
	assert.Equal(t, []Endpoint{{Name: "b", Path: "/a/b"}, {Name: "c", Path: "/c"}}, got)
}

func TestJoinURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://x.test/a/b", joinURL("https://x.test/", "/a/b"))
	assert.Equal(t, "https://x.test/api/a", joinURL("https://x.test/api", "a"))
}

func TestOutcome_Result(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ResultOK, Outcome{StatusCode: 204}.Result())
	assert.Equal(t, ResultHTTPError, Outcome{StatusCode: 503}.Result())
	assert.Equal(t, ResultHTTPError, Outcome{StatusCode: 302}.Result())
	assert.Equal(t, ResultTransportError, Outcome{Err: assert.AnError}.Result())
}
