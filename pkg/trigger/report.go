package trigger

import (
	"time"
)

// Outcome results, used as the metric label.
const (
	ResultOK             = "ok"
	ResultHTTPError      = "http_error"
	ResultTransportError = "transport_error"
)

// Outcome is the settled state of one outbound request.
type Outcome struct {
	Err        error
	Endpoint   string
	URL        string
	Duration   time.Duration
	StatusCode int
}

// OK reports whether the request completed with a 2xx status.
func (o Outcome) OK() bool {
	return o.Err == nil && o.StatusCode >= 200 && o.StatusCode < 300
}

// Result classifies the outcome as ok, http_error or transport_error.
func (o Outcome) Result() string {
	switch {
	case o.Err != nil:
		return ResultTransportError
	case o.OK():
		return ResultOK
	default:
		return ResultHTTPError
	}
}

// Report describes one invocation. Outcomes follow the configured endpoint order.
type Report struct {
	StartedAt time.Time
	RunID     string
	Source    string
	Outcomes  []Outcome
	Duration  time.Duration
}

// Failed returns the outcomes that did not complete with a 2xx status.
func (r Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.OK() {
			failed = append(failed, o)
		}
	}
	return failed
}
