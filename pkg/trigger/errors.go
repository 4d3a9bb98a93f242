package trigger

import "errors"

// Dispatcher construction errors.
var (
	// ErrBaseURLRequired is returned when the base URL is empty.
	ErrBaseURLRequired = errors.New("trigger: base url is required")

	// ErrInvalidBaseURL is returned when the base URL is not an absolute
	// http or https URL.
	ErrInvalidBaseURL = errors.New("trigger: invalid base url")

	// ErrNoEndpoints is returned when the dispatcher has nothing to call.
	ErrNoEndpoints = errors.New("trigger: no endpoints configured")

	// ErrInvalidEndpoint is returned when an endpoint has an empty path.
	ErrInvalidEndpoint = errors.New("trigger: invalid endpoint")
)
