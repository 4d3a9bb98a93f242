package health

import "errors"

var (
	// ErrCheckFailed is the root of Response.Err when any check is unhealthy.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout marks a check that did not return before the timeout.
	ErrCheckTimeout = errors.New("health: check timeout")
)
