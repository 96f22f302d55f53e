package services

import "errors"

var (
	// ErrUnauthorized means no resolved user identity; every entry point
	// checks this first and short-circuits.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrExecutionFailed wraps a persistence failure inside a command batch.
	// Actions committed before the failure are not rolled back.
	ErrExecutionFailed = errors.New("command execution failed")
)
