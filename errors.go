// File: errors.go
// Common errors returned by the scheduler.
// License: Apache-2.0
package workpool

import (
	"fmt"

	"github.com/momentics/workpool/api"
)

// Error represents an error raised by the pool itself, as opposed to a
// panic propagated from inside a submitted task. It wraps an optional
// underlying error and supports errors.Is/errors.As via Unwrap,
// following the same shape as Tahsin716-flock's PoolError.
type Error struct {
	msg string
	err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("workpool: %s: %v", e.msg, e.err)
	}
	return fmt.Sprintf("workpool: %s", e.msg)
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.err
}

var (
	// ErrPoolClosed is returned by Submit/SubmitTask/SubmitFunc once the
	// pool has begun shutting down. The task is not executed and the
	// quiescence counter is not incremented.
	ErrPoolClosed = &Error{msg: "pool is shutting down"}

	// ErrNilTask is returned when Submit is called with a nil task.
	ErrNilTask = &Error{msg: "task is nil"}
)

// errInvalidConfig wraps a validation failure as both a *workpool.Error
// (for errors.Is/errors.As callers) and an *api.Error (for callers that
// want the structured code/context shape).
func errInvalidConfig(reason string) error {
	return &Error{
		msg: "invalid configuration",
		err: api.NewError(api.ErrCodeInvalidArgument, reason),
	}
}
