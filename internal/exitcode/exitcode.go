// Package exitcode maps command errors to process exit codes.
package exitcode

import (
	"errors"
	"fmt"
)

const (
	Success      = 0
	RuntimeError = 1
	NoInput      = 2
	GateFailed   = 3
)

// Error carries the exit code a command failure should end the process with.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with an exit code.
func New(code int, err error) *Error {
	return &Error{Code: code, Err: err}
}

// Newf formats a message and wraps it with an exit code.
func Newf(code int, format string, args ...interface{}) *Error {
	return &Error{Code: code, Err: fmt.Errorf(format, args...)}
}

// FromError returns the exit code for err: Success for nil, the carried code
// for an *Error anywhere in the chain, RuntimeError otherwise.
func FromError(err error) int {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return RuntimeError
}
