// Package errors contains helper functions for wrapping errors with stack traces and panic recovery.
package errors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// New creates a new error from the given value and wraps it in a type that carries the stack trace.
// If the value is already an error with a stack trace, it is returned as is.
func New(val any) error {
	if val == nil {
		return nil
	}

	if err, ok := val.(error); ok {
		if ContainsStackTrace(err) {
			return err
		}

		return goerrors.Wrap(err, 1)
	}

	return goerrors.Wrap(fmt.Errorf("%v", val), 1)
}

// Errorf creates a new error with a formatted message and wraps it in a type that carries the stack trace.
func Errorf(message string, args ...any) error {
	err := fmt.Errorf(message, args...)
	return goerrors.Wrap(err, 1)
}

// WithStackTrace wraps the given error in a type that carries the stack trace.
// If the given error is nil, returns nil.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	return goerrors.Wrap(err, 1)
}

// WithStackTraceAndPrefix wraps the given error in a type that carries the stack trace and
// prepends the given message to the error message. If the given error is nil, returns nil.
func WithStackTraceAndPrefix(err error, message string, args ...any) error {
	if err == nil {
		return nil
	}

	return goerrors.WrapPrefix(err, fmt.Sprintf(message, args...), 1)
}

// ErrorStack returns the stack trace of the given error if it carries one, otherwise an empty string.
func ErrorStack(err error) string {
	for {
		if err == nil {
			return ""
		}

		if err, ok := err.(interface{ ErrorStack() string }); ok {
			return err.ErrorStack()
		}

		err = errors.Unwrap(err)
	}
}

// ContainsStackTrace returns true if the given error carries a stack trace.
// Useful to avoid creating a nested stack trace.
func ContainsStackTrace(err error) bool {
	for {
		if err == nil {
			return false
		}

		if _, ok := err.(interface{ ErrorStack() string }); ok {
			return true
		}

		err = errors.Unwrap(err)
	}
}

// Recover tries to recover from panics, and if it succeeds, calls the given onPanic function with an error that
// explains the cause of the panic. This function should only be called from a defer statement.
func Recover(onPanic func(cause error)) {
	if rec := recover(); rec != nil {
		err, isError := rec.(error)
		if !isError {
			err = fmt.Errorf("%v", rec)
		}

		onPanic(WithStackTrace(err))
	}
}
