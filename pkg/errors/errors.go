// Package errors augments the standard errors package
// with a Wrap() method, so sentinel errors can carry a cause
// without resorting to fmt.Errorf("%w", err).
package errors

import (
	stderr "errors"
)

var _ error = New("")

// New creates a new Error with a fixed message
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error is an error with an optional wrapped cause.
//
// Unlike github.com/pkg/errors, the cause is attached to an
// existing error value rather than created from text, which keeps
// sentinel comparisons with Is() working.
type Error struct {
	msg string
	err error
}

// Error message
func (e *Error) Error() string {
	return e.msg
}

// Unwrap the wrapped cause, if any
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap a cause under this error. The receiver is not mutated, so
// package-level sentinels remain safe to wrap concurrently.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err}
}

// WrapMessage wraps a cause given as a plain message
func (e *Error) WrapMessage(msg string) *Error {
	return e.Wrap(stderr.New(msg))
}

// Is reports whether this error or its direct cause is the target
func (e *Error) Is(target error) bool {
	if e == target {
		return true
	}
	if o, ok := target.(*Error); ok {
		return e.msg == o.msg
	}
	return false
}

// As finds the first error in err's chain that matches target
// (a shortcut to the standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to the standard lib errors.Is)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
