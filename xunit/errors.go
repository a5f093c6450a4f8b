package xunit

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// FailureError is the outcome of a failed assertion.
type FailureError struct {
	Msg string
}

// Error returns the assertion failure message.
func (e *FailureError) Error() string { return e.Msg }

// newFailure builds a stack-carrying assertion failure.
func newFailure(format string, args ...interface{}) error {
	return pkgerrors.WithStack(&FailureError{Msg: fmt.Sprintf(format, args...)})
}

// SkipError signals that a unit was skipped. Reason holds the marker or
// runtime skip text verbatim; it may be empty.
type SkipError struct {
	Reason string
}

// Error returns the skip reason, or a generic message when none was given.
func (e *SkipError) Error() string {
	if e.Reason == "" {
		return "test skipped"
	}
	return e.Reason
}

// UnexpectedSuccessError reports a unit that passed although it was
// marked as expected to fail.
type UnexpectedSuccessError struct {
	Unit string
}

// Error describes the inverted-polarity violation.
func (e *UnexpectedSuccessError) Error() string {
	return fmt.Sprintf("%s passed, but expected to fail", e.Unit)
}
