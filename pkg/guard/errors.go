package guard

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel all guard failures unwrap to.
// Callers match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a violated argument contract. Name identifies the
// offending parameter as spelled at the call site.
type ArgumentError struct {
	// Name is the parameter name supplied by the caller
	Name string

	// Reason describes the violated contract (e.g. "must not be nil")
	Reason string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Name, e.Reason)
}

// Unwrap returns ErrInvalidArgument so errors.Is matching works.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// NewArgumentError creates an ArgumentError for the named parameter.
func NewArgumentError(name, reason string) *ArgumentError {
	return &ArgumentError{Name: name, Reason: reason}
}
