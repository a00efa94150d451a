// Package apperr defines the error kinds shared by repositories and use cases.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidValue = errors.New("invalid value")
)

type notFoundError struct {
	resource string
}

func (e *notFoundError) Error() string { return e.resource + " not found" }

func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }

// NotFound builds an ErrNotFound whose message names the missing resource,
// e.g. NotFound("Booking") reads "Booking not found".
func NotFound(resource string) error {
	return &notFoundError{resource: resource}
}

// Invalid wraps ErrInvalidValue with a formatted description.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))
}
