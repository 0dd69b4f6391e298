// Package shared holds failure signals common to every resource handler.
package shared

import (
	"errors"
	"fmt"
)

// Sentinel errors for the handler layer. Repositories and services wrap
// these with fmt.Errorf("%w: ...") so the HTTP boundary can classify a
// failure with errors.Is while the message keeps the offending key.
var (
	// ErrNotFound indicates the requested entity key does not exist.
	ErrNotFound = errors.New("not found")
	// ErrBadRequest indicates the client supplied invalid input, such as
	// an immutable field in an update body.
	ErrBadRequest = errors.New("bad request")
	// ErrConflict indicates a storage constraint violation on insert.
	ErrConflict = errors.New("conflict")
)

// NotFoundf wraps ErrNotFound with a descriptive message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// BadRequestf wraps ErrBadRequest with a descriptive message.
func BadRequestf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}

// Conflictf wraps ErrConflict with a descriptive message.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}
