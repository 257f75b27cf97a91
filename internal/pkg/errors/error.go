package xerrors

import (
	"errors"
	"fmt"
)

// Common reusable application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized access")
	ErrBadRequest   = errors.New("bad request")
	ErrInternal     = errors.New("internal server error")
)

// Error is a domain failure carrying a client-facing message on top of one
// of the sentinel kinds above. errors.Is against the sentinel still works.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NotFound builds a not-found failure with a descriptive message.
func NotFound(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// BadRequest builds an invariant-violation failure (duplicate participation,
// taken email, forbidden self-service action) surfaced as 400.
func BadRequest(message string) error {
	return &Error{Kind: ErrBadRequest, Message: message}
}

// Unauthorized builds an authentication failure with a generic message.
func Unauthorized(message string) error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// MessageOrDefault returns err.Error() or a fallback message if err is nil.
func MessageOrDefault(err error, fallback string) string {
	if err != nil {
		return err.Error()
	}
	return fallback
}
