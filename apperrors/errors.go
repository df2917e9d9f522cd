// Package apperrors defines the error taxonomy shared by all workflows.
// Handlers map these to HTTP status codes in exactly one place; anything
// not in the taxonomy is treated as an internal failure.
package apperrors

import "errors"

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidation(msg string) error { return &ValidationError{Message: msg} }

type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

func NewAuthorization(msg string) error { return &AuthorizationError{Message: msg} }

// ConflictError signals a state race the caller must re-fetch before
// retrying: an already-resolved top-up, a taken slot, a duplicate active
// submission.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflict(msg string) error { return &ConflictError{Message: msg} }

type InsufficientBalanceError struct {
	Message string
}

func (e *InsufficientBalanceError) Error() string { return e.Message }

func NewInsufficientBalance(msg string) error { return &InsufficientBalanceError{Message: msg} }

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFound(msg string) error { return &NotFoundError{Message: msg} }

// StatusCode maps a taxonomy error to its HTTP status. Unknown errors map
// to 500 and must not leak their message to the client.
func StatusCode(err error) int {
	var (
		validation   *ValidationError
		authz        *AuthorizationError
		conflict     *ConflictError
		insufficient *InsufficientBalanceError
		notFound     *NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		return 400
	case errors.As(err, &authz):
		return 403
	case errors.As(err, &notFound):
		return 404
	case errors.As(err, &conflict):
		return 409
	case errors.As(err, &insufficient):
		return 402
	default:
		return 500
	}
}

// IsExpected reports whether err belongs to the taxonomy, i.e. its message
// is safe to surface to the caller.
func IsExpected(err error) bool {
	return StatusCode(err) != 500
}
