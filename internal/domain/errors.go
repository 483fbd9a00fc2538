package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrEmptyTitle           = errors.New("title cannot be empty")
	ErrEmptyDescription     = errors.New("description cannot be empty")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidPriority      = errors.New("invalid priority")
	ErrDueDateInPast        = errors.New("due date cannot be in the past")
	ErrTaskNotFound         = errors.New("task not found")
	ErrConfirmationRequired = errors.New("delete requires confirmation")
	ErrNotAuthenticated     = errors.New("not logged in (run 'taskdeck login' first)")
	ErrSessionExpired       = errors.New("session expired, please log in again")
)

// NetworkError reports a transport failure or an unrecognized non-2xx response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthError reports a rejected or missing session credential (401).
// Receiving one is the signal to tear down the local session.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication failed"
	}
	return "authentication failed: " + e.Message
}

// NotFoundError reports that an entity vanished server-side (404).
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ValidationError reports a rejected payload (400/422).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Message
}

// IsAuthError returns true if err is or wraps an AuthError.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// IsNotFound returns true if err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation returns true if err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
