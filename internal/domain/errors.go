package domain

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors shared across the core. Callers match them with errors.Is.
var (
	// ErrNotFound means the query succeeded and matched zero rows.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable means the remote store could not be reached or
	// returned an unexpected shape. Retryable; never carries partial state.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrTeacherNotVerified means a teacher login had no verified credential.
	ErrTeacherNotVerified = errors.New("teacher not verified")

	// ErrAlreadyAnswered means a doubt already carries a response.
	ErrAlreadyAnswered = errors.New("doubt already answered")

	// ErrUnauthenticated means the session holds no user.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrForbidden means the session user lacks the required role.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError rejects malformed input before any remote call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RoleMismatchError means the asserted role conflicts with the role already
// stored for the user. A stored role is immutable.
type RoleMismatchError struct {
	StoredRole string
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("role mismatch: account is registered as %s", e.StoredRole)
}

// RateLimitedError rejects a call that exceeded its rolling-window budget.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// StorageError wraps a transport failure so callers can both match
// ErrStorageUnavailable and inspect the cause.
func StorageError(op string, cause error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrStorageUnavailable, cause)
}
