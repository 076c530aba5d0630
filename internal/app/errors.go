package app

import "fmt"

// NetworkError covers an unreachable, timed-out or otherwise failing
// backend. Everything it wraps is recoverable by re-submitting the
// action that triggered it.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: backend request failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError marks input rejected client-side before any request is
// made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

var (
	ErrEmptyMessage = &ValidationError{Reason: "message is empty"}
	ErrNoSession    = &ValidationError{Reason: "no active session"}
	ErrSendInFlight = &ValidationError{Reason: "a message is already being sent"}
	ErrMoodRange    = &ValidationError{Reason: "mood score must be between 1 and 5"}
)

// PartialSyncError records a failed history feed while the others keep
// working. It is logged, never surfaced as a blocking error.
type PartialSyncError struct {
	Timeline string
	Err      error
}

func (e *PartialSyncError) Error() string {
	return fmt.Sprintf("%s history load failed: %v", e.Timeline, e.Err)
}

func (e *PartialSyncError) Unwrap() error { return e.Err }
