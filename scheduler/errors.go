package scheduler

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when a requested status change
	// violates the appointment lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrMissingCancellationReason is returned when a cancellation is
	// attempted without a reason.
	ErrMissingCancellationReason = errors.New("cancellation requires a reason")

	// ErrInvalidRefundTransition is returned when a refund decision has
	// already been recorded.
	ErrInvalidRefundTransition = errors.New("refund decision is final")

	// ErrInvalidRecurrenceDay is returned when the day value is out of
	// range for the recurrence frequency.
	ErrInvalidRecurrenceDay = errors.New("recurrence day out of range")
)

// PersistenceError wraps a failure reported by the backing store,
// keeping the original cause available through errors.Unwrap.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
