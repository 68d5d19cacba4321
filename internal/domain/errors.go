package domain

import "errors"

var (
	// ErrNotFound is returned when no attendee exists for the given ticket.
	ErrNotFound = errors.New("attendee not found")
	// ErrAlreadyCheckedIn is returned on a check-in attempt for an attendee
	// that is already checked in.
	ErrAlreadyCheckedIn = errors.New("attendee already checked in")
	// ErrNotCheckedIn is returned on a check-out attempt for an attendee
	// that is not currently checked in.
	ErrNotCheckedIn = errors.New("attendee not checked in")
)

// ValidationError reports rejected import input, such as missing required
// columns or an empty file. The message is safe to show to operators.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NewValidationError returns a ValidationError with the given reason.
func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}
