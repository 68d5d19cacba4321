package domain

import "context"

// CheckOutResult bundles the checked-out attendee with the visit duration.
type CheckOutResult struct {
	Attendee        *Attendee `json:"attendee"`
	DurationMinutes int64     `json:"duration_minutes"`
}

// BulkCheckInResult reports how many attendees a bulk check-in transitioned
// and how many are checked in afterwards.
type BulkCheckInResult struct {
	CheckedIn      int64 `json:"checked_in"`
	TotalCheckedIn int   `json:"total_checked_in"`
}

// CheckInService is the state machine over an attendee's entry/exit
// lifecycle: not_checked_in -> checked_in -> checked_out -> checked_in.
// It never creates an attendee from a bare ticket ID; check-in requires a
// pre-existing record.
type CheckInService interface {
	// CheckIn transitions the attendee to checked_in at the given zone.
	// An empty location falls back to the configured default zone. A
	// second check-in without a check-out fails with ErrAlreadyCheckedIn
	// and leaves the original check-in time untouched.
	CheckIn(ctx context.Context, eventID, ticketID, location string) (*Attendee, error)
	// CheckOut transitions a checked-in attendee to checked_out and
	// returns the visit duration.
	CheckOut(ctx context.Context, eventID, ticketID string) (*CheckOutResult, error)
	// Status returns the attendee snapshot without mutating it.
	Status(ctx context.Context, eventID, ticketID string) (*Attendee, error)
	ListCheckedIn(ctx context.Context, eventID string) ([]*Attendee, error)
	// BulkCheckIn checks in every attendee of the event that is not
	// already checked in, all with the same timestamp. Already-checked-in
	// attendees are left unchanged.
	BulkCheckIn(ctx context.Context, eventID string) (*BulkCheckInResult, error)
	// ClearEvent removes every attendee record for the event.
	ClearEvent(ctx context.Context, eventID string) (int64, error)
}
