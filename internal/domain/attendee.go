package domain

import (
	"context"
	"time"
)

// AttendeeStatus is the check-in lifecycle state of an attendee.
type AttendeeStatus string

const (
	StatusNotCheckedIn AttendeeStatus = "not_checked_in"
	StatusCheckedIn    AttendeeStatus = "checked_in"
	StatusCheckedOut   AttendeeStatus = "checked_out"
)

// Attendee is one ticket holder within an event. TicketID is unique per
// EventID and is the natural key for all lookups.
// swagger:model Attendee
type Attendee struct {
	ID           string         `json:"id"`
	EventID      string         `json:"event_id"`
	TicketID     string         `json:"ticket_id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	SerialNo     string         `json:"serial_no"`
	Status       AttendeeStatus `json:"status"`
	CheckInTime  *time.Time     `json:"check_in_time"`
	CheckOutTime *time.Time     `json:"check_out_time"`
	Location     string         `json:"location"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// NewAttendee returns a new not-checked-in Attendee. ID is typically set by
// the repository on create.
func NewAttendee(eventID, ticketID, name, email, phone, serialNo, location string, now time.Time) *Attendee {
	return &Attendee{
		EventID:   eventID,
		TicketID:  ticketID,
		Name:      name,
		Email:     email,
		Phone:     phone,
		SerialNo:  serialNo,
		Status:    StatusNotCheckedIn,
		Location:  location,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AttendeeFilter narrows ListByEvent results. A zero value matches everything.
type AttendeeFilter struct {
	Status AttendeeStatus
}

// AttendeeRepository defines storage operations for attendees. All mutations
// on a single (eventID, ticketID) pair serialize: the state transitions are
// conditional at the store so two concurrent check-ins cannot both succeed.
type AttendeeRepository interface {
	// Upsert creates the attendee if absent, otherwise merges non-empty
	// descriptive fields into the existing record. ID, TicketID, and
	// check-in state are never changed by a merge.
	Upsert(ctx context.Context, a *Attendee) (*Attendee, error)
	GetByTicket(ctx context.Context, eventID, ticketID string) (*Attendee, error)
	ListByEvent(ctx context.Context, eventID string, filter AttendeeFilter) ([]*Attendee, error)
	// ClearEvent removes every attendee for the event and returns the count.
	ClearEvent(ctx context.Context, eventID string) (int64, error)
	// CheckIn transitions the attendee to checked_in with the given
	// timestamp and location, clearing any previous check-out time.
	// Returns ErrNotFound if no record exists and ErrAlreadyCheckedIn if
	// the attendee is already checked in.
	CheckIn(ctx context.Context, eventID, ticketID, location string, at time.Time) (*Attendee, error)
	// CheckOut transitions a checked-in attendee to checked_out. Returns
	// ErrNotFound if no record exists and ErrNotCheckedIn otherwise when
	// the attendee is not currently checked in.
	CheckOut(ctx context.Context, eventID, ticketID string, at time.Time) (*Attendee, error)
	// CheckInAll transitions every attendee of the event that is not
	// currently checked in, stamping all of them with the same timestamp.
	// Attendees without a recorded location get fallbackLocation. Returns
	// the number of attendees transitioned.
	CheckInAll(ctx context.Context, eventID, fallbackLocation string, at time.Time) (int64, error)
}
