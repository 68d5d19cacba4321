// Package memory provides an in-process AttendeeRepository. It is the
// default store when no database is configured and the store used by
// service-level tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"eventcheckin/internal/domain"
)

type attendeeRepository struct {
	mu sync.RWMutex
	// eventID -> ticketID -> attendee
	events map[string]map[string]*domain.Attendee
}

// NewAttendeeRepository creates an empty in-memory AttendeeRepository.
// A single lock guards all events: every mutation is linearizable, and
// ClearEvent is a barrier with respect to concurrent check-ins and imports.
func NewAttendeeRepository() domain.AttendeeRepository {
	return &attendeeRepository{
		events: make(map[string]map[string]*domain.Attendee),
	}
}

func clone(a *domain.Attendee) *domain.Attendee {
	c := *a
	if a.CheckInTime != nil {
		t := *a.CheckInTime
		c.CheckInTime = &t
	}
	if a.CheckOutTime != nil {
		t := *a.CheckOutTime
		c.CheckOutTime = &t
	}
	return &c
}

func (r *attendeeRepository) Upsert(ctx context.Context, a *domain.Attendee) (*domain.Attendee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tickets, ok := r.events[a.EventID]
	if !ok {
		tickets = make(map[string]*domain.Attendee)
		r.events[a.EventID] = tickets
	}

	existing, ok := tickets[a.TicketID]
	if !ok {
		created := clone(a)
		created.ID = uuid.NewString()
		tickets[a.TicketID] = created
		return clone(created), nil
	}

	// Merge non-empty descriptive fields; id, ticket_id, and check-in
	// state stay as they are.
	if a.Name != "" {
		existing.Name = a.Name
	}
	if a.Email != "" {
		existing.Email = a.Email
	}
	if a.Phone != "" {
		existing.Phone = a.Phone
	}
	if a.SerialNo != "" {
		existing.SerialNo = a.SerialNo
	}
	if a.Location != "" {
		existing.Location = a.Location
	}
	existing.UpdatedAt = a.UpdatedAt
	return clone(existing), nil
}

func (r *attendeeRepository) GetByTicket(ctx context.Context, eventID, ticketID string) (*domain.Attendee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.events[eventID][ticketID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(a), nil
}

func (r *attendeeRepository) ListByEvent(ctx context.Context, eventID string, filter domain.AttendeeFilter) ([]*domain.Attendee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	attendees := make([]*domain.Attendee, 0)
	for _, a := range r.events[eventID] {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		attendees = append(attendees, clone(a))
	}
	sort.Slice(attendees, func(i, j int) bool {
		if !attendees[i].CreatedAt.Equal(attendees[j].CreatedAt) {
			return attendees[i].CreatedAt.Before(attendees[j].CreatedAt)
		}
		return attendees[i].TicketID < attendees[j].TicketID
	})
	return attendees, nil
}

func (r *attendeeRepository) ClearEvent(ctx context.Context, eventID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := int64(len(r.events[eventID]))
	delete(r.events, eventID)
	return count, nil
}

func (r *attendeeRepository) CheckIn(ctx context.Context, eventID, ticketID, location string, at time.Time) (*domain.Attendee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.events[eventID][ticketID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if a.Status == domain.StatusCheckedIn {
		return nil, domain.ErrAlreadyCheckedIn
	}
	a.Status = domain.StatusCheckedIn
	t := at
	a.CheckInTime = &t
	a.CheckOutTime = nil
	a.Location = location
	a.UpdatedAt = at
	return clone(a), nil
}

func (r *attendeeRepository) CheckOut(ctx context.Context, eventID, ticketID string, at time.Time) (*domain.Attendee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.events[eventID][ticketID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if a.Status != domain.StatusCheckedIn {
		return nil, domain.ErrNotCheckedIn
	}
	a.Status = domain.StatusCheckedOut
	t := at
	a.CheckOutTime = &t
	a.UpdatedAt = at
	return clone(a), nil
}

func (r *attendeeRepository) CheckInAll(ctx context.Context, eventID, fallbackLocation string, at time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var transitioned int64
	for _, a := range r.events[eventID] {
		if a.Status == domain.StatusCheckedIn {
			continue
		}
		a.Status = domain.StatusCheckedIn
		t := at
		a.CheckInTime = &t
		a.CheckOutTime = nil
		if a.Location == "" {
			a.Location = fallbackLocation
		}
		a.UpdatedAt = at
		transitioned++
	}
	return transitioned, nil
}
