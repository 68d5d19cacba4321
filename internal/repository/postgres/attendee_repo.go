package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"eventcheckin/internal/domain"
)

type attendeeRepository struct {
	DB *sql.DB
}

// NewAttendeeRepository creates an AttendeeRepository backed by postgres.
// Per-key serialization comes from the conditional single-statement updates:
// postgres row locks make two concurrent transitions on the same
// (event_id, ticket_id) serialize, and the loser sees the new state.
func NewAttendeeRepository(db *sql.DB) domain.AttendeeRepository {
	return &attendeeRepository{
		DB: db,
	}
}

const attendeeColumns = `id, event_id, ticket_id, name, email, phone, serial_no, status, check_in_time, check_out_time, location, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttendee(row rowScanner) (*domain.Attendee, error) {
	a := &domain.Attendee{}
	var checkIn, checkOut sql.NullTime
	err := row.Scan(
		&a.ID, &a.EventID, &a.TicketID, &a.Name, &a.Email, &a.Phone, &a.SerialNo,
		&a.Status, &checkIn, &checkOut, &a.Location, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if checkIn.Valid {
		a.CheckInTime = &checkIn.Time
	}
	if checkOut.Valid {
		a.CheckOutTime = &checkOut.Time
	}
	return a, nil
}

func (r *attendeeRepository) Upsert(ctx context.Context, a *domain.Attendee) (*domain.Attendee, error) {
	// Merge keeps existing descriptive values when the incoming ones are
	// empty and never touches id, ticket_id, or check-in state.
	query := `
		INSERT INTO attendees (event_id, ticket_id, name, email, phone, serial_no, status, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (event_id, ticket_id) DO UPDATE SET
			name = CASE WHEN EXCLUDED.name <> '' THEN EXCLUDED.name ELSE attendees.name END,
			email = CASE WHEN EXCLUDED.email <> '' THEN EXCLUDED.email ELSE attendees.email END,
			phone = CASE WHEN EXCLUDED.phone <> '' THEN EXCLUDED.phone ELSE attendees.phone END,
			serial_no = CASE WHEN EXCLUDED.serial_no <> '' THEN EXCLUDED.serial_no ELSE attendees.serial_no END,
			location = CASE WHEN EXCLUDED.location <> '' THEN EXCLUDED.location ELSE attendees.location END,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + attendeeColumns + `
	`
	row := r.DB.QueryRowContext(ctx, query,
		a.EventID, a.TicketID, a.Name, a.Email, a.Phone, a.SerialNo,
		a.Status, a.Location, a.CreatedAt, a.UpdatedAt,
	)
	return scanAttendee(row)
}

func (r *attendeeRepository) GetByTicket(ctx context.Context, eventID, ticketID string) (*domain.Attendee, error) {
	query := `
		SELECT ` + attendeeColumns + `
		FROM attendees
		WHERE event_id = $1 AND ticket_id = $2
	`
	a, err := scanAttendee(r.DB.QueryRowContext(ctx, query, eventID, ticketID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *attendeeRepository) ListByEvent(ctx context.Context, eventID string, filter domain.AttendeeFilter) ([]*domain.Attendee, error) {
	query := `
		SELECT ` + attendeeColumns + `
		FROM attendees
		WHERE event_id = $1
		ORDER BY created_at, ticket_id
	`
	args := []any{eventID}
	if filter.Status != "" {
		query = `
		SELECT ` + attendeeColumns + `
		FROM attendees
		WHERE event_id = $1 AND status = $2
		ORDER BY created_at, ticket_id
	`
		args = append(args, filter.Status)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := make([]*domain.Attendee, 0)
	for rows.Next() {
		a, err := scanAttendee(rows)
		if err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}

func (r *attendeeRepository) ClearEvent(ctx context.Context, eventID string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM attendees WHERE event_id = $1`, eventID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *attendeeRepository) CheckIn(ctx context.Context, eventID, ticketID, location string, at time.Time) (*domain.Attendee, error) {
	query := `
		UPDATE attendees
		SET status = 'checked_in', check_in_time = $3, check_out_time = NULL, location = $4, updated_at = $3
		WHERE event_id = $1 AND ticket_id = $2 AND status <> 'checked_in'
		RETURNING ` + attendeeColumns + `
	`
	a, err := scanAttendee(r.DB.QueryRowContext(ctx, query, eventID, ticketID, at, location))
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	// No row transitioned: either the ticket is unknown or the attendee is
	// already checked in.
	if _, getErr := r.GetByTicket(ctx, eventID, ticketID); getErr != nil {
		return nil, getErr
	}
	return nil, domain.ErrAlreadyCheckedIn
}

func (r *attendeeRepository) CheckOut(ctx context.Context, eventID, ticketID string, at time.Time) (*domain.Attendee, error) {
	query := `
		UPDATE attendees
		SET status = 'checked_out', check_out_time = $3, updated_at = $3
		WHERE event_id = $1 AND ticket_id = $2 AND status = 'checked_in'
		RETURNING ` + attendeeColumns + `
	`
	a, err := scanAttendee(r.DB.QueryRowContext(ctx, query, eventID, ticketID, at))
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if _, getErr := r.GetByTicket(ctx, eventID, ticketID); getErr != nil {
		return nil, getErr
	}
	return nil, domain.ErrNotCheckedIn
}

func (r *attendeeRepository) CheckInAll(ctx context.Context, eventID, fallbackLocation string, at time.Time) (int64, error) {
	query := `
		UPDATE attendees
		SET status = 'checked_in', check_in_time = $2, check_out_time = NULL, updated_at = $2,
			location = CASE WHEN location = '' THEN $3 ELSE location END
		WHERE event_id = $1 AND status <> 'checked_in'
	`
	result, err := r.DB.ExecContext(ctx, query, eventID, at, fallbackLocation)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
