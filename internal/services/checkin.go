package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventcheckin/internal/domain"
	"eventcheckin/internal/metric"
)

type checkInService struct {
	repo        domain.AttendeeRepository
	defaultZone string
}

// NewCheckInService creates a CheckInService backed by the given repository.
// defaultZone is used when a check-in carries no location and as the bulk
// check-in fallback for attendees with no recorded zone.
func NewCheckInService(repo domain.AttendeeRepository, defaultZone string) domain.CheckInService {
	return &checkInService{
		repo:        repo,
		defaultZone: defaultZone,
	}
}

func (s *checkInService) CheckIn(ctx context.Context, eventID, ticketID, location string) (*domain.Attendee, error) {
	if location == "" {
		location = s.defaultZone
	}
	a, err := s.repo.CheckIn(ctx, eventID, ticketID, location, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrAlreadyCheckedIn) {
			return nil, err
		}
		return nil, fmt.Errorf("check in attendee: %w", err)
	}
	metric.CheckIns.Inc()
	return a, nil
}

func (s *checkInService) CheckOut(ctx context.Context, eventID, ticketID string) (*domain.CheckOutResult, error) {
	a, err := s.repo.CheckOut(ctx, eventID, ticketID, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNotCheckedIn) {
			return nil, err
		}
		return nil, fmt.Errorf("check out attendee: %w", err)
	}
	metric.CheckOuts.Inc()

	var minutes int64
	if a.CheckInTime != nil && a.CheckOutTime != nil {
		minutes = int64(a.CheckOutTime.Sub(*a.CheckInTime).Minutes())
	}
	return &domain.CheckOutResult{
		Attendee:        a,
		DurationMinutes: minutes,
	}, nil
}

func (s *checkInService) Status(ctx context.Context, eventID, ticketID string) (*domain.Attendee, error) {
	a, err := s.repo.GetByTicket(ctx, eventID, ticketID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get attendee: %w", err)
	}
	return a, nil
}

func (s *checkInService) ListCheckedIn(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	attendees, err := s.repo.ListByEvent(ctx, eventID, domain.AttendeeFilter{Status: domain.StatusCheckedIn})
	if err != nil {
		return nil, fmt.Errorf("list checked-in attendees: %w", err)
	}
	if attendees == nil {
		attendees = []*domain.Attendee{}
	}
	return attendees, nil
}

func (s *checkInService) BulkCheckIn(ctx context.Context, eventID string) (*domain.BulkCheckInResult, error) {
	// One uniform timestamp for every transitioned record.
	transitioned, err := s.repo.CheckInAll(ctx, eventID, s.defaultZone, time.Now())
	if err != nil {
		return nil, fmt.Errorf("bulk check-in: %w", err)
	}
	metric.CheckIns.Add(float64(transitioned))

	checkedIn, err := s.repo.ListByEvent(ctx, eventID, domain.AttendeeFilter{Status: domain.StatusCheckedIn})
	if err != nil {
		return nil, fmt.Errorf("count checked-in attendees: %w", err)
	}
	return &domain.BulkCheckInResult{
		CheckedIn:      transitioned,
		TotalCheckedIn: len(checkedIn),
	}, nil
}

func (s *checkInService) ClearEvent(ctx context.Context, eventID string) (int64, error) {
	count, err := s.repo.ClearEvent(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("clear event: %w", err)
	}
	return count, nil
}
