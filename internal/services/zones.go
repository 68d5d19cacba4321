package services

import (
	"context"
	"fmt"

	"eventcheckin/internal/domain"
)

type zoneAggregator struct {
	repo domain.AttendeeRepository
}

// NewZoneAggregator creates a ZoneAggregator that derives occupancy from the
// given repository. Stats are recomputed on every call; the aggregator holds
// no state of its own.
func NewZoneAggregator(repo domain.AttendeeRepository) domain.ZoneAggregator {
	return &zoneAggregator{repo: repo}
}

func (z *zoneAggregator) ZoneStats(ctx context.Context, eventID string) (*domain.ZoneStats, error) {
	attendees, err := z.repo.ListByEvent(ctx, eventID, domain.AttendeeFilter{Status: domain.StatusCheckedIn})
	if err != nil {
		return nil, fmt.Errorf("list checked-in attendees: %w", err)
	}

	stats := &domain.ZoneStats{
		TotalCheckedIn: len(attendees),
		Zones:          make(map[string]int),
	}
	for _, a := range attendees {
		stats.Zones[a.Location]++
	}
	return stats, nil
}
