package domain

import "context"

// ZoneStats is the live occupancy snapshot for an event: checked-in
// attendees grouped by the zone recorded at their last check-in.
type ZoneStats struct {
	TotalCheckedIn int            `json:"total_checked_in"`
	Zones          map[string]int `json:"zones"`
}

// ZoneAggregator derives occupancy from attendee state. Read-only; it never
// enforces zone capacity.
type ZoneAggregator interface {
	ZoneStats(ctx context.Context, eventID string) (*ZoneStats, error)
}
