package roomevent

import (
	"context"

	"github.com/google/uuid"
)

type DayEventLookup interface {
	EventsForRoomOnDay(ctx context.Context, roomID uuid.UUID, day Day) ([]RoomEvent, error)
}

type AvailabilityChecker struct {
	events DayEventLookup
}

func NewAvailabilityChecker(events DayEventLookup) *AvailabilityChecker {
	return &AvailabilityChecker{events: events}
}

// IsAvailable only looks at events stored under the day timeRange starts on,
// so a range crossing midnight is not checked against the following day.
func (c *AvailabilityChecker) IsAvailable(ctx context.Context, roomID uuid.UUID, timeRange TimeRange) (bool, error) {
	events, err := c.events.EventsForRoomOnDay(ctx, roomID, DayOf(timeRange.From))
	if err != nil {
		return false, err
	}

	for _, e := range events {
		if e.TimeRange().OverlapsWith(timeRange) {
			return false, nil
		}
	}
	return true, nil
}
