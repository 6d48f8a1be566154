package roomevent_test

import (
	"context"
	"time"

	"cinema-scheduler/internal/domain/roomevent"

	"github.com/google/uuid"
)

// dayLookup keys events by room and start day, like the event store does.
type dayLookup struct {
	events []roomevent.RoomEvent
	err    error
}

func (l *dayLookup) EventsForRoomOnDay(_ context.Context, roomID uuid.UUID, day roomevent.Day) ([]roomevent.RoomEvent, error) {
	if l.err != nil {
		return nil, l.err
	}
	var result []roomevent.RoomEvent
	for _, e := range l.events {
		if e.RoomID() == roomID && roomevent.DayOf(e.TimeRange().From) == day {
			result = append(result, e)
		}
	}
	return result, nil
}

func (l *dayLookup) add(e roomevent.RoomEvent) {
	l.events = append(l.events, e)
}

func newValidator(lookup *dayLookup) *roomevent.Validator {
	return roomevent.NewValidator(roomevent.NewAvailabilityChecker(lookup), roomevent.DefaultWorkingHours())
}

func newValidatorIn(lookup *dayLookup, loc *time.Location) *roomevent.Validator {
	hours := roomevent.DefaultWorkingHours()
	hours.Location = loc
	return roomevent.NewValidator(roomevent.NewAvailabilityChecker(lookup), hours)
}
