package testutil

import (
	"context"
	"testing"
	"time"

	"cinema-scheduler/internal/domain/movie"
	"cinema-scheduler/internal/domain/room"
	"cinema-scheduler/internal/domain/roomevent"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// ScheduleDay is the day most scheduling tests book on.
var ScheduleDay = roomevent.NewDay(2022, time.October, 17)

type daysSource interface {
	EventsForDays(ctx context.Context, days []roomevent.Day) ([]roomevent.RoomEvent, error)
}

// CountEvents counts stored events that start and end on one of days.
func CountEvents(t testing.TB, store daysSource, days ...roomevent.Day) int {
	t.Helper()
	events, err := store.EventsForDays(context.Background(), days)
	require.NoError(t, err)
	return len(events)
}

// At builds a UTC instant on the given day.
func At(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func MustRoom(name string, cleaningSlot time.Duration) *room.Room {
	rm, err := room.NewRoom(uuid.New(), name, cleaningSlot)
	if err != nil {
		panic(err)
	}
	return rm
}

func MustMovie(title string, duration time.Duration, requires3DGlasses bool) *movie.Movie {
	m, err := movie.NewMovie(uuid.New(), title, duration, requires3DGlasses)
	if err != nil {
		panic(err)
	}
	return m
}
