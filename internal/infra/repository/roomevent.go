package repository

import (
	"context"
	"fmt"
	"log/slog"

	"cinema-scheduler/internal/domain/roomevent"
	"cinema-scheduler/internal/infra"

	"github.com/google/uuid"
)

// RoomEventRepository is the single entry point over the per-kind stores.
type RoomEventRepository struct {
	shows            *kindStore[*roomevent.Show]
	cleaningSlots    *kindStore[*roomevent.CleaningSlot]
	unavailabilities *kindStore[*roomevent.Unavailability]
	logger           *slog.Logger
}

func NewRoomEventRepository(logger *slog.Logger) *RoomEventRepository {
	return &RoomEventRepository{
		shows:            newKindStore[*roomevent.Show](),
		cleaningSlots:    newKindStore[*roomevent.CleaningSlot](),
		unavailabilities: newKindStore[*roomevent.Unavailability](),
		logger:           logger,
	}
}

func (r *RoomEventRepository) Save(_ context.Context, event roomevent.RoomEvent) error {
	switch e := event.(type) {
	case *roomevent.Show:
		r.shows.save(e)
	case *roomevent.CleaningSlot:
		r.cleaningSlots.save(e)
	case *roomevent.Unavailability:
		r.unavailabilities.save(e)
	default:
		return infra.WrapRepoErr(r.logger, infra.KindUnsupportedEvent, fmt.Sprintf("cannot save %T", event), nil)
	}
	return nil
}

// Remove deletes a single event by id regardless of its kind.
func (r *RoomEventRepository) Remove(_ context.Context, id uuid.UUID) error {
	if r.shows.remove(id) || r.cleaningSlots.remove(id) || r.unavailabilities.remove(id) {
		return nil
	}
	return infra.WrapRepoErr(r.logger, infra.KindNotFound, "room event not found", nil)
}

func (r *RoomEventRepository) EventsForRoomOnDay(_ context.Context, roomID uuid.UUID, day roomevent.Day) ([]roomevent.RoomEvent, error) {
	var result []roomevent.RoomEvent
	result = append(result, r.shows.byRoomOnDay(roomID, day)...)
	result = append(result, r.cleaningSlots.byRoomOnDay(roomID, day)...)
	result = append(result, r.unavailabilities.byRoomOnDay(roomID, day)...)
	return result, nil
}

// EventsForDays returns events whose start and end both fall on one of days.
func (r *RoomEventRepository) EventsForDays(_ context.Context, days []roomevent.Day) ([]roomevent.RoomEvent, error) {
	daySet := make(map[roomevent.Day]struct{}, len(days))
	for _, d := range days {
		daySet[d] = struct{}{}
	}

	var result []roomevent.RoomEvent
	result = append(result, r.shows.forDays(daySet)...)
	result = append(result, r.cleaningSlots.forDays(daySet)...)
	result = append(result, r.unavailabilities.forDays(daySet)...)
	return result, nil
}

func (r *RoomEventRepository) ClearAll(_ context.Context) error {
	removed := r.shows.count() + r.cleaningSlots.count() + r.unavailabilities.count()
	r.shows.clear()
	r.cleaningSlots.clear()
	r.unavailabilities.clear()
	r.logger.Info("room events cleared", slog.Int("removed", removed))
	return nil
}
