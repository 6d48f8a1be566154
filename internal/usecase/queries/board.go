package queries

import (
	"cmp"
	"context"
	"slices"
	"time"

	"cinema-scheduler/internal/domain/roomevent"

	"github.com/google/uuid"
)

// EventView is one room event on the board. Kind-specific fields are set
// only for the kind they belong to.
type EventView struct {
	ID                uuid.UUID  `json:"id"`
	Kind              string     `json:"kind"`
	From              time.Time  `json:"from"`
	To                time.Time  `json:"to"`
	MovieID           *uuid.UUID `json:"movie_id,omitempty"`
	Requires3DGlasses *bool      `json:"requires_3d_glasses,omitempty"`
	ShowKind          *string    `json:"show_kind,omitempty"`
	Reason            *string    `json:"reason,omitempty"`
}

type RoomPlan struct {
	RoomID uuid.UUID   `json:"room_id"`
	Events []EventView `json:"events"`
}

type CinemaBoard struct {
	Board []RoomPlan `json:"board"`
}

// RoomEventRecord is an event view together with the room it belongs to.
type RoomEventRecord struct {
	RoomID uuid.UUID
	Event  EventView
}

type GetCinemaBoardQuery struct {
	Days []roomevent.Day
}

type BoardReadStore interface {
	FindForDays(ctx context.Context, days []roomevent.Day) ([]RoomEventRecord, error)
}

//go:generate mockgen -source=board.go -destination=../../mock/queries/board.go -package=queriesmock
type BoardQueries interface {
	GetCinemaBoard(ctx context.Context, query GetCinemaBoardQuery) (*CinemaBoard, error)
}

type boardQueriesImpl struct {
	store BoardReadStore
}

func NewBoardQueries(store BoardReadStore) BoardQueries {
	return &boardQueriesImpl{store: store}
}

// GetCinemaBoard groups events by room, each room ordered by start time.
// Rooms without events are left out; rooms are sorted by id.
func (q *boardQueriesImpl) GetCinemaBoard(ctx context.Context, query GetCinemaBoardQuery) (*CinemaBoard, error) {
	records, err := q.store.FindForDays(ctx, query.Days)
	if err != nil {
		return nil, err
	}

	byRoom := make(map[uuid.UUID][]EventView)
	for _, rec := range records {
		byRoom[rec.RoomID] = append(byRoom[rec.RoomID], rec.Event)
	}

	board := make([]RoomPlan, 0, len(byRoom))
	for roomID, events := range byRoom {
		slices.SortStableFunc(events, func(a, b EventView) int {
			return a.From.Compare(b.From)
		})
		board = append(board, RoomPlan{RoomID: roomID, Events: events})
	}
	slices.SortFunc(board, func(a, b RoomPlan) int {
		return cmp.Compare(a.RoomID.String(), b.RoomID.String())
	})

	return &CinemaBoard{Board: board}, nil
}
