package response

import (
	"time"

	"cinema-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type ShowCreatedResponse struct {
	ShowID         uuid.UUID `json:"showId"`
	CleaningSlotID uuid.UUID `json:"cleaningSlotId"`
}

type EventResponse struct {
	ID                uuid.UUID  `json:"id"`
	Kind              string     `json:"kind"`
	From              time.Time  `json:"from"`
	To                time.Time  `json:"to"`
	MovieID           *uuid.UUID `json:"movieId,omitempty"`
	Requires3DGlasses *bool      `json:"requires3dGlasses,omitempty"`
	ShowKind          *string    `json:"showKind,omitempty"`
	Reason            *string    `json:"reason,omitempty"`
}

type RoomPlanResponse struct {
	RoomID uuid.UUID       `json:"roomId"`
	Events []EventResponse `json:"events"`
}

type BoardResponse struct {
	Board []RoomPlanResponse `json:"board"`
}

func FromCinemaBoard(board *queries.CinemaBoard) (*BoardResponse, error) {
	resp := &BoardResponse{Board: []RoomPlanResponse{}}
	if err := copier.Copy(&resp.Board, board.Board); err != nil {
		return nil, err
	}
	if resp.Board == nil {
		resp.Board = []RoomPlanResponse{}
	}
	return resp, nil
}
