package request

import (
	"time"

	"cinema-scheduler/internal/pkg/patch"
	"cinema-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

type RegisterRoomRequest struct {
	ID   *uuid.UUID `json:"id,omitempty"`
	Name string     `json:"name" binding:"required,max=255"`
	// nil means the configured default
	CleaningSlotMinutes *int `json:"cleaningSlotMinutes,omitempty" binding:"omitempty,min=1,max=240"`
}

func (r RegisterRoomRequest) ToCommand() commands.RegisterRoomCommand {
	return commands.RegisterRoomCommand{
		ID:           patch.Coalesce(r.ID, uuid.Nil),
		Name:         r.Name,
		CleaningSlot: patch.Minutes(r.CleaningSlotMinutes),
	}
}

type RegisterMovieRequest struct {
	ID                *uuid.UUID `json:"id,omitempty"`
	Title             string     `json:"title" binding:"max=255"`
	DurationMinutes   int        `json:"durationMinutes" binding:"required,min=1,max=1440"`
	Requires3DGlasses bool       `json:"requires3dGlasses"`
}

func (r RegisterMovieRequest) ToCommand() commands.RegisterMovieCommand {
	return commands.RegisterMovieCommand{
		ID:                patch.Coalesce(r.ID, uuid.Nil),
		Title:             r.Title,
		Duration:          time.Duration(r.DurationMinutes) * time.Minute,
		Requires3DGlasses: r.Requires3DGlasses,
	}
}
