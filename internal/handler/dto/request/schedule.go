package request

import (
	"time"

	"cinema-scheduler/internal/domain/roomevent"
	"cinema-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateShowRequest struct {
	MovieID    uuid.UUID `json:"movieId" binding:"required"`
	RoomID     uuid.UUID `json:"roomId" binding:"required"`
	StartingAt time.Time `json:"startingAt" binding:"required"`
	ShowKind   string    `json:"showKind" binding:"required,oneof=REGULAR PREMIERE"`
}

func (r CreateShowRequest) ToCommand() commands.CreateShowCommand {
	return commands.CreateShowCommand{
		MovieID:    r.MovieID,
		RoomID:     r.RoomID,
		StartingAt: r.StartingAt,
		ShowKind:   roomevent.ShowKind(r.ShowKind),
	}
}

type CreateCleaningSlotRequest struct {
	RoomID     uuid.UUID `json:"roomId" binding:"required"`
	StartingAt time.Time `json:"startingAt" binding:"required"`
}

func (r CreateCleaningSlotRequest) ToCommand() commands.CreateCleaningSlotCommand {
	return commands.CreateCleaningSlotCommand{
		RoomID:     r.RoomID,
		StartingAt: r.StartingAt,
	}
}

type CreateUnavailabilityRequest struct {
	RoomID uuid.UUID `json:"roomId" binding:"required"`
	Reason string    `json:"reason" binding:"required,oneof=RENT PARTY"`
	From   time.Time `json:"from" binding:"required"`
	To     time.Time `json:"to" binding:"required"`
}

func (r CreateUnavailabilityRequest) ToCommand() (commands.CreateUnavailabilityCommand, error) {
	timeRange, err := roomevent.NewTimeRange(r.From, r.To)
	if err != nil {
		return commands.CreateUnavailabilityCommand{}, err
	}
	return commands.CreateUnavailabilityCommand{
		RoomID:    r.RoomID,
		Reason:    roomevent.UnavailabilityReason(r.Reason),
		TimeRange: timeRange,
	}, nil
}
