package commands

import (
	"context"

	"cinema-scheduler/internal/usecase/shared"
)

//go:generate mockgen -source=schedule.go -destination=../../mock/commands/schedule.go -package=commandsmock
type ScheduleCommands interface {
	// ClearSchedule drops every room event. Meant for resets, not normal operation.
	ClearSchedule(ctx context.Context) error
}

type scheduleUseCaseImpl struct {
	uow    shared.UnitOfWork
	events shared.RoomEventStore
}

func NewScheduleUseCase(uow shared.UnitOfWork, events shared.RoomEventStore) ScheduleCommands {
	return &scheduleUseCaseImpl{uow: uow, events: events}
}

func (uc *scheduleUseCaseImpl) ClearSchedule(ctx context.Context) error {
	return uc.uow.Within(ctx, func(ctx context.Context, _ shared.Tx) error {
		return uc.events.ClearAll(ctx)
	})
}
