package commands

import (
	"context"
	"time"

	"cinema-scheduler/internal/domain/roomevent"
	"cinema-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateCleaningSlotCommand struct {
	RoomID     uuid.UUID
	StartingAt time.Time
}

type CreateCleaningSlotResult struct {
	CleaningSlotID uuid.UUID
}

//go:generate mockgen -source=cleaning_slot.go -destination=../../mock/commands/cleaning_slot.go -package=commandsmock
type CleaningSlotCommands interface {
	CreateCleaningSlot(ctx context.Context, cmd CreateCleaningSlotCommand) (*CreateCleaningSlotResult, error)
}

type cleaningSlotUseCaseImpl struct {
	uow     shared.UnitOfWork
	rooms   shared.RoomRepository
	factory *roomevent.Factory
}

func NewCleaningSlotUseCase(uow shared.UnitOfWork, rooms shared.RoomRepository, factory *roomevent.Factory) CleaningSlotCommands {
	return &cleaningSlotUseCaseImpl{
		uow:     uow,
		rooms:   rooms,
		factory: factory,
	}
}

func (uc *cleaningSlotUseCaseImpl) CreateCleaningSlot(ctx context.Context, cmd CreateCleaningSlotCommand) (*CreateCleaningSlotResult, error) {
	var slot *roomevent.CleaningSlot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		slot, derr = createCleaningSlot(ctx, tx, uc.rooms, uc.factory, cmd)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return &CreateCleaningSlotResult{CleaningSlotID: slot.ID()}, nil
}

// createCleaningSlot must run inside UnitOfWork.Within.
func createCleaningSlot(
	ctx context.Context,
	tx shared.Tx,
	rooms shared.RoomRepository,
	factory *roomevent.Factory,
	cmd CreateCleaningSlotCommand,
) (*roomevent.CleaningSlot, error) {
	rm, err := findRoom(ctx, rooms, cmd.RoomID)
	if err != nil {
		return nil, err
	}

	timeRange := roomevent.TimeRange{
		From: cmd.StartingAt,
		To:   cmd.StartingAt.Add(rm.CleaningSlot()),
	}

	slot, err := factory.CreateCleaningSlot(ctx, rm.ID(), timeRange)
	if err != nil {
		return nil, err
	}

	if err := tx.RoomEvents().Save(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}
