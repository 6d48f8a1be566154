package commands

import (
	"context"

	"cinema-scheduler/internal/domain/roomevent"
	"cinema-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateUnavailabilityCommand struct {
	RoomID    uuid.UUID
	Reason    roomevent.UnavailabilityReason
	TimeRange roomevent.TimeRange
}

type CreateUnavailabilityResult struct {
	UnavailabilityID uuid.UUID
}

//go:generate mockgen -source=unavailability.go -destination=../../mock/commands/unavailability.go -package=commandsmock
type UnavailabilityCommands interface {
	CreateUnavailability(ctx context.Context, cmd CreateUnavailabilityCommand) (*CreateUnavailabilityResult, error)
}

type unavailabilityUseCaseImpl struct {
	uow     shared.UnitOfWork
	rooms   shared.RoomRepository
	factory *roomevent.Factory
}

func NewUnavailabilityUseCase(uow shared.UnitOfWork, rooms shared.RoomRepository, factory *roomevent.Factory) UnavailabilityCommands {
	return &unavailabilityUseCaseImpl{
		uow:     uow,
		rooms:   rooms,
		factory: factory,
	}
}

func (uc *unavailabilityUseCaseImpl) CreateUnavailability(ctx context.Context, cmd CreateUnavailabilityCommand) (*CreateUnavailabilityResult, error) {
	var created *roomevent.Unavailability
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, derr := findRoom(ctx, uc.rooms, cmd.RoomID)
		if derr != nil {
			return derr
		}

		created, derr = uc.factory.CreateUnavailability(ctx, rm.ID(), cmd.Reason, cmd.TimeRange)
		if derr != nil {
			return derr
		}
		return tx.RoomEvents().Save(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	return &CreateUnavailabilityResult{UnavailabilityID: created.ID()}, nil
}
