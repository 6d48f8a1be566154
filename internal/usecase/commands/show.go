package commands

import (
	"context"
	"time"

	"cinema-scheduler/internal/domain/roomevent"
	"cinema-scheduler/internal/pkg/errs"
	"cinema-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateShowCommand struct {
	MovieID    uuid.UUID
	RoomID     uuid.UUID
	StartingAt time.Time
	ShowKind   roomevent.ShowKind
}

type CreateShowResult struct {
	ShowID         uuid.UUID
	CleaningSlotID uuid.UUID
}

//go:generate mockgen -source=show.go -destination=../../mock/commands/show.go -package=commandsmock
type ShowCommands interface {
	CreateShow(ctx context.Context, cmd CreateShowCommand) (*CreateShowResult, error)
}

type showUseCaseImpl struct {
	uow     shared.UnitOfWork
	rooms   shared.RoomRepository
	movies  shared.MovieRepository
	factory *roomevent.Factory
}

func NewShowUseCase(
	uow shared.UnitOfWork,
	rooms shared.RoomRepository,
	movies shared.MovieRepository,
	factory *roomevent.Factory,
) ShowCommands {
	return &showUseCaseImpl{
		uow:     uow,
		rooms:   rooms,
		movies:  movies,
		factory: factory,
	}
}

// CreateShow saves the show and then its trailing cleaning slot in one
// critical section. If the cleaning slot is rejected, the error is returned;
// whether the show stays saved depends on the unit of work's rollback option.
func (uc *showUseCaseImpl) CreateShow(ctx context.Context, cmd CreateShowCommand) (*CreateShowResult, error) {
	var result CreateShowResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		mv, derr := findMovie(ctx, uc.movies, cmd.MovieID)
		if derr != nil {
			return derr
		}
		rm, derr := findRoom(ctx, uc.rooms, cmd.RoomID)
		if derr != nil {
			return derr
		}

		show, derr := uc.factory.CreateShow(ctx, mv, rm, cmd.ShowKind, cmd.StartingAt)
		if derr != nil {
			return derr
		}
		if derr = tx.RoomEvents().Save(ctx, show); derr != nil {
			return derr
		}
		result.ShowID = show.ID()

		slot, derr := createCleaningSlot(ctx, tx, uc.rooms, uc.factory, CreateCleaningSlotCommand{
			RoomID:     rm.ID(),
			StartingAt: show.TimeRange().To,
		})
		if derr != nil {
			return errs.Wrapf(derr, "creating cleaning slot for show %s", show.ID())
		}
		result.CleaningSlotID = slot.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
