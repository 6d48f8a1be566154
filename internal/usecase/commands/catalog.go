package commands

import (
	"context"
	"time"

	"cinema-scheduler/internal/domain/movie"
	"cinema-scheduler/internal/domain/room"
	"cinema-scheduler/internal/pkg/errs"
	"cinema-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterRoomCommand struct {
	ID           uuid.UUID
	Name         string
	CleaningSlot time.Duration
}

type RegisterMovieCommand struct {
	ID                uuid.UUID
	Title             string
	Duration          time.Duration
	Requires3DGlasses bool
}

//go:generate mockgen -source=catalog.go -destination=../../mock/commands/catalog.go -package=commandsmock

// CatalogCommands maintains the room and movie master data the scheduler reads.
type CatalogCommands interface {
	RegisterRoom(ctx context.Context, cmd RegisterRoomCommand) (uuid.UUID, error)
	RegisterMovie(ctx context.Context, cmd RegisterMovieCommand) (uuid.UUID, error)
}

type catalogUseCaseImpl struct {
	rooms               shared.RoomRepository
	movies              shared.MovieRepository
	defaultCleaningSlot time.Duration
}

func NewCatalogUseCase(rooms shared.RoomRepository, movies shared.MovieRepository, defaultCleaningSlot time.Duration) CatalogCommands {
	return &catalogUseCaseImpl{
		rooms:               rooms,
		movies:              movies,
		defaultCleaningSlot: defaultCleaningSlot,
	}
}

func (uc *catalogUseCaseImpl) RegisterRoom(ctx context.Context, cmd RegisterRoomCommand) (uuid.UUID, error) {
	cleaningSlot := cmd.CleaningSlot
	if cleaningSlot == 0 {
		cleaningSlot = uc.defaultCleaningSlot
	}

	rm, err := room.NewRoom(cmd.ID, cmd.Name, cleaningSlot)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := uc.rooms.Save(ctx, rm); err != nil {
		return uuid.Nil, err
	}
	return rm.ID(), nil
}

func (uc *catalogUseCaseImpl) RegisterMovie(ctx context.Context, cmd RegisterMovieCommand) (uuid.UUID, error) {
	mv, err := movie.NewMovie(cmd.ID, cmd.Title, cmd.Duration, cmd.Requires3DGlasses)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := uc.movies.Save(ctx, mv); err != nil {
		return uuid.Nil, err
	}
	return mv.ID(), nil
}
