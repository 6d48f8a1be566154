package commands

import (
	"context"

	"cinema-scheduler/internal/domain/movie"
	"cinema-scheduler/internal/domain/room"
	"cinema-scheduler/internal/infra"
	"cinema-scheduler/internal/pkg/errs"
	"cinema-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound     = errs.New("room not found")
	ErrMovieNotFound    = errs.New("movie not found")
	ErrDomainValidation = errs.New("domain validation error")
)

func findRoom(ctx context.Context, rooms shared.RoomRepository, id uuid.UUID) (*room.Room, error) {
	rm, err := rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(ErrRoomNotFound, "room id=%s", id)
		}
		return nil, errs.Wrap(err, "finding room")
	}
	return rm, nil
}

func findMovie(ctx context.Context, movies shared.MovieRepository, id uuid.UUID) (*movie.Movie, error) {
	m, err := movies.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(ErrMovieNotFound, "movie id=%s", id)
		}
		return nil, errs.Wrap(err, "finding movie")
	}
	return m, nil
}
