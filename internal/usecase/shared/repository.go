package shared

import (
	"context"

	"cinema-scheduler/internal/domain/movie"
	"cinema-scheduler/internal/domain/room"

	"github.com/google/uuid"
)

type RoomRepository interface {
	Save(ctx context.Context, rm *room.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

type MovieRepository interface {
	Save(ctx context.Context, m *movie.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*movie.Movie, error)
}
