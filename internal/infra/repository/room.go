package repository

import (
	"context"
	"log/slog"
	"sync"

	"cinema-scheduler/internal/domain/room"
	"cinema-scheduler/internal/infra"

	"github.com/google/uuid"
)

type RoomRepository struct {
	mu     sync.RWMutex
	rooms  map[uuid.UUID]*room.Room
	logger *slog.Logger
}

func NewRoomRepository(logger *slog.Logger) *RoomRepository {
	return &RoomRepository{
		rooms:  make(map[uuid.UUID]*room.Room),
		logger: logger,
	}
}

// Save overwrites an existing room with the same id and logs a warning.
func (r *RoomRepository) Save(_ context.Context, rm *room.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rooms[rm.ID()]; exists {
		r.logger.Warn("room already exists, overriding", slog.String("room_id", rm.ID().String()))
	}
	r.rooms[rm.ID()] = rm
	return nil
}

func (r *RoomRepository) FindByID(_ context.Context, id uuid.UUID) (*room.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rm, ok := r.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "room "+id.String()+" not found", nil)
	}
	return rm, nil
}

