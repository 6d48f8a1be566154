package room

import (
	"strings"
	"time"

	"cinema-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName       = errs.New("room name cannot be empty")
	ErrRoomNameTooLong     = errs.New("room name is too long (max 255 characters)")
	ErrInvalidCleaningSlot = errs.New("cleaning slot must be positive")
)

const (
	MaxRoomNameLength   = 255
	DefaultCleaningSlot = 15 * time.Minute
)

type Room struct {
	id           uuid.UUID
	name         string
	cleaningSlot time.Duration
}

// NewRoom falls back to DefaultCleaningSlot when cleaningSlot is zero.
func NewRoom(id uuid.UUID, name string, cleaningSlot time.Duration) (*Room, error) {
	if err := validateRoomName(name); err != nil {
		return nil, err
	}

	if cleaningSlot == 0 {
		cleaningSlot = DefaultCleaningSlot
	}
	if cleaningSlot < 0 {
		return nil, ErrInvalidCleaningSlot
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Room{
		id:           id,
		name:         strings.TrimSpace(name),
		cleaningSlot: cleaningSlot,
	}, nil
}

func validateRoomName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return ErrRoomNameTooLong
	}
	return nil
}

func (r *Room) ID() uuid.UUID               { return r.id }
func (r *Room) Name() string                { return r.name }
func (r *Room) CleaningSlot() time.Duration { return r.cleaningSlot }
