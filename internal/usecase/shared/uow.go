package shared

import (
	"context"

	"cinema-scheduler/internal/domain/roomevent"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn while holding the process-wide scheduling lock. Every
	// scheduling command goes through it, so no command observes another
	// one half applied.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	RoomEvents() RoomEventWriter
}

type RoomEventWriter interface {
	Save(ctx context.Context, event roomevent.RoomEvent) error
}

type RoomEventStore interface {
	RoomEventWriter
	roomevent.DayEventLookup
	Remove(ctx context.Context, id uuid.UUID) error
	ClearAll(ctx context.Context) error
}
