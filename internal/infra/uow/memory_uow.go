package uow

import (
	"context"
	"log/slog"
	"sync"

	"cinema-scheduler/internal/domain/roomevent"
	"cinema-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type Options struct {
	// RollbackOnFailure removes events saved by a failed invocation. When off,
	// whatever was saved before the failure stays persisted.
	RollbackOnFailure bool
}

// MemoryUoW serializes every scheduling command in the process behind one
// mutex shared by all rooms. Readers do not take this lock.
type MemoryUoW struct {
	mu     sync.Mutex
	events shared.RoomEventStore
	opts   Options
	logger *slog.Logger
}

func NewMemoryUoW(events shared.RoomEventStore, opts Options, logger *slog.Logger) *MemoryUoW {
	return &MemoryUoW{
		events: events,
		opts:   opts,
		logger: logger,
	}
}

func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	tx := &memTx{writer: &recordingWriter{store: u.events}}

	err := fn(ctx, tx)
	if err == nil || len(tx.writer.saved) == 0 {
		return err
	}

	if !u.opts.RollbackOnFailure {
		u.logger.Warn("scheduling command failed after partial save; saved events are kept",
			slog.Int("saved_events", len(tx.writer.saved)),
			slog.String("error", err.Error()))
		return err
	}

	u.rollback(ctx, tx.writer.saved)
	return err
}

func (u *MemoryUoW) rollback(ctx context.Context, saved []uuid.UUID) {
	for i := len(saved) - 1; i >= 0; i-- {
		if rmErr := u.events.Remove(ctx, saved[i]); rmErr != nil {
			u.logger.Error("rollback failed",
				slog.String("event_id", saved[i].String()),
				slog.String("error", rmErr.Error()))
			continue
		}
		u.logger.Info("rolled back room event", slog.String("event_id", saved[i].String()))
	}
}

type memTx struct {
	writer *recordingWriter
}

func (t *memTx) RoomEvents() shared.RoomEventWriter {
	return t.writer
}

type recordingWriter struct {
	store shared.RoomEventStore
	saved []uuid.UUID
}

func (w *recordingWriter) Save(ctx context.Context, event roomevent.RoomEvent) error {
	if err := w.store.Save(ctx, event); err != nil {
		return err
	}
	w.saved = append(w.saved, event.ID())
	return nil
}
