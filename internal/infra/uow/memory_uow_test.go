package uow_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cinema-scheduler/internal/domain/roomevent"
	"cinema-scheduler/internal/infra/repository"
	"cinema-scheduler/internal/infra/uow"
	"cinema-scheduler/internal/testutil"
	"cinema-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newSlot(roomID uuid.UUID, hour int) *roomevent.CleaningSlot {
	return roomevent.ReconstructCleaningSlot(uuid.New(), roomID, roomevent.TimeRange{
		From: testutil.At(2022, time.October, 17, hour, 0),
		To:   testutil.At(2022, time.October, 17, hour, 15),
	})
}

func TestMemoryUoW_Within(t *testing.T) {
	ctx := context.Background()
	errFailed := errors.New("second step failed")

	testCases := []struct {
		name          string
		rollback      bool
		fail          bool
		expectedCount int
	}{
		{name: "success keeps everything", rollback: false, fail: false, expectedCount: 2},
		{name: "success with rollback enabled", rollback: true, fail: false, expectedCount: 2},
		{name: "failure keeps partial saves by default", rollback: false, fail: true, expectedCount: 2},
		{name: "failure rolls back when enabled", rollback: true, fail: true, expectedCount: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := repository.NewRoomEventRepository(discardLogger)
			u := uow.NewMemoryUoW(store, uow.Options{RollbackOnFailure: tc.rollback}, discardLogger)
			roomID := uuid.New()

			err := u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				if err := tx.RoomEvents().Save(ctx, newSlot(roomID, 10)); err != nil {
					return err
				}
				if err := tx.RoomEvents().Save(ctx, newSlot(roomID, 12)); err != nil {
					return err
				}
				if tc.fail {
					return errFailed
				}
				return nil
			})

			if tc.fail {
				require.ErrorIs(t, err, errFailed)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.expectedCount, testutil.CountEvents(t, store, testutil.ScheduleDay))
		})
	}
}

func TestMemoryUoW_RollbackLeavesEarlierEventsAlone(t *testing.T) {
	ctx := context.Background()
	store := repository.NewRoomEventRepository(discardLogger)
	u := uow.NewMemoryUoW(store, uow.Options{RollbackOnFailure: true}, discardLogger)
	roomID := uuid.New()

	require.NoError(t, u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.RoomEvents().Save(ctx, newSlot(roomID, 9))
	}))

	err := u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.RoomEvents().Save(ctx, newSlot(roomID, 11)); err != nil {
			return err
		}
		return errors.New("boom")
	})
	require.Error(t, err)
	assert.Equal(t, 1, testutil.CountEvents(t, store, testutil.ScheduleDay))
}

func TestMemoryUoW_CancelledContext(t *testing.T) {
	store := repository.NewRoomEventRepository(discardLogger)
	u := uow.NewMemoryUoW(store, uow.Options{}, discardLogger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := u.Within(ctx, func(context.Context, shared.Tx) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestMemoryUoW_SerializesCallers(t *testing.T) {
	store := repository.NewRoomEventRepository(discardLogger)
	u := uow.NewMemoryUoW(store, uow.Options{}, discardLogger)

	var (
		inside  atomic.Int32
		maxSeen atomic.Int32
		wg      sync.WaitGroup
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = u.Within(context.Background(), func(context.Context, shared.Tx) error {
				n := inside.Add(1)
				if n > maxSeen.Load() {
					maxSeen.Store(n)
				}
				time.Sleep(time.Millisecond)
				inside.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
}
