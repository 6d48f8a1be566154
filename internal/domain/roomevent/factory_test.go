package roomevent_test

import (
	"context"
	"testing"
	"time"

	"cinema-scheduler/internal/domain/roomevent"
	"cinema-scheduler/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return testutil.At(2022, time.October, 17, hour, minute)
}

func TestFactory_CreateShow(t *testing.T) {
	ctx := context.Background()
	rm := testutil.MustRoom("Blue", 15*time.Minute)
	twoHours := testutil.MustMovie("Avatar", 2*time.Hour, true)

	t.Run("regular show", func(t *testing.T) {
		factory := roomevent.NewFactory(newValidator(&dayLookup{}))

		show, err := factory.CreateShow(ctx, twoHours, rm, roomevent.ShowKindRegular, at(16, 0))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, show.ID())
		assert.Equal(t, rm.ID(), show.RoomID())
		assert.Equal(t, twoHours.ID(), show.MovieID())
		assert.Equal(t, roomevent.KindShow, show.Kind())
		assert.Equal(t, roomevent.ShowKindRegular, show.ShowKind())
		assert.True(t, show.Requires3DGlasses())
		assert.Equal(t, at(16, 0), show.TimeRange().From)
		assert.Equal(t, at(18, 0), show.TimeRange().To)
	})

	testCases := []struct {
		name     string
		existing []roomevent.RoomEvent
		kind     roomevent.ShowKind
		start    time.Time
		errIs    error
	}{
		{name: "regular ending at closing", kind: roomevent.ShowKindRegular, start: at(20, 0)},
		{name: "regular ending after closing", kind: roomevent.ShowKindRegular, start: at(20, 1), errIs: roomevent.ErrOutsideWorkingHours},
		{name: "regular before opening", kind: roomevent.ShowKindRegular, start: at(7, 59), errIs: roomevent.ErrOutsideWorkingHours},
		{name: "premiere inside window", kind: roomevent.ShowKindPremiere, start: at(17, 0)},
		{name: "premiere ending at window end", kind: roomevent.ShowKindPremiere, start: at(19, 0)},
		{name: "premiere starting too early", kind: roomevent.ShowKindPremiere, start: at(16, 59), errIs: roomevent.ErrOutsidePremiereHours},
		{name: "premiere ending too late", kind: roomevent.ShowKindPremiere, start: at(19, 1), errIs: roomevent.ErrOutsidePremiereHours},
		{name: "premiere at regular time", kind: roomevent.ShowKindPremiere, start: at(10, 0), errIs: roomevent.ErrOutsidePremiereHours},
		{name: "unknown show kind", kind: roomevent.ShowKind("MATINEE"), start: at(10, 0), errIs: roomevent.ErrInvalidShowKind},
		{
			name:     "overlapping show",
			existing: []roomevent.RoomEvent{roomevent.ReconstructShow(uuid.New(), rm.ID(), rangeOf(15, 0, 17, 0), uuid.New(), roomevent.ShowKindRegular, false)},
			kind:     roomevent.ShowKindRegular,
			start:    at(16, 0),
			errIs:    roomevent.ErrRoomUnavailable,
		},
		{
			name:     "availability is checked before hours",
			existing: []roomevent.RoomEvent{roomevent.ReconstructUnavailability(uuid.New(), rm.ID(), rangeOf(20, 0, 21, 0), roomevent.ReasonParty)},
			kind:     roomevent.ShowKindRegular,
			start:    at(20, 30),
			errIs:    roomevent.ErrRoomUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lookup := &dayLookup{}
			for _, e := range tc.existing {
				lookup.add(e)
			}
			factory := roomevent.NewFactory(newValidator(lookup))

			show, err := factory.CreateShow(ctx, twoHours, rm, tc.kind, tc.start)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, show)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, show.ShowKind())
		})
	}
}

func TestFactory_CreateCleaningSlot(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	testCases := []struct {
		name     string
		existing []roomevent.RoomEvent
		tr       roomevent.TimeRange
		errIs    error
	}{
		{name: "starts at opening", tr: rangeOf(8, 0, 8, 15)},
		{name: "starts before opening", tr: rangeOf(7, 59, 8, 14), errIs: roomevent.ErrOutsideWorkingHours},
		{name: "ends at closing", tr: rangeOf(21, 45, 22, 0)},
		{name: "ends after closing", tr: rangeOf(22, 0, 22, 15), errIs: roomevent.ErrOutsideWorkingHours},
		{
			name:     "right after a show",
			existing: []roomevent.RoomEvent{roomevent.ReconstructShow(uuid.New(), roomID, rangeOf(16, 0, 18, 0), uuid.New(), roomevent.ShowKindRegular, false)},
			tr:       rangeOf(18, 0, 18, 15),
		},
		{
			name:     "overlapping unavailability",
			existing: []roomevent.RoomEvent{roomevent.ReconstructUnavailability(uuid.New(), roomID, rangeOf(18, 10, 20, 0), roomevent.ReasonRent)},
			tr:       rangeOf(18, 0, 18, 15),
			errIs:    roomevent.ErrRoomUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lookup := &dayLookup{}
			for _, e := range tc.existing {
				lookup.add(e)
			}
			slot, err := roomevent.NewFactory(newValidator(lookup)).CreateCleaningSlot(ctx, roomID, tc.tr)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, roomevent.KindCleaning, slot.Kind())
			assert.Equal(t, tc.tr, slot.TimeRange())
		})
	}
}

func TestFactory_CreateUnavailability(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	factory := roomevent.NewFactory(newValidator(&dayLookup{}))

	t.Run("rent", func(t *testing.T) {
		u, err := factory.CreateUnavailability(ctx, roomID, roomevent.ReasonRent, rangeOf(9, 0, 12, 0))
		require.NoError(t, err)
		assert.Equal(t, roomevent.KindUnavailability, u.Kind())
		assert.Equal(t, roomevent.ReasonRent, u.Reason())
		assert.Equal(t, roomID, u.RoomID())
	})

	t.Run("unknown reason", func(t *testing.T) {
		_, err := factory.CreateUnavailability(ctx, roomID, roomevent.UnavailabilityReason("MAINTENANCE"), rangeOf(9, 0, 12, 0))
		require.ErrorIs(t, err, roomevent.ErrInvalidReason)
	})

	testCases := []struct {
		name  string
		tr    roomevent.TimeRange
		errIs error
	}{
		{name: "starts at opening", tr: rangeOf(8, 0, 9, 0)},
		{name: "starts before opening", tr: rangeOf(7, 59, 9, 0), errIs: roomevent.ErrOutsideWorkingHours},
		{name: "ends at closing", tr: rangeOf(20, 0, 22, 0)},
		{name: "ends after closing", tr: rangeOf(21, 0, 23, 0), errIs: roomevent.ErrOutsideWorkingHours},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := roomevent.NewFactory(newValidator(&dayLookup{})).CreateUnavailability(ctx, roomID, roomevent.ReasonParty, tc.tr)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.tr, u.TimeRange())
		})
	}
}

func TestFactory_CallerOffset(t *testing.T) {
	ctx := context.Background()
	rm := testutil.MustRoom("Blue", 15*time.Minute)
	twoHours := testutil.MustMovie("Avatar", 2*time.Hour, false)
	plus5 := time.FixedZone("UTC+5", 5*60*60)
	plus14 := time.FixedZone("UTC+14", 14*60*60)

	t.Run("hours are checked in the schedule location", func(t *testing.T) {
		factory := roomevent.NewFactory(newValidator(&dayLookup{}))

		// 03:00 UTC
		_, err := factory.CreateShow(ctx, twoHours, rm, roomevent.ShowKindRegular, time.Date(2022, time.October, 17, 8, 0, 0, 0, plus5))
		require.ErrorIs(t, err, roomevent.ErrOutsideWorkingHours)

		_, err = factory.CreateShow(ctx, twoHours, rm, roomevent.ShowKindRegular, at(3, 0))
		require.ErrorIs(t, err, roomevent.ErrOutsideWorkingHours)
	})

	t.Run("stored ranges are expressed in the schedule location", func(t *testing.T) {
		factory := roomevent.NewFactory(newValidator(&dayLookup{}))

		// 16:00 UTC
		show, err := factory.CreateShow(ctx, twoHours, rm, roomevent.ShowKindRegular, time.Date(2022, time.October, 17, 21, 0, 0, 0, plus5))
		require.NoError(t, err)
		assert.Equal(t, roomevent.TimeRange{From: at(16, 0), To: at(18, 0)}, show.TimeRange())
		assert.Equal(t, time.UTC, show.TimeRange().From.Location())

		slot, err := factory.CreateCleaningSlot(ctx, rm.ID(), rangeOf(18, 0, 18, 15).In(plus14))
		require.NoError(t, err)
		assert.Equal(t, rangeOf(18, 0, 18, 15), slot.TimeRange())
	})

	t.Run("overlap is found across a day boundary in the caller offset", func(t *testing.T) {
		lookup := &dayLookup{}
		factory := roomevent.NewFactory(newValidator(lookup))

		rent, err := factory.CreateUnavailability(ctx, rm.ID(), roomevent.ReasonRent, rangeOf(10, 0, 12, 0))
		require.NoError(t, err)
		lookup.add(rent)

		// 00:30-01:30 on the 18th at +14:00 is 10:30-11:30 UTC on the 17th
		_, err = factory.CreateUnavailability(ctx, rm.ID(), roomevent.ReasonParty, rangeOf(10, 30, 11, 30).In(plus14))
		require.ErrorIs(t, err, roomevent.ErrRoomUnavailable)
	})

	t.Run("configured location", func(t *testing.T) {
		plus2 := time.FixedZone("UTC+2", 2*60*60)
		factory := roomevent.NewFactory(newValidatorIn(&dayLookup{}, plus2))

		// 08:00 local
		show, err := factory.CreateShow(ctx, twoHours, rm, roomevent.ShowKindRegular, at(6, 0))
		require.NoError(t, err)
		assert.Equal(t, plus2, show.TimeRange().From.Location())
		assert.Equal(t, roomevent.NewDay(2022, time.October, 17), roomevent.DayOf(show.TimeRange().From))

		_, err = factory.CreateShow(ctx, twoHours, rm, roomevent.ShowKindRegular, at(5, 59))
		require.ErrorIs(t, err, roomevent.ErrOutsideWorkingHours)
	})
}
