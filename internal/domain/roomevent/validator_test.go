package roomevent_test

import (
	"context"
	"testing"

	"cinema-scheduler/internal/domain/roomevent"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateWorkingHours(t *testing.T) {
	v := newValidator(&dayLookup{})
	tod := roomevent.NewTimeOfDay

	testCases := []struct {
		name       string
		start, end roomevent.TimeOfDay
		errIs      error
	}{
		{name: "starts at opening", start: tod(8, 0), end: tod(10, 0)},
		{name: "starts one minute before opening", start: tod(7, 59), end: tod(10, 0), errIs: roomevent.ErrOutsideWorkingHours},
		{name: "ends at closing", start: tod(20, 0), end: tod(22, 0)},
		{name: "ends one minute after closing", start: tod(20, 1), end: tod(22, 1), errIs: roomevent.ErrOutsideWorkingHours},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateWorkingHours(tc.start, tc.end)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidator_ValidatePremiereHours(t *testing.T) {
	v := newValidator(&dayLookup{})
	tod := roomevent.NewTimeOfDay

	testCases := []struct {
		name       string
		start, end roomevent.TimeOfDay
		errIs      error
	}{
		{name: "starts at premiere opening", start: tod(17, 0), end: tod(19, 0)},
		{name: "starts one minute early", start: tod(16, 59), end: tod(19, 0), errIs: roomevent.ErrOutsidePremiereHours},
		{name: "ends at premiere closing", start: tod(19, 0), end: tod(21, 0)},
		{name: "ends one minute late", start: tod(19, 1), end: tod(21, 1), errIs: roomevent.ErrOutsidePremiereHours},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidatePremiereHours(tc.start, tc.end)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidator_ValidateRoomAvailability(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	lookup := &dayLookup{}
	lookup.add(roomevent.ReconstructCleaningSlot(uuid.New(), roomID, rangeOf(12, 0, 12, 15)))
	v := newValidator(lookup)

	require.NoError(t, v.ValidateRoomAvailability(ctx, roomID, rangeOf(12, 15, 14, 0)))

	err := v.ValidateRoomAvailability(ctx, roomID, rangeOf(12, 10, 14, 0))
	require.ErrorIs(t, err, roomevent.ErrRoomUnavailable)
	assert.Contains(t, err.Error(), roomID.String())
}
