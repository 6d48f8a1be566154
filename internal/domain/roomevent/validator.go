package roomevent

import (
	"context"

	"cinema-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomUnavailable      = errs.New("room is unavailable within given time range")
	ErrOutsideWorkingHours  = errs.New("room event outside working hours")
	ErrOutsidePremiereHours = errs.New("premiere outside premiere hours")
	ErrInvalidShowKind      = errs.New("invalid show kind")
	ErrInvalidReason        = errs.New("invalid unavailability reason")
)

type Validator struct {
	checker *AvailabilityChecker
	hours   WorkingHours
}

func NewValidator(checker *AvailabilityChecker, hours WorkingHours) *Validator {
	return &Validator{
		checker: checker,
		hours:   hours,
	}
}

func (v *Validator) WorkingHours() WorkingHours {
	return v.hours
}

func (v *Validator) ValidateRoomAvailability(ctx context.Context, roomID uuid.UUID, timeRange TimeRange) error {
	available, err := v.checker.IsAvailable(ctx, roomID, timeRange)
	if err != nil {
		return errs.Wrap(err, "checking room availability")
	}
	if !available {
		return errs.Wrapf(ErrRoomUnavailable, "room %s %s", roomID, timeRange)
	}
	return nil
}

func (v *Validator) ValidateWorkingHours(start, end TimeOfDay) error {
	switch {
	case start.Before(v.hours.Opening.From):
		return errs.Wrapf(ErrOutsideWorkingHours, "can't start before %s", v.hours.Opening.From)
	case end.After(v.hours.Opening.To):
		return errs.Wrapf(ErrOutsideWorkingHours, "can't end after %s", v.hours.Opening.To)
	}
	return nil
}

func (v *Validator) ValidatePremiereHours(start, end TimeOfDay) error {
	switch {
	case start.Before(v.hours.Premiere.From):
		return errs.Wrapf(ErrOutsidePremiereHours, "can't start before %s", v.hours.Premiere.From)
	case end.After(v.hours.Premiere.To):
		return errs.Wrapf(ErrOutsidePremiereHours, "can't end after %s", v.hours.Premiere.To)
	}
	return nil
}
