package roomevent

import (
	"context"
	"time"

	"cinema-scheduler/internal/domain/movie"
	"cinema-scheduler/internal/domain/room"
	"cinema-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// Factory is the only way to create room events; nothing is constructed
// unless validation passes. Every event it builds is expressed in the
// working-hours location, whatever offset the caller used.
type Factory struct {
	validator *Validator
}

func NewFactory(validator *Validator) *Factory {
	return &Factory{validator: validator}
}

func (f *Factory) CreateShow(
	ctx context.Context,
	movieEntity *movie.Movie,
	roomEntity *room.Room,
	showKind ShowKind,
	start time.Time,
) (*Show, error) {
	if !showKind.IsValid() {
		return nil, errs.Wrapf(ErrInvalidShowKind, "%q", showKind)
	}

	start = start.In(f.location())
	timeRange := TimeRange{From: start, To: start.Add(movieEntity.Duration())}

	if err := f.validator.ValidateRoomAvailability(ctx, roomEntity.ID(), timeRange); err != nil {
		return nil, err
	}

	from, to := TimeOfDayOf(timeRange.From), TimeOfDayOf(timeRange.To)
	switch showKind {
	case ShowKindRegular:
		if err := f.validator.ValidateWorkingHours(from, to); err != nil {
			return nil, err
		}
	case ShowKindPremiere:
		if err := f.validator.ValidatePremiereHours(from, to); err != nil {
			return nil, err
		}
	}

	return &Show{
		base:              newBase(roomEntity.ID(), timeRange),
		movieID:           movieEntity.ID(),
		showKind:          showKind,
		requires3DGlasses: movieEntity.Requires3DGlasses(),
	}, nil
}

func (f *Factory) CreateCleaningSlot(ctx context.Context, roomID uuid.UUID, timeRange TimeRange) (*CleaningSlot, error) {
	timeRange = timeRange.In(f.location())
	if err := f.validateRegular(ctx, roomID, timeRange); err != nil {
		return nil, err
	}

	return &CleaningSlot{base: newBase(roomID, timeRange)}, nil
}

func (f *Factory) CreateUnavailability(
	ctx context.Context,
	roomID uuid.UUID,
	reason UnavailabilityReason,
	timeRange TimeRange,
) (*Unavailability, error) {
	if !reason.IsValid() {
		return nil, errs.Wrapf(ErrInvalidReason, "%q", reason)
	}

	timeRange = timeRange.In(f.location())

	if err := f.validateRegular(ctx, roomID, timeRange); err != nil {
		return nil, err
	}

	return &Unavailability{
		base:   newBase(roomID, timeRange),
		reason: reason,
	}, nil
}

func (f *Factory) location() *time.Location {
	return f.validator.hours.location()
}

func (f *Factory) validateRegular(ctx context.Context, roomID uuid.UUID, timeRange TimeRange) error {
	if err := f.validator.ValidateRoomAvailability(ctx, roomID, timeRange); err != nil {
		return err
	}
	return f.validator.ValidateWorkingHours(TimeOfDayOf(timeRange.From), TimeOfDayOf(timeRange.To))
}
