package roomevent

import (
	"github.com/google/uuid"
)

// RoomEvent is implemented only by *Show, *CleaningSlot and *Unavailability.
type RoomEvent interface {
	ID() uuid.UUID
	RoomID() uuid.UUID
	TimeRange() TimeRange
	Kind() Kind

	roomEvent()
}

type base struct {
	id        uuid.UUID
	roomID    uuid.UUID
	timeRange TimeRange
}

func newBase(roomID uuid.UUID, timeRange TimeRange) base {
	return base{
		id:        uuid.New(),
		roomID:    roomID,
		timeRange: timeRange,
	}
}

func (b base) ID() uuid.UUID        { return b.id }
func (b base) RoomID() uuid.UUID    { return b.roomID }
func (b base) TimeRange() TimeRange { return b.timeRange }
func (b base) roomEvent()           {}

type Show struct {
	base
	movieID           uuid.UUID
	showKind          ShowKind
	requires3DGlasses bool
}

func (s *Show) Kind() Kind              { return KindShow }
func (s *Show) MovieID() uuid.UUID      { return s.movieID }
func (s *Show) ShowKind() ShowKind      { return s.showKind }
func (s *Show) Requires3DGlasses() bool { return s.requires3DGlasses }

type CleaningSlot struct {
	base
}

func (c *CleaningSlot) Kind() Kind { return KindCleaning }

type Unavailability struct {
	base
	reason UnavailabilityReason
}

func (u *Unavailability) Kind() Kind                   { return KindUnavailability }
func (u *Unavailability) Reason() UnavailabilityReason { return u.reason }

// ReconstructShow rebuilds a persisted show without validation.
func ReconstructShow(id, roomID uuid.UUID, timeRange TimeRange, movieID uuid.UUID, showKind ShowKind, requires3DGlasses bool) *Show {
	return &Show{
		base:              base{id: id, roomID: roomID, timeRange: timeRange},
		movieID:           movieID,
		showKind:          showKind,
		requires3DGlasses: requires3DGlasses,
	}
}

func ReconstructCleaningSlot(id, roomID uuid.UUID, timeRange TimeRange) *CleaningSlot {
	return &CleaningSlot{base: base{id: id, roomID: roomID, timeRange: timeRange}}
}

func ReconstructUnavailability(id, roomID uuid.UUID, timeRange TimeRange, reason UnavailabilityReason) *Unavailability {
	return &Unavailability{
		base:   base{id: id, roomID: roomID, timeRange: timeRange},
		reason: reason,
	}
}
