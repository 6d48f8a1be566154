package readstore

import (
	"context"

	"cinema-scheduler/internal/domain/roomevent"
	"cinema-scheduler/internal/pkg/ptr"
	"cinema-scheduler/internal/usecase/queries"
)

type RoomEventSource interface {
	EventsForDays(ctx context.Context, days []roomevent.Day) ([]roomevent.RoomEvent, error)
}

type BoardReadStore struct {
	source RoomEventSource
}

func NewBoardReadStore(source RoomEventSource) *BoardReadStore {
	return &BoardReadStore{source: source}
}

func (s *BoardReadStore) FindForDays(ctx context.Context, days []roomevent.Day) ([]queries.RoomEventRecord, error) {
	events, err := s.source.EventsForDays(ctx, days)
	if err != nil {
		return nil, err
	}

	records := make([]queries.RoomEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, queries.RoomEventRecord{
			RoomID: e.RoomID(),
			Event:  toEventView(e),
		})
	}
	return records, nil
}

func toEventView(event roomevent.RoomEvent) queries.EventView {
	tr := event.TimeRange()
	view := queries.EventView{
		ID:   event.ID(),
		Kind: event.Kind().String(),
		From: tr.From,
		To:   tr.To,
	}

	switch e := event.(type) {
	case *roomevent.Show:
		view.MovieID = ptr.Of(e.MovieID())
		view.Requires3DGlasses = ptr.Of(e.Requires3DGlasses())
		view.ShowKind = ptr.Of(e.ShowKind().String())
	case *roomevent.Unavailability:
		view.Reason = ptr.Of(e.Reason().String())
	case *roomevent.CleaningSlot:
		// no kind-specific fields
	}
	return view
}
