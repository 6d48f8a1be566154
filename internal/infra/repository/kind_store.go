package repository

import (
	"sync"

	"cinema-scheduler/internal/domain/roomevent"

	"github.com/google/uuid"
)

// kindStore keeps one event kind. With a real database each store becomes a
// query filtered on the event kind.
type kindStore[T roomevent.RoomEvent] struct {
	mu     sync.RWMutex
	events map[uuid.UUID]T
}

func newKindStore[T roomevent.RoomEvent]() *kindStore[T] {
	return &kindStore[T]{events: make(map[uuid.UUID]T)}
}

func (s *kindStore[T]) save(event T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ID()] = event
}

func (s *kindStore[T]) remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return false
	}
	delete(s.events, id)
	return true
}

func (s *kindStore[T]) byRoomOnDay(roomID uuid.UUID, day roomevent.Day) []roomevent.RoomEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []roomevent.RoomEvent
	for _, e := range s.events {
		if e.RoomID() == roomID && roomevent.DayOf(e.TimeRange().From) == day {
			result = append(result, e)
		}
	}
	return result
}

func (s *kindStore[T]) forDays(days map[roomevent.Day]struct{}) []roomevent.RoomEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []roomevent.RoomEvent
	for _, e := range s.events {
		tr := e.TimeRange()
		_, startOK := days[roomevent.DayOf(tr.From)]
		_, endOK := days[roomevent.DayOf(tr.To)]
		if startOK && endOK {
			result = append(result, e)
		}
	}
	return result
}

func (s *kindStore[T]) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[uuid.UUID]T)
}

func (s *kindStore[T]) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
