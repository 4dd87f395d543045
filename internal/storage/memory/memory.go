package memory

import (
	"sync"

	"eventPortal/internal/models"
)

// Storage holds the in-session ordered event list. There is no persistence:
// contents live for the lifetime of the process. Appends are serialized so
// the id counter stays monotonic even with concurrent HTTP writers.
type Storage struct {
	mu     sync.RWMutex
	events []models.Event
	nextID int
}

func New() *Storage {
	return &Storage{nextID: 1}
}

// NewWithSeed pre-populates the store. Seed ids are reassigned by the
// counter, so seeded entries get 1..len(seed) in order.
func NewWithSeed(seed []models.Event) *Storage {
	s := New()

	for _, event := range seed {
		s.AddEvent(event)
	}

	return s
}

// AddEvent assigns the next id, appends the event and returns the id. The id
// comes from a counter owned by the store, not from the slice length, so it
// stays unique if deletion is ever added.
func (s *Storage) AddEvent(event models.Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = s.nextID
	s.nextID++

	s.events = append(s.events, event)

	return event.ID
}

// GetAllEvents returns the events in insertion order. The slice is a copy;
// callers may filter it freely.
func (s *Storage) GetAllEvents() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.Event, len(s.events))
	copy(events, s.events)

	return events
}
