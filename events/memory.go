package events

import (
	"context"
	"sync"
)

// MemorySink captures events in memory for tests and local inspection.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

// NewMemorySink creates an empty capturing sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Emit records the event.
func (s *MemorySink) Emit(ctx context.Context, e Event) {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
}

// Events returns a copy of all captured events in emission order.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Named returns the captured events carrying the given name.
func (s *MemorySink) Named(name string) []Event {
	var out []Event
	for _, e := range s.Events() {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}
