package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/MrSnakeDoc/songjournal/internal/store"
)

// ErrWriteFailed is returned by Write after FailWrites(true).
var ErrWriteFailed = errors.New("memory slot: write refused")

// Slot keeps the journal payload in process memory.
// Nothing survives a restart; used for tests and throwaway runs.
type Slot struct {
	mu         sync.Mutex
	data       []byte
	set        bool
	failWrites bool
	writes     int
}

// NewSlot creates an empty slot.
func NewSlot() *Slot {
	return &Slot{}
}

// NewSlotWith creates a slot pre-filled with data.
func NewSlotWith(data []byte) *Slot {
	s := &Slot{}
	s.data = append([]byte(nil), data...)
	s.set = true
	return s
}

func (s *Slot) Read(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.set {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), s.data...), nil
}

func (s *Slot) Write(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWrites {
		return ErrWriteFailed
	}
	s.data = append([]byte(nil), data...)
	s.set = true
	s.writes++
	return nil
}

// FailWrites makes subsequent writes fail, simulating a full quota.
func (s *Slot) FailWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = fail
}

// Writes returns the number of successful writes.
func (s *Slot) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Describe names the backend for status endpoints.
func (s *Slot) Describe() string { return "memory" }
