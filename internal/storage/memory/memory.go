// Package memory provides an in-process implementation of storage.Slot.
// Values live only as long as the process; it is used in tests and for
// ephemeral runs.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/creditline/internal/storage"
)

var _ storage.Slot = (*Slot)(nil)

// Slot is a map-backed storage.Slot. It is safe for concurrent use.
type Slot struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// New returns an empty Slot.
func New() *Slot {
	return &Slot{values: make(map[string][]byte)}
}

// Load returns a copy of the value stored under key.
func (s *Slot) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Save stores a copy of value under key.
func (s *Slot) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Close is a no-op.
func (s *Slot) Close() error {
	return nil
}
