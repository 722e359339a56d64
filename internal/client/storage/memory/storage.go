// Package memory is a map-backed slot storage that lives for one process.
package memory

import (
	"context"
	"sync"

	"github.com/iudanet/qrninja/internal/client/storage"
)

// Ensure, that Storage does implement storage.KeyValueStorage.
var _ storage.KeyValueStorage = (*Storage)(nil)

// Storage keeps slots in memory.
type Storage struct {
	slots  map[string][]byte
	mu     sync.RWMutex
	closed bool
}

// New creates an empty in-memory storage.
func New() *Storage {
	return &Storage{slots: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}
	v, ok := s.slots[key]
	if !ok {
		return nil, storage.ErrSlotNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put stores a copy of value under key.
func (s *Storage) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}
	s.slots[key] = append([]byte{}, value...)
	return nil
}

// Close drops all slots.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.slots = nil
	return nil
}
