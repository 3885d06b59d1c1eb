package repositories

import (
	"fmt"
	"sync"

	"tsena/internal/models"
)

// KeyValueStore is the durable slot the identity store persists the
// session record into. Get returns models.ErrNotFound for absent keys.
type KeyValueStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// InMemoryKeyValueStore is a map-backed KeyValueStore for tests.
type InMemoryKeyValueStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewInMemoryKeyValueStore creates a new InMemoryKeyValueStore.
func NewInMemoryKeyValueStore() *InMemoryKeyValueStore {
	return &InMemoryKeyValueStore{
		entries: make(map[string][]byte),
	}
}

func (s *InMemoryKeyValueStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, fmt.Errorf("key %s: %w", key, models.ErrNotFound)
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *InMemoryKeyValueStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.entries[key] = stored
	return nil
}

func (s *InMemoryKeyValueStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}
