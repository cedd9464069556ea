package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/vellaperfumeria/storefront/internal/domain/cart"
)

// InMemoryCartStore implements CartStore with a process-local map. It is
// used in tests and as the degraded mode when Redis is not configured;
// snapshots then live only as long as the process
type InMemoryCartStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewInMemoryCartStore creates an empty in-memory cart store
func NewInMemoryCartStore() *InMemoryCartStore {
	return &InMemoryCartStore{
		snapshots: make(map[string][]byte),
	}
}

// Load implements CartStore
func (s *InMemoryCartStore) Load(_ context.Context, sessionID string) (cart.Cart, error) {
	s.mu.RLock()
	raw, ok := s.snapshots[sessionID]
	s.mu.RUnlock()

	if !ok {
		return cart.New(), nil
	}

	var c cart.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return cart.New(), nil
	}
	return c, nil
}

// Save implements CartStore
func (s *InMemoryCartStore) Save(_ context.Context, sessionID string, c cart.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snapshots[sessionID] = raw
	s.mu.Unlock()
	return nil
}

// Corrupt overwrites a session's snapshot with undecodable bytes. Test
// hook for asserting the empty-cart recovery path
func (s *InMemoryCartStore) Corrupt(sessionID string) {
	s.mu.Lock()
	s.snapshots[sessionID] = []byte("{not json")
	s.mu.Unlock()
}

// Len returns the number of stored snapshots
func (s *InMemoryCartStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshots)
}

// Ensure InMemoryCartStore implements CartStore
var _ CartStore = (*InMemoryCartStore)(nil)
