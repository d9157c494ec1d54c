package cart

import (
	"context"
	"sync"
)

// MemoryStore keeps carts in process memory. Used in tests and as a
// fallback when no Redis address is configured.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]uint)}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, ok := s.carts[sessionID]
	if !ok {
		return &Cart{}, nil
	}
	copied := make([]uint, len(ids))
	copy(copied, ids)
	return &Cart{IDs: copied}, nil
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, c *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.IsEmpty() {
		delete(s.carts, sessionID)
		return nil
	}
	copied := make([]uint, len(c.IDs))
	copy(copied, c.IDs)
	s.carts[sessionID] = copied
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
