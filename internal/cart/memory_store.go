package cart

import (
	"context"
	"sync"

	"codeberg.org/vaidya/server/internal/catalog"
)

type memoryCart struct {
	mu    sync.Mutex
	items []catalog.Item
}

// in-process cart store with one lock per session
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string]*memoryCart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string]*memoryCart),
	}
}

func (s *MemoryStore) cart(sessionID string) *memoryCart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = &memoryCart{}
		s.carts[sessionID] = c
	}

	return c
}

// returns the session's cart without creating one
func (s *MemoryStore) lookup(sessionID string) (*memoryCart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	return c, ok
}

func (s *MemoryStore) Items(_ context.Context, sessionID string) ([]catalog.Item, error) {
	c, ok := s.lookup(sessionID)
	if !ok {
		return []catalog.Item{}, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]catalog.Item, len(c.items))
	copy(out, c.items)

	return out, nil
}

func (s *MemoryStore) Add(_ context.Context, sessionID string, item catalog.Item) (int, error) {
	c := s.cart(sessionID)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item.Clone())

	return len(c.items), nil
}

func (s *MemoryStore) Remove(_ context.Context, sessionID string, index int) (catalog.Item, int, error) {
	c, ok := s.lookup(sessionID)
	if !ok {
		return nil, 0, ErrIndexOutOfRange
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.items) {
		return nil, len(c.items), ErrIndexOutOfRange
	}

	removed := c.items[index]
	c.items = append(c.items[:index:index], c.items[index+1:]...)

	return removed, len(c.items), nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	c, ok := s.lookup(sessionID)
	if !ok {
		return nil
	}

	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()

	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
