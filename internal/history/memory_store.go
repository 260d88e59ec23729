package history

import (
	"context"
	"sync"

	"codeberg.org/vaidya/server/internal/llm"
)

type memoryEntry struct {
	mu    sync.Mutex
	turns []llm.Message
}

// in-process history store with one lock per session
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*memoryEntry),
	}
}

func (s *MemoryStore) entry(sessionID string) *memoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sessionID]
	if !ok {
		e = &memoryEntry{}
		s.sessions[sessionID] = e
	}

	return e
}

func (s *MemoryStore) Append(_ context.Context, sessionID string, limit int, turns ...llm.Message) error {
	e := s.entry(sessionID)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.turns = append(e.turns, turns...)

	if limit > 0 && len(e.turns) > limit {
		trimmed := make([]llm.Message, limit)
		copy(trimmed, e.turns[len(e.turns)-limit:])
		e.turns = trimmed
	}

	return nil
}

func (s *MemoryStore) Turns(_ context.Context, sessionID string) ([]llm.Message, error) {
	s.mu.Lock()
	e, ok := s.sessions[sessionID]
	s.mu.Unlock()

	if !ok {
		return nil, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// copy so callers never alias the stored slice
	out := make([]llm.Message, len(e.turns))
	copy(out, e.turns)

	return out, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
