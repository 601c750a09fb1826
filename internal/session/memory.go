package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps buffers in a process-local map. Entries idle for longer
// than the TTL are treated as absent and dropped on the next access.
type MemoryStore struct {
	mu    sync.Mutex
	items map[int64]*Session
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryStore creates a MemoryStore. A non-positive ttl uses DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		items: make(map[int64]*Session),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, userID int64) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.items[userID]
	if !ok {
		return nil, ErrNoSession
	}
	if m.now().Sub(s.UpdatedAt) > m.ttl {
		delete(m.items, userID)
		return nil, ErrNoSession
	}
	return s.Clone(), nil
}

func (m *MemoryStore) Put(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := s.Clone()
	c.UpdatedAt = m.now()
	m.items[s.UserID] = c
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, userID)
	return nil
}

// Sweep removes every expired buffer and returns how many were dropped.
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	now := m.now()
	for id, s := range m.items {
		if now.Sub(s.UpdatedAt) > m.ttl {
			delete(m.items, id)
			n++
		}
	}
	return n
}

// Len reports the number of stored buffers, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
