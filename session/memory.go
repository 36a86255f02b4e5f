package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	userID    string
	expiresAt time.Time
}

// MemoryStore is an in-process session store used in tests and single-node
// development where Redis is not available.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Get(ctx context.Context, sessionID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[sessionID]
	if !ok {
		return "", nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(m.sessions, sessionID)
		return "", nil
	}
	return entry.userID, nil
}

func (m *MemoryStore) Set(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[sessionID] = memoryEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}
