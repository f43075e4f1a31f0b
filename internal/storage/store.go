package storage

import (
	"sync"
)

// Slot names for the two persisted best values.
const (
	KeyBestScore  = "best_score"
	KeyBestHearts = "best_hearts"
)

// BestStore is durable key-value storage for integer best values.
// Best returns 0 for a slot that was never written.
type BestStore interface {
	Best(key string) (int, error)
	SetBest(key string, value int) error
}

// MemoryStore is a BestStore kept in process memory.
// Used when the database cannot be opened and in tests.
type MemoryStore struct {
	mu    sync.Mutex
	bests map[string]int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bests: make(map[string]int)}
}

// Best returns the stored value for key, or 0.
func (m *MemoryStore) Best(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bests[key], nil
}

// SetBest stores value for key. Lower values never replace higher ones.
func (m *MemoryStore) SetBest(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value > m.bests[key] {
		m.bests[key] = value
	}
	return nil
}

var (
	_ BestStore = (*MemoryStore)(nil)
	_ BestStore = (*Store)(nil)
)
