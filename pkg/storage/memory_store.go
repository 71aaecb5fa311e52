package storage

import (
	"errors"
	"sync"
)

// MemoryStore keeps batch results in RAM behind a RWMutex. Suitable for a
// single-process server; results vanish on restart.
type MemoryStore struct {
	data map[string]*BatchResult
	mu   sync.RWMutex
}

// NewMemoryStore creates an empty in-memory batch store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]*BatchResult),
	}
}

// GetBatch returns the stored batch for an ID, or nil when absent.
func (m *MemoryStore) GetBatch(id string) (*BatchResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if result, exists := m.data[id]; exists {
		return result, nil
	}
	return nil, nil
}

// SaveBatch stores a batch result, replacing any previous one for the ID.
func (m *MemoryStore) SaveBatch(result *BatchResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if result == nil {
		return errors.New("batch result must not be nil")
	}
	if result.ID == "" {
		return errors.New("batch result must carry an ID")
	}

	m.data[result.ID] = result
	return nil
}
