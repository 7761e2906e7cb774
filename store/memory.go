package store

import "sync"

// Memory is an in-process Gateway
// Used by tests and as the fallback when the database is unavailable
type Memory struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemory creates an empty in-memory gateway
func NewMemory() *Memory {
	return &Memory{records: make(map[string]Record)}
}

// Load implements Gateway
func (m *Memory) Load(key string) (Record, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[key]
	if !ok {
		return nil, false, nil
	}
	return rec.Clone(), true, nil
}

// Save implements Gateway
func (m *Memory) Save(key string, rec Record) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = rec.Clone()
	return nil
}

// Len returns the number of stored records
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
