package storage

import "sync"

// MemoryStore is a trivial in-process StateStore implementation useful for
// tests, examples and hosts that restart per session. It keeps all entries in
// a nested map guarded by an RWMutex. Data is copied on save / retrieval to
// avoid accidental external mutation of internal buffers.
//
// Layout: scope -> key -> raw bytes
//
// This implementation is intentionally minimal; it does not enforce retention
// limits, size quotas, or eviction. For state that must survive process
// restarts, use FileStore.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]map[string][]byte // scope -> key -> data
}

// NewMemoryStore returns an empty in-memory state store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]map[string][]byte)}
}

// Save stores (or overwrites) the bytes for the given scope and key.
// The input slice is copied before storage.
func (s *MemoryStore) Save(scope, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[scope]; !exists {
		s.entries[scope] = make(map[string][]byte)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	s.entries[scope][key] = cp
	return nil
}

// Get returns a copy of the stored bytes or ErrNotFound.
func (s *MemoryStore) Get(scope, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.entries[scope]
	if !ok {
		return nil, ErrNotFound
	}
	data, ok := m[key]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

// List returns the keys stored for the scope. The slice is a snapshot and
// safe for caller mutation.
func (s *MemoryStore) List(scope string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.entries[scope]
	if !ok {
		return []string{}, nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys, nil
}

// Delete removes the entry if present or returns ErrNotFound.
func (s *MemoryStore) Delete(scope, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.entries[scope]
	if !ok {
		return ErrNotFound
	}
	if _, ok := m[key]; !ok {
		return ErrNotFound
	}
	delete(m, key)
	return nil
}
