package catalog

import "sync"

// Store holds the current Snapshot behind a pointer swap. Readers always see
// a complete, internally consistent snapshot; a refresh replaces the whole
// pointer, never individual collections.
type Store struct {
	mu       sync.RWMutex
	snapshot *Snapshot
}

func NewStore() *Store {
	return &Store{snapshot: EmptySnapshot()}
}

func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *Store) Replace(snapshot *Snapshot) {
	if snapshot == nil {
		snapshot = EmptySnapshot()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
}
