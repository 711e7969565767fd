package feed

import (
	"context"
	"sync"
)

// StubSource is an in-memory Source for tests.
type StubSource struct {
	mu     sync.RWMutex
	rows   map[Collection][]Row
	errors map[Collection]error
}

func NewStubSource() *StubSource {
	return &StubSource{
		rows:   make(map[Collection][]Row),
		errors: make(map[Collection]error),
	}
}

func (s *StubSource) SetRows(collection Collection, rows []Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[collection] = rows
}

func (s *StubSource) SetError(collection Collection, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors[collection] = err
}

func (s *StubSource) Fetch(_ context.Context, collection Collection) ([]Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.errors[collection]; err != nil {
		return nil, err
	}
	return s.rows[collection], nil
}
