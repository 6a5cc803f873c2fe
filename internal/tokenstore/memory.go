package tokenstore

import (
	"sync"

	"github.com/okhotnikov/libman/internal/models"
)

// MemoryStore is an in-memory Store used by tests.
type MemoryStore struct {
	mu  sync.Mutex
	rec *Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = &Record{Token: token, User: user}
	return nil
}

func (s *MemoryStore) Load() (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec == nil {
		return nil, nil
	}
	rec := *s.rec
	return &rec, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = nil
	return nil
}
