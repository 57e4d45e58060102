package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore é usada quando não há Redis configurado. Revogações se
// perdem ao reiniciar o processo.
type MemoryStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryStore) Revoke(_ context.Context, id string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purge()
	s.revoked[id] = until
	return nil
}

func (s *MemoryStore) IsRevoked(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[id]
	if !ok {
		return false, nil
	}
	if !s.now().Before(until) {
		delete(s.revoked, id)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) purge() {
	now := s.now()
	for id, until := range s.revoked {
		if !now.Before(until) {
			delete(s.revoked, id)
		}
	}
}

var _ RevocationStore = (*MemoryStore)(nil)
