package score

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps scores for the process lifetime only
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry

	// LoadErr and SaveErr, when set, are returned instead of touching entries
	LoadErr error
	SaveErr error
	saves   int
}

func NewMemoryStore(initial ...Entry) *MemoryStore {
	return &MemoryStore{entries: slices.Clone(initial)}
}

func (s *MemoryStore) Load(ctx context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return Normalize(s.entries), nil
}

func (s *MemoryStore) Save(ctx context.Context, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.entries = Normalize(entries)
	return nil
}

// Saves counts Save calls, successful or not
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
