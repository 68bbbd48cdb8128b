package prefs

import (
	"context"
	"sync"
)

type scoreKey struct {
	userID      string
	foreignTerm string
	suggestion  string
	contextTag  string
}

// MemoryStore, veritabanı yapılandırılmadan çalışılan geliştirme modu ve
// testler için kilitli bellek-içi depodur. Süreç sonlanınca puanlar kaybolur.
type MemoryStore struct {
	mu     sync.Mutex
	scores map[scoreKey]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[scoreKey]int)}
}

func (s *MemoryStore) AddScore(_ context.Context, userID, foreignTerm, suggestion, contextTag string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[scoreKey{userID, foreignTerm, suggestion, contextTag}] += delta
	return nil
}

func (s *MemoryStore) GetScores(_ context.Context, userID, foreignTerm, contextTag string) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[string]int{}
	for k, v := range s.scores {
		if k.userID == userID && k.foreignTerm == foreignTerm && k.contextTag == contextTag {
			out[k.suggestion] = v
		}
	}
	return out, nil
}
