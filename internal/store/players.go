package store

import (
	"sync"

	"mafia/internal/domain"
)

// PlayerStore keeps the canonical record of every identity ever seen.
// Sessions never share player instances: each attach hands out a fresh one,
// so joining a new chat cannot mutate a game the identity already sits in.
type PlayerStore struct {
	players map[string]*domain.Player
	mu      sync.RWMutex
}

// NewPlayerStore creates a new player store
func NewPlayerStore() *PlayerStore {
	return &PlayerStore{
		players: make(map[string]*domain.Player),
	}
}

// Attach returns a session-local player for the identity. The canonical
// record keeps the latest display name; per-game state (role, alive,
// revealed) starts clean on the returned instance.
func (s *PlayerStore) Attach(id, name string) *domain.Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.players[id]
	if !ok {
		record = domain.NewPlayer(id, name)
		s.players[id] = record
	}
	record.Name = name

	return domain.NewPlayer(id, name)
}

// Get retrieves the canonical record for an identity
func (s *PlayerStore) Get(id string) (*domain.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	return p, ok
}

// Count returns the number of known identities
func (s *PlayerStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}
