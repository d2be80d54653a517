// internal/store/memory.go
//
// In-memory session registry for the HTTP host.
//
// Characteristics:
//   - Stores *game.Session values keyed by ID in a map.
//   - Update runs a mutation under the write lock, so a session is only ever
//     touched by one request at a time.
//   - Sweep drops sessions created before a cutoff (their tokens have expired).
//   - State is lost when the process exits; nothing is persisted.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordscramble/internal/game"
)

var ErrNotFound = errors.New("store: session not found")

// Store holds live sessions.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *game.Session) error

	// Get returns a snapshot of the session with the given ID.
	Get(ctx context.Context, id string) (game.Snapshot, error)

	// Update runs fn on the session with exclusive access.
	// fn's error is returned unchanged.
	Update(ctx context.Context, id string, fn func(*game.Session) error) error

	// Delete drops a session. Missing IDs are not an error.
	Delete(ctx context.Context, id string) error

	// Sweep deletes sessions created before cutoff and returns how many went.
	Sweep(ctx context.Context, cutoff time.Time) int

	// Len reports how many sessions are held.
	Len() int
}

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*game.Session)}
}

func (m *memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (game.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return game.Snapshot{}, ErrNotFound
	}
	return s.Snapshot(), nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	return fn(s)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, cutoff time.Time) int {
	m.mu.RLock()
	var expired []string
	for id, s := range m.sessions {
		if s.CreatedAt.Before(cutoff) {
			expired = append(expired, id)
		}
	}
	m.mu.RUnlock()

	for _, id := range expired {
		_ = m.Delete(ctx, id)
	}
	return len(expired)
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
