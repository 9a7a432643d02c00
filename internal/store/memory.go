// apps/go-server/internal/store/memory.go
//
// In-memory session store.
// A Session carries everything the original browser page kept in globals:
// the current word-builder round and the quiz progress.
//
// Characteristics:
//   - Sessions keyed by ID in a map, guarded by an RWMutex.
//   - Each Session has its own mutex; handlers hold it while mutating.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordbuilder/apps/go-server/internal/game"
	"github.com/robalobadob/wordbuilder/apps/go-server/internal/quiz"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Session is the per-player state.
type Session struct {
	sync.Mutex
	ID        string
	Round     *game.Round // nil until the first round starts
	Quiz      *quiz.Quiz  // nil until the quiz is opened
	UpdatedAt time.Time
}

// NewSession returns an empty session with a fresh ID.
func NewSession() *Session {
	return &Session{ID: uuid.NewString(), UpdatedAt: time.Now()}
}

// Touch marks the session as used. Caller holds the session lock.
func (s *Session) Touch() { s.UpdatedAt = time.Now() }

// Store defines the persistence interface for sessions.
type Store interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session; unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Sweep drops sessions idle for longer than maxIdle and returns how many.
	Sweep(ctx context.Context, maxIdle time.Duration) int
}

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		s.Lock()
		idle := s.UpdatedAt.Before(cutoff)
		s.Unlock()
		if idle {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}
