// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used for development and tests, or when the attempt ledger does not need
// to survive a restart.
//
// Characteristics:
//   - Sessions keyed by ID in a map.
//   - Concurrency-safe via RWMutex; Append is check-and-insert under the write lock.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrSessionOver is returned by Append once a session is won or out of attempts.
	ErrSessionOver = errors.New("store: session over")
	// ErrNotFound is returned by Get for unknown session IDs.
	ErrNotFound = errors.New("store: not found")
)

// Attempt is one recorded guess.
type Attempt struct {
	Word      string
	Won       bool
	CreatedAt time.Time
}

// Session summarizes the attempts recorded for one session ID.
type Session struct {
	ID   string
	Used int  // attempts recorded so far
	Won  bool // last recorded attempt was a win
}

// Store is the ledger of attempts per session.
// Implementations may be backed by memory (this file) or SQLite.
type Store interface {
	// Append records a as the next attempt of session id unless the session
	// is already won or has limit attempts. Returns the updated session.
	Append(ctx context.Context, id string, a Attempt, limit int) (Session, error)

	// Get returns the session summary, or ErrNotFound.
	Get(ctx context.Context, id string) (Session, error)

	Close() error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex          // guards sessions
	sessions map[string][]Attempt // keyed by session ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string][]Attempt)}
}

func (m *memory) Append(ctx context.Context, id string, a Attempt, limit int) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.sessions[id]
	if s := summarize(id, list); s.Won || s.Used >= limit {
		return s, fmt.Errorf("%w: %s", ErrSessionOver, id)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	list = append(list, a)
	m.sessions[id] = list
	return summarize(id, list), nil
}

func (m *memory) Get(ctx context.Context, id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return summarize(id, list), nil
}

func (m *memory) Close() error { return nil }

func summarize(id string, list []Attempt) Session {
	s := Session{ID: id, Used: len(list)}
	if n := len(list); n > 0 {
		s.Won = list[n-1].Won
	}
	return s
}
