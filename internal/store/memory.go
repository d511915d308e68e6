// apps/solver/internal/store/memory.go
//
// In-memory session registry for the suggestion service.
// This is a lightweight layer used for ephemeral solving sessions;
// state is intentionally lost when the process restarts (the solver
// persists nothing beyond one run).
//
// Characteristics:
//   - Stores *solver.Session objects keyed by a random hex ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Errors are returned for missing session IDs on Get().

package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// ErrNotFound is returned when a session ID is unknown.
var ErrNotFound = errors.New("store: session not found")

// Store defines the registry interface for solving sessions.
// Implementations may be backed by memory (this package), Redis, etc.
type Store interface {
	// Put registers a session and returns its new ID.
	Put(ctx context.Context, s *solver.Session) (string, error)

	// Get retrieves a session by ID.
	// Returns ErrNotFound if the session does not exist.
	Get(ctx context.Context, id string) (*solver.Session, error)

	// Delete removes a session; removing an unknown ID is a no-op.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex // guards sessions map
	sessions map[string]*solver.Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*solver.Session)}
}

// Put registers the session under a fresh random ID.
func (m *memory) Put(ctx context.Context, s *solver.Session) (string, error) {
	id := randomID()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = s
	return id, nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*solver.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

// Delete drops a session.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// randomID returns a compact 16‑hex‑char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
