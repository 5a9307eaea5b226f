// Package session owns the in-process application state. All selection state
// lives in one explicit struct behind one writer: services express mutations
// as reducer-style closures over the state, and every committed mutation is
// mirrored to the persistence layer. There are no other writers and no
// hidden globals.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aina-travel/backend/internal/domain"
)

// Persister is what the session needs from storage. Declared here, in the
// consumer package, so tests can substitute a recording fake for the Badger
// store.
type Persister interface {
	Save(ctx context.Context, state domain.SessionState) error
}

// Session holds the live SessionState and serializes access to it.
// The HTTP layer serves requests concurrently, so the single-writer
// discipline is enforced with a mutex rather than by convention.
type Session struct {
	mu     sync.Mutex
	state  domain.SessionState
	store  Persister
	logger *slog.Logger
}

// New builds a Session seeded with the state restored at startup.
func New(initial domain.SessionState, store Persister, logger *slog.Logger) *Session {
	return &Session{state: initial, store: store, logger: logger}
}

// Snapshot returns a deep copy of the current state. Readers work on the
// copy; nothing handed out aliases the live slices.
func (s *Session) Snapshot() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Update applies a mutation to the state and mirrors the result to storage.
// The reducer runs against a copy; if it returns an error nothing is
// committed. Persistence is write-through but non-fatal: a failed save is
// logged and the in-memory state stands; no user operation is allowed to
// fail because the disk write did.
func (s *Session) Update(ctx context.Context, apply func(state *domain.SessionState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := apply(&next); err != nil {
		return err
	}
	s.state = next

	if err := s.store.Save(ctx, s.state); err != nil {
		s.logger.Error("failed to persist session state", "error", err)
	}
	return nil
}
