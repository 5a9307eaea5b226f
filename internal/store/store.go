// Package store persists the session state in an embedded Badger database.
// The whole of the user's state is one JSON record under one fixed key,
// overwritten on every mutation: the durability contract is last-write-wins
// on a single blob, not a transactional schema.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/aina-travel/backend/internal/domain"
)

// keySession is the fixed key the session record lives under.
const keySession = "session:state"

// SessionStore wraps a Badger database holding the single session record.
type SessionStore struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open opens (or creates) the Badger database at path.
// SyncWrites keeps the record safe across crashes; Badger's own logging is
// disabled in favour of our slog output.
func Open(path string, logger *slog.Logger) (*SessionStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	opts.SyncWrites = true
	opts.CompactL0OnClose = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store.Open: %w", err)
	}
	return &SessionStore{db: db, logger: logger}, nil
}

// Close flushes and closes the underlying database.
func (s *SessionStore) Close() error {
	return s.db.Close()
}

// persistedState is the on-disk shape of the session record. It carries both
// the canonical grouped `trips` field and the legacy flat `tripItems` field
// observed in earlier records; Load regroups the legacy shape on read.
type persistedState struct {
	Library []domain.POI            `json:"savedItems"`
	Trips   []domain.Trip           `json:"trips,omitempty"`
	Legacy  []domain.POI            `json:"tripItems,omitempty"`
	Prefs   *domain.UserPreferences `json:"userPrefs,omitempty"`
	History []domain.SwipeEvent     `json:"swipeHistory,omitempty"`
}

// Load reads the session record. A missing record yields empty defaults; a
// record that fails to parse is logged and likewise yields empty defaults, so
// corrupt state must never prevent startup. Load never returns an error for
// bad data, only for database-level failures.
func (s *SessionStore) Load(ctx context.Context) (domain.SessionState, error) {
	if err := ctx.Err(); err != nil {
		return domain.SessionState{}, err
	}

	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySession))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return domain.SessionState{}, fmt.Errorf("store.SessionStore.Load: %w", err)
	}

	if raw == nil {
		return domain.NewSessionState(), nil
	}

	var p persistedState
	if err := json.Unmarshal(raw, &p); err != nil {
		s.logger.Warn("session record unparsable, starting from empty state", "error", err)
		return domain.NewSessionState(), nil
	}

	state := domain.SessionState{
		Library: p.Library,
		Trips:   p.Trips,
		Prefs:   p.Prefs,
		History: p.History,
	}
	// Missing sub-fields default to empty.
	if state.Library == nil {
		state.Library = []domain.POI{}
	}
	if state.History == nil {
		state.History = []domain.SwipeEvent{}
	}
	if state.Trips == nil {
		state.Trips = []domain.Trip{}
	}

	// Legacy records stored a flat trip-item list. Regroup it through the
	// canonical grouping rule; the next Save writes the grouped shape.
	if len(state.Trips) == 0 && len(p.Legacy) > 0 {
		state.Trips = domain.GroupIntoTrips(p.Legacy, time.Now().UTC())
		s.logger.Info("migrated legacy flat trip items", "items", len(p.Legacy), "trips", len(state.Trips))
	}

	return state, nil
}

// Save overwrites the session record with the given state.
func (s *SessionStore) Save(ctx context.Context, state domain.SessionState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(persistedState{
		Library: state.Library,
		Trips:   state.Trips,
		Prefs:   state.Prefs,
		History: state.History,
	})
	if err != nil {
		return fmt.Errorf("store.SessionStore.Save: marshal: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySession), data)
	})
	if err != nil {
		return fmt.Errorf("store.SessionStore.Save: %w", err)
	}
	return nil
}
