// Package service contains the business logic for the Aina backend.
// Services validate inputs, enforce the selection rules, and orchestrate
// session mutations. No storage or HTTP concerns live here; services depend
// on the session and on small consumer-side interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aina-travel/backend/internal/domain"
	"github.com/aina-travel/backend/internal/session"
)

// Resolver looks a POI up by identifier. Satisfied by *catalog.Catalog;
// declared here so swipe tests can use a map-backed fake.
type Resolver interface {
	ByID(id string) (domain.POI, bool)
}

// TripAdder routes a POI into the country-keyed trip collection.
// Satisfied by *TripService.
type TripAdder interface {
	Add(ctx context.Context, poi domain.POI) error
}

// SwipeService is the state machine behind every feed gesture. Each applied
// action appends one history event; save and add_to_trip additionally mutate
// a selection set, like and skip are history-only.
type SwipeService struct {
	catalog Resolver
	trips   TripAdder
	session *session.Session
	logger  *slog.Logger
}

// NewSwipeService constructs a SwipeService.
func NewSwipeService(catalog Resolver, trips TripAdder, sess *session.Session, logger *slog.Logger) *SwipeService {
	return &SwipeService{catalog: catalog, trips: trips, session: sess, logger: logger}
}

// Apply records one gesture against one POI.
//
// An unknown action is a validation error. An unknown POI ID is a stale
// reference, logged and silently dropped, with no event recorded; the feed
// may legitimately hold identifiers from an older catalog. For known POIs
// the history event is appended unconditionally, then:
//
//   - save: insert into the library iff not already present (idempotent);
//   - add_to_trip: delegate to the trip grouping rule;
//   - like, skip: history only, no state change.
//
// Nothing here ever removes from the library or a trip; removal is an
// explicit operation on those collections.
func (s *SwipeService) Apply(ctx context.Context, poiID string, action domain.SwipeAction) error {
	if !action.Valid() {
		return fmt.Errorf("%w: unknown action %q", domain.ErrValidation, action)
	}

	poi, ok := s.catalog.ByID(poiID)
	if !ok {
		s.logger.Debug("ignoring swipe on unknown poi", "poi_id", poiID, "action", action)
		return nil
	}

	event := domain.SwipeEvent{POIID: poi.ID, Action: action, Timestamp: time.Now().UTC()}

	switch action {
	case domain.ActionSave:
		err := s.session.Update(ctx, func(state *domain.SessionState) error {
			state.History = append(state.History, event)
			if !state.InLibrary(poi.ID) {
				state.Library = append(state.Library, poi)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("service.SwipeService.Apply: %w", err)
		}
		return nil

	case domain.ActionAddToTrip:
		err := s.session.Update(ctx, func(state *domain.SessionState) error {
			state.History = append(state.History, event)
			return nil
		})
		if err != nil {
			return fmt.Errorf("service.SwipeService.Apply: %w", err)
		}
		if err := s.trips.Add(ctx, poi); err != nil {
			return fmt.Errorf("service.SwipeService.Apply: %w", err)
		}
		return nil

	case domain.ActionLike, domain.ActionSkip:
		err := s.session.Update(ctx, func(state *domain.SessionState) error {
			state.History = append(state.History, event)
			return nil
		})
		if err != nil {
			return fmt.Errorf("service.SwipeService.Apply: %w", err)
		}
		return nil
	}

	// Unreachable: Valid() covers the closed set above.
	return fmt.Errorf("%w: unhandled action %q", domain.ErrValidation, action)
}

// History returns the swipe event log in append order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *SwipeService) History() []domain.SwipeEvent {
	history := s.session.Snapshot().History
	if history == nil {
		return []domain.SwipeEvent{}
	}
	return history
}
