package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aina-travel/backend/internal/domain"
	"github.com/aina-travel/backend/internal/itinerary"
	"github.com/aina-travel/backend/internal/session"
)

// TripService implements the country-keyed trip grouping and the derived
// itinerary view.
type TripService struct {
	session *session.Session
}

// NewTripService constructs a TripService over the shared session.
func NewTripService(sess *session.Session) *TripService {
	return &TripService{session: sess}
}

// Add routes a POI into the trip collection: the first POI from a country
// creates that country's trip ("<country> Adventure"), later POIs from the
// same country append in insertion order. Adding a POI already on its trip
// is a silent no-op, idempotent rather than an error.
func (s *TripService) Add(ctx context.Context, poi domain.POI) error {
	err := s.session.Update(ctx, func(state *domain.SessionState) error {
		if trip := state.TripByCountry(poi.Country); trip != nil {
			if !trip.Contains(poi.ID) {
				trip.Items = append(trip.Items, poi)
			}
			return nil
		}
		state.Trips = append(state.Trips, domain.NewTrip(poi, time.Now().UTC()))
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.TripService.Add: %w", err)
	}
	return nil
}

// AddFromLibrary routes an already-saved POI into the trip collection, the
// library screen's "add to trip" path. The ID resolves against the saved
// library, not the catalog, so imported items qualify too.
// Returns domain.ErrNotFound if the POI is not in the library.
func (s *TripService) AddFromLibrary(ctx context.Context, poiID string) error {
	for _, poi := range s.session.Snapshot().Library {
		if poi.ID == poiID {
			return s.Add(ctx, poi)
		}
	}
	return fmt.Errorf("service.TripService.AddFromLibrary: %w", domain.ErrNotFound)
}

// List returns all trips in creation order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List() []domain.Trip {
	trips := s.session.Snapshot().Trips
	if trips == nil {
		return []domain.Trip{}
	}
	return trips
}

// GetByID returns a single trip.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(id uuid.UUID) (domain.Trip, error) {
	for _, trip := range s.session.Snapshot().Trips {
		if trip.ID == id {
			return trip, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", domain.ErrNotFound)
}

// Remove deletes a trip from the collection. There are no cascading
// effects: the trip held value copies, the catalog and library are untouched.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) Remove(ctx context.Context, id uuid.UUID) error {
	err := s.session.Update(ctx, func(state *domain.SessionState) error {
		for i, trip := range state.Trips {
			if trip.ID == id {
				state.Trips = append(state.Trips[:i], state.Trips[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return fmt.Errorf("service.TripService.Remove: %w", err)
	}
	return nil
}

// RemoveItem takes a POI out of whichever trip holds it. A trip emptied by
// the removal is dropped from the collection.
// Returns domain.ErrNotFound if no trip holds the POI.
func (s *TripService) RemoveItem(ctx context.Context, poiID string) error {
	err := s.session.Update(ctx, func(state *domain.SessionState) error {
		for ti := range state.Trips {
			trip := &state.Trips[ti]
			for ii, item := range trip.Items {
				if item.ID != poiID {
					continue
				}
				trip.Items = append(trip.Items[:ii], trip.Items[ii+1:]...)
				if len(trip.Items) == 0 {
					state.Trips = append(state.Trips[:ti], state.Trips[ti+1:]...)
				}
				return nil
			}
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return fmt.Errorf("service.TripService.RemoveItem: %w", err)
	}
	return nil
}

// Itinerary returns the derived day/slot schedule for one trip, recomputed
// from the trip's current item order on every call.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) Itinerary(id uuid.UUID) ([]domain.ItineraryEntry, error) {
	trip, err := s.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Itinerary: %w", domain.ErrNotFound)
	}
	return itinerary.Generate(trip.Items), nil
}
