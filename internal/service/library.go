package service

import (
	"context"
	"fmt"

	"github.com/aina-travel/backend/internal/domain"
	"github.com/aina-travel/backend/internal/session"
)

// LibraryService exposes the saved library: reads grouped by city for
// display, plus the explicit removal the swipe engine never performs.
type LibraryService struct {
	session *session.Session
}

// NewLibraryService constructs a LibraryService over the shared session.
func NewLibraryService(sess *session.Session) *LibraryService {
	return &LibraryService{session: sess}
}

// List returns the saved library in save order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *LibraryService) List() []domain.POI {
	library := s.session.Snapshot().Library
	if library == nil {
		return []domain.POI{}
	}
	return library
}

// Grouped returns the library partitioned by city, cities in first-save
// order. An empty library yields an empty (non-nil) group list.
func (s *LibraryService) Grouped() []domain.CityGroup {
	return domain.GroupByCity(s.session.Snapshot().Library)
}

// Remove takes a POI out of the saved library. Trips holding the same POI
// are unaffected; library and trip membership are independent.
// Returns domain.ErrNotFound if the POI is not in the library.
func (s *LibraryService) Remove(ctx context.Context, poiID string) error {
	err := s.session.Update(ctx, func(state *domain.SessionState) error {
		for i, item := range state.Library {
			if item.ID == poiID {
				state.Library = append(state.Library[:i], state.Library[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return fmt.Errorf("service.LibraryService.Remove: %w", err)
	}
	return nil
}
