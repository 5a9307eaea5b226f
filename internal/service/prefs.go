package service

import (
	"context"
	"fmt"

	"github.com/aina-travel/backend/internal/domain"
	"github.com/aina-travel/backend/internal/session"
)

// PreferenceService manages the onboarding answers. Preferences are captured
// once and read-only thereafter; their presence is what steers a restored
// session past onboarding.
type PreferenceService struct {
	session *session.Session
}

// NewPreferenceService constructs a PreferenceService over the shared session.
func NewPreferenceService(sess *session.Session) *PreferenceService {
	return &PreferenceService{session: sess}
}

// Get returns the stored preferences, or nil when onboarding has not run.
func (s *PreferenceService) Get() *domain.UserPreferences {
	return s.session.Snapshot().Prefs
}

// NeedsOnboarding reports whether onboarding has yet to complete.
func (s *PreferenceService) NeedsOnboarding() bool {
	return s.session.Snapshot().Prefs == nil
}

// Set stores the onboarding answers.
// Returns domain.ErrValidation for an unknown budget tier or when
// preferences were already captured; onboarding runs once.
func (s *PreferenceService) Set(ctx context.Context, prefs domain.UserPreferences) error {
	if !prefs.BudgetRange.Valid() {
		return fmt.Errorf("%w: unknown budget range %q", domain.ErrValidation, prefs.BudgetRange)
	}

	err := s.session.Update(ctx, func(state *domain.SessionState) error {
		if state.Prefs != nil {
			return fmt.Errorf("%w: preferences already set", domain.ErrValidation)
		}
		if prefs.Interests == nil {
			prefs.Interests = []string{}
		}
		if prefs.TravelStyle == nil {
			prefs.TravelStyle = []string{}
		}
		state.Prefs = &prefs
		return nil
	})
	if err != nil {
		return fmt.Errorf("service.PreferenceService.Set: %w", err)
	}
	return nil
}
