package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/aina-travel/backend/internal/domain"
	"github.com/aina-travel/backend/internal/session"
)

// noopPersister satisfies session.Persister for tests that do not care about
// storage; the session's in-memory state is what the assertions read.
type noopPersister struct{}

func (noopPersister) Save(context.Context, domain.SessionState) error { return nil }

// mapResolver is a test double for service.Resolver backed by a plain map.
type mapResolver map[string]domain.POI

func (m mapResolver) ByID(id string) (domain.POI, bool) {
	poi, ok := m[id]
	return poi, ok
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	return session.New(domain.NewSessionState(), noopPersister{}, discardLogger())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func poiFixture(id, city, country string) domain.POI {
	return domain.POI{
		ID:         id,
		City:       city,
		Country:    country,
		Title:      "Fixture " + id,
		PriceRange: "€€",
		Category:   domain.CategoryActivity,
		Zone:       "Centro",
	}
}
