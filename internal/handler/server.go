// Package handler implements the HTTP surface of the Aina backend.
// All handlers are methods on Server; methods are split into resource files
// (feed.go, trip.go, etc.) but share the same struct so they can access its
// dependencies. Declaring the Servicer interfaces here, in the consumer
// package, lets handler tests inject mocks without touching the service or
// storage layers.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aina-travel/backend/internal/domain"
	"github.com/aina-travel/backend/internal/service"
)

// FeedProvider is the read-only catalog view the feed endpoints need.
type FeedProvider interface {
	Page(params domain.PaginationParams, city string, category domain.Category) ([]domain.POI, int)
	ByID(id string) (domain.POI, bool)
}

// SwipeServicer defines the gesture operations the swipe handler depends on.
type SwipeServicer interface {
	Apply(ctx context.Context, poiID string, action domain.SwipeAction) error
	History() []domain.SwipeEvent
}

// TripServicer defines the trip operations the trip handler depends on.
type TripServicer interface {
	AddFromLibrary(ctx context.Context, poiID string) error
	List() []domain.Trip
	GetByID(id uuid.UUID) (domain.Trip, error)
	Remove(ctx context.Context, id uuid.UUID) error
	RemoveItem(ctx context.Context, poiID string) error
	Itinerary(id uuid.UUID) ([]domain.ItineraryEntry, error)
}

// LibraryServicer defines the saved-library operations the library handler
// depends on.
type LibraryServicer interface {
	List() []domain.POI
	Grouped() []domain.CityGroup
	Remove(ctx context.Context, poiID string) error
}

// PreferenceServicer defines the onboarding operations the preferences
// handler depends on.
type PreferenceServicer interface {
	Get() *domain.UserPreferences
	NeedsOnboarding() bool
	Set(ctx context.Context, prefs domain.UserPreferences) error
}

// ImportServicer runs the simulated Instagram import.
type ImportServicer interface {
	Run(ctx context.Context) (service.ImportResult, error)
}

// ExportServicer assembles the flat trip export.
type ExportServicer interface {
	Export() []domain.ExportRow
}

// Server implements every API endpoint. Wire it in main.go via Routes().
type Server struct {
	feed    FeedProvider
	swipes  SwipeServicer
	trips   TripServicer
	library LibraryServicer
	prefs   PreferenceServicer
	imports ImportServicer
	exports ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	feed FeedProvider,
	swipes SwipeServicer,
	trips TripServicer,
	library LibraryServicer,
	prefs PreferenceServicer,
	imports ImportServicer,
	exports ExportServicer,
) *Server {
	return &Server{
		feed:    feed,
		swipes:  swipes,
		trips:   trips,
		library: library,
		prefs:   prefs,
		imports: imports,
		exports: exports,
	}
}

// Routes builds the chi router for all endpoints. Middleware is the caller's
// concern; main.go wraps this router with logging, CORS, and recovery.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/session", s.GetSession)

	r.Get("/feed", s.ListFeed)
	r.Get("/feed/{poiID}", s.GetFeedItem)

	r.Post("/swipes", s.CreateSwipe)
	r.Get("/swipes", s.ListSwipes)

	r.Get("/library", s.GetLibrary)
	r.Delete("/library/{poiID}", s.RemoveFromLibrary)

	r.Get("/trips", s.ListTrips)
	r.Get("/trips/{tripID}", s.GetTrip)
	r.Delete("/trips/{tripID}", s.DeleteTrip)
	r.Get("/trips/{tripID}/itinerary", s.GetItinerary)
	r.Post("/trips/items", s.AddTripItem)
	r.Delete("/trips/items/{poiID}", s.RemoveTripItem)

	r.Get("/preferences", s.GetPreferences)
	r.Put("/preferences", s.SetPreferences)

	r.Post("/import", s.RunImport)
	r.Get("/export.csv", s.ExportCSV)

	return r
}
