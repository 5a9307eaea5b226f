package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/aina-travel/backend/internal/domain"
	"github.com/aina-travel/backend/internal/handler"
	"github.com/aina-travel/backend/internal/service"
)

// Hand-written test doubles, one per Servicer interface. Each method is a
// function field; set only the ones your test needs. No mock generation
// library required for interfaces this small.

type mockFeed struct {
	page func(params domain.PaginationParams, city string, category domain.Category) ([]domain.POI, int)
	byID func(id string) (domain.POI, bool)
}

func (m *mockFeed) Page(p domain.PaginationParams, city string, cat domain.Category) ([]domain.POI, int) {
	return m.page(p, city, cat)
}
func (m *mockFeed) ByID(id string) (domain.POI, bool) { return m.byID(id) }

type mockSwipes struct {
	apply   func(ctx context.Context, poiID string, action domain.SwipeAction) error
	history func() []domain.SwipeEvent
}

func (m *mockSwipes) Apply(ctx context.Context, poiID string, action domain.SwipeAction) error {
	return m.apply(ctx, poiID, action)
}
func (m *mockSwipes) History() []domain.SwipeEvent { return m.history() }

type mockTrips struct {
	addFromLibrary func(ctx context.Context, poiID string) error
	list           func() []domain.Trip
	getByID        func(id uuid.UUID) (domain.Trip, error)
	remove         func(ctx context.Context, id uuid.UUID) error
	removeItem     func(ctx context.Context, poiID string) error
	itinerary      func(id uuid.UUID) ([]domain.ItineraryEntry, error)
}

func (m *mockTrips) AddFromLibrary(ctx context.Context, poiID string) error {
	return m.addFromLibrary(ctx, poiID)
}
func (m *mockTrips) List() []domain.Trip                       { return m.list() }
func (m *mockTrips) GetByID(id uuid.UUID) (domain.Trip, error) { return m.getByID(id) }
func (m *mockTrips) Remove(ctx context.Context, id uuid.UUID) error {
	return m.remove(ctx, id)
}
func (m *mockTrips) RemoveItem(ctx context.Context, poiID string) error {
	return m.removeItem(ctx, poiID)
}
func (m *mockTrips) Itinerary(id uuid.UUID) ([]domain.ItineraryEntry, error) {
	return m.itinerary(id)
}

type mockLibrary struct {
	list    func() []domain.POI
	grouped func() []domain.CityGroup
	remove  func(ctx context.Context, poiID string) error
}

func (m *mockLibrary) List() []domain.POI           { return m.list() }
func (m *mockLibrary) Grouped() []domain.CityGroup  { return m.grouped() }
func (m *mockLibrary) Remove(ctx context.Context, poiID string) error {
	return m.remove(ctx, poiID)
}

type mockPrefs struct {
	get             func() *domain.UserPreferences
	needsOnboarding func() bool
	set             func(ctx context.Context, prefs domain.UserPreferences) error
}

func (m *mockPrefs) Get() *domain.UserPreferences { return m.get() }
func (m *mockPrefs) NeedsOnboarding() bool        { return m.needsOnboarding() }
func (m *mockPrefs) Set(ctx context.Context, prefs domain.UserPreferences) error {
	return m.set(ctx, prefs)
}

type mockImports struct {
	run func(ctx context.Context) (service.ImportResult, error)
}

func (m *mockImports) Run(ctx context.Context) (service.ImportResult, error) { return m.run(ctx) }

type mockExports struct {
	export func() []domain.ExportRow
}

func (m *mockExports) Export() []domain.ExportRow { return m.export() }

// compile-time checks: every mock must satisfy its handler interface.
var (
	_ handler.FeedProvider       = (*mockFeed)(nil)
	_ handler.SwipeServicer      = (*mockSwipes)(nil)
	_ handler.TripServicer       = (*mockTrips)(nil)
	_ handler.LibraryServicer    = (*mockLibrary)(nil)
	_ handler.PreferenceServicer = (*mockPrefs)(nil)
	_ handler.ImportServicer     = (*mockImports)(nil)
	_ handler.ExportServicer     = (*mockExports)(nil)
)

// ---- helpers ---------------------------------------------------------------

// deps bundles the mocks so tests can override just one of them.
type deps struct {
	feed    *mockFeed
	swipes  *mockSwipes
	trips   *mockTrips
	library *mockLibrary
	prefs   *mockPrefs
	imports *mockImports
	exports *mockExports
}

// newDeps returns a deps with every mock present but no behaviour set;
// calling an unset method panics, which points straight at the missing stub.
func newDeps() *deps {
	return &deps{
		feed:    &mockFeed{},
		swipes:  &mockSwipes{},
		trips:   &mockTrips{},
		library: &mockLibrary{},
		prefs:   &mockPrefs{},
		imports: &mockImports{},
		exports: &mockExports{},
	}
}

// newHTTPHandler wires a Server with the given mocks into its chi router,
// mirroring exactly how main.go wires it in production.
func newHTTPHandler(d *deps) http.Handler {
	srv := handler.NewServer(d.feed, d.swipes, d.trips, d.library, d.prefs, d.imports, d.exports)
	return srv.Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func poiFixture(id, city, country string) domain.POI {
	return domain.POI{
		ID:       id,
		City:     city,
		Country:  country,
		Title:    "Fixture " + id,
		Category: domain.CategoryActivity,
	}
}

func decodeJSON(t *testing.T, body *bytes.Buffer, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body.Bytes(), v))
}
