// Package domain contains the core data types for the Aina travel-discovery
// backend. This package has zero external dependencies beyond uuid and is
// imported by every other internal package (catalog, store, service, handler).
package domain

// Category classifies a point of interest. The set is closed; values outside
// it are rejected at catalog load.
type Category string

const (
	CategoryStay      Category = "stay"
	CategoryFood      Category = "food"
	CategoryActivity  Category = "activity"
	CategoryTransport Category = "transport"
	CategoryNightlife Category = "nightlife"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryStay, CategoryFood, CategoryActivity, CategoryTransport, CategoryNightlife:
		return true
	}
	return false
}

// POI is a single discoverable place or activity shown in the feed.
// POIs are immutable catalog records: created once at catalog load, never
// mutated. The catalog owns POI identity and content; the saved library and
// trips hold value copies, which is safe precisely because POIs never change.
type POI struct {
	ID            string   `json:"id"`
	City          string   `json:"city"`
	Country       string   `json:"country"`
	Title         string   `json:"title"`
	ShortDesc     string   `json:"shortDesc"`
	PriceRange    string   `json:"priceRange"`
	Tags          []string `json:"tags"`
	CreatorHandle string   `json:"creatorHandle"`
	Media         string   `json:"mediaPlaceholder"`
	Category      Category `json:"category"`
	// Zone is a neighbourhood label used only for display and grouping.
	// It carries no geographic meaning and feeds no distance computation.
	Zone string `json:"zone"`
}
