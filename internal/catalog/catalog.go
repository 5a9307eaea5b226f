// Package catalog holds the static, read-only set of points of interest the
// feed serves, embedded at compile time. Shipping the catalog inside the
// binary means the feed and the running code are always in sync, the same way
// the API would embed its OpenAPI document.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/aina-travel/backend/internal/domain"
)

//go:embed catalog.json
var catalogJSON []byte

//go:embed instagram.json
var instagramJSON []byte

// Catalog is an ordered, immutable collection of POIs with ID lookup.
// It is built once at startup and shared by reference; it is never mutated,
// so concurrent reads need no locking.
type Catalog struct {
	pois []domain.POI
	byID map[string]domain.POI
}

// Load parses the embedded feed catalog. It validates that IDs are unique
// and categories are drawn from the closed set; a bad catalog is a build
// defect, so Load fails hard rather than skipping records.
func Load() (*Catalog, error) {
	return parse(catalogJSON)
}

// LoadImportSource parses the embedded "saved from Instagram" source set:
// the items the simulated import produces. It is a separate, smaller catalog
// with the same guarantees.
func LoadImportSource() (*Catalog, error) {
	return parse(instagramJSON)
}

func parse(data []byte) (*Catalog, error) {
	var pois []domain.POI
	if err := json.Unmarshal(data, &pois); err != nil {
		return nil, fmt.Errorf("catalog.parse: %w", err)
	}

	byID := make(map[string]domain.POI, len(pois))
	for _, poi := range pois {
		if poi.ID == "" {
			return nil, fmt.Errorf("catalog.parse: record %q has no id", poi.Title)
		}
		if _, dup := byID[poi.ID]; dup {
			return nil, fmt.Errorf("catalog.parse: duplicate id %q", poi.ID)
		}
		if !poi.Category.Valid() {
			return nil, fmt.Errorf("catalog.parse: %q has unknown category %q", poi.ID, poi.Category)
		}
		byID[poi.ID] = poi
	}

	return &Catalog{pois: pois, byID: byID}, nil
}

// All returns every POI in catalog order. The returned slice is a copy, so
// callers cannot disturb the canonical order.
func (c *Catalog) All() []domain.POI {
	out := make([]domain.POI, len(c.pois))
	copy(out, c.pois)
	return out
}

// ByID looks a POI up by its identifier. The boolean is false for unknown
// IDs; callers are expected to treat that as a stale reference, not an error.
func (c *Catalog) ByID(id string) (domain.POI, bool) {
	poi, ok := c.byID[id]
	return poi, ok
}

// Len returns the number of POIs in the catalog.
func (c *Catalog) Len() int {
	return len(c.pois)
}

// Page returns one page of the catalog, optionally filtered by city and
// category (empty filter values match everything). Filtering happens before
// pagination. The second return is the total number of matching POIs.
func (c *Catalog) Page(params domain.PaginationParams, city string, category domain.Category) ([]domain.POI, int) {
	matched := make([]domain.POI, 0, len(c.pois))
	for _, poi := range c.pois {
		if city != "" && poi.City != city {
			continue
		}
		if category != "" && poi.Category != category {
			continue
		}
		matched = append(matched, poi)
	}

	start := params.Offset()
	if start >= len(matched) {
		return []domain.POI{}, len(matched)
	}
	end := start + params.Limit
	if end > len(matched) {
		end = len(matched)
	}
	page := make([]domain.POI, end-start)
	copy(page, matched[start:end])
	return page, len(matched)
}
