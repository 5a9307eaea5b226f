package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a named, country-scoped collection of POIs the user intends to
// visit. A trip is the top-level aggregate for itinerary generation; its item
// order is insertion order and is exactly the order the generator consumes.
//
// Invariant: every item in a trip shares the trip's Country, the grouping
// key. Duplicate items (by POI ID) are forbidden within one trip.
type Trip struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	City    string    `json:"city"`
	Country string    `json:"country"`
	Items   []POI     `json:"items"`
	// CreatedAt records when the first POI from this country was added.
	CreatedAt time.Time `json:"createdAt"`
}

// NewTrip builds a trip seeded with a single POI. The display name is derived
// from the POI's country ("Portugal Adventure"); city and country are copied
// from the seeding POI.
func NewTrip(poi POI, now time.Time) Trip {
	return Trip{
		ID:        uuid.New(),
		Name:      poi.Country + " Adventure",
		City:      poi.City,
		Country:   poi.Country,
		Items:     []POI{poi},
		CreatedAt: now,
	}
}

// Contains reports whether the trip already holds a POI with the given ID.
func (t Trip) Contains(poiID string) bool {
	for _, item := range t.Items {
		if item.ID == poiID {
			return true
		}
	}
	return false
}

// GroupIntoTrips partitions a flat POI sequence into country-keyed trips:
// first encounter of a country creates a trip, later POIs from the same
// country append in order, duplicates per trip are dropped. This is the one
// grouping rule; the swipe path and the legacy flat-schema migration both
// go through it.
func GroupIntoTrips(items []POI, now time.Time) []Trip {
	trips := []Trip{}
	for _, poi := range items {
		grouped := false
		for i := range trips {
			if trips[i].Country != poi.Country {
				continue
			}
			if !trips[i].Contains(poi.ID) {
				trips[i].Items = append(trips[i].Items, poi)
			}
			grouped = true
			break
		}
		if !grouped {
			trips = append(trips, NewTrip(poi, now))
		}
	}
	return trips
}
