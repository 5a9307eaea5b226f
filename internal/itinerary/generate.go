// Package itinerary implements the scheduling routine that turns a trip's
// item sequence into day/slot assignments. It is deliberately a pure
// function: no state, no side effects, recomputed on every request.
package itinerary

import "github.com/aina-travel/backend/internal/domain"

// Generate assigns each POI a 1-based day number and a time slot purely from
// its position in the input: three items per day, cycling
// Morning → Afternoon → Evening, day advancing on every third item.
//
// Nothing else influences the assignment, not category, zone, price, or any
// prior result. Reordering or filtering the input recomputes every entry from
// scratch; no entry retains a previous day or slot. Output order and length
// mirror the input, and an empty input yields an empty (non-nil) output.
//
// This is a placeholder policy: it has no notion of feasibility and will
// happily put two nightlife venues in the same Evening. Walking-time labels
// shown in clients are decorative and are not derived here.
func Generate(pois []domain.POI) []domain.ItineraryEntry {
	entries := make([]domain.ItineraryEntry, len(pois))
	for i, poi := range pois {
		entries[i] = domain.ItineraryEntry{
			POI:    poi,
			Day:    i/3 + 1,
			Slot:   domain.SlotCycle[i%3],
			Locked: false,
		}
	}
	return entries
}
