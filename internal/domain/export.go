package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per trip item, with trip fields
// repeated for every item on that trip and the item's computed itinerary
// day/slot alongside. Trips with no items yield one row with zero values for
// all item fields.
type ExportRow struct {
	// Trip fields, repeated for every item on the trip.
	TripID      string
	TripName    string
	TripCountry string

	// Item fields, zero values when the trip has no items.
	POIID    string
	Title    string
	City     string
	Category Category
	Zone     string

	// Itinerary assignment for this item. Day is 0 on the empty-trip row.
	Day  int
	Slot TimeSlot
}
