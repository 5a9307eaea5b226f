package domain

// TimeSlot is one of the three fixed parts of a day an itinerary entry can
// occupy. The cycle order Morning → Afternoon → Evening is load-bearing: the
// generator assigns slots by position in this exact rotation.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "Morning"
	SlotAfternoon TimeSlot = "Afternoon"
	SlotEvening   TimeSlot = "Evening"
)

// SlotCycle is the fixed rotation used to distribute trip items across a day.
// Index i mod 3 of this slice is the slot for the i-th item.
var SlotCycle = [3]TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}

// ItineraryEntry is a POI annotated with its computed day number and time
// slot. Entries are derived and ephemeral: recomputed from the trip's item
// sequence on demand, never persisted. Day is 1-based.
type ItineraryEntry struct {
	POI    POI      `json:"poi"`
	Day    int      `json:"day"`
	Slot   TimeSlot `json:"timeSlot"`
	Locked bool     `json:"locked"`
}
