package domain

// SessionState is the whole of the user's selection state: the saved library,
// the trip collection, onboarding preferences, and the swipe history. It is
// what the persistence layer serializes as one record and what every service
// mutation operates on.
//
// Library uniqueness is by POI ID (set semantics); order is insertion order,
// as is trip order. Prefs is nil until onboarding completes.
type SessionState struct {
	Library []POI            `json:"savedItems"`
	Trips   []Trip           `json:"trips"`
	Prefs   *UserPreferences `json:"userPrefs,omitempty"`
	History []SwipeEvent     `json:"swipeHistory,omitempty"`
}

// NewSessionState returns the empty defaults a fresh (or unrecoverable)
// session starts from. Slices are non-nil so callers can range immediately.
func NewSessionState() SessionState {
	return SessionState{
		Library: []POI{},
		Trips:   []Trip{},
		History: []SwipeEvent{},
	}
}

// InLibrary reports whether the library already holds a POI with the given ID.
func (s SessionState) InLibrary(poiID string) bool {
	for _, item := range s.Library {
		if item.ID == poiID {
			return true
		}
	}
	return false
}

// TripByCountry returns a pointer to the trip grouping the given country, or
// nil when no trip for that country exists yet. The pointer aliases the
// Trips slice and is only valid until the slice is next modified.
func (s *SessionState) TripByCountry(country string) *Trip {
	for i := range s.Trips {
		if s.Trips[i].Country == country {
			return &s.Trips[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the state. Snapshots handed outside the
// session's lock must not alias the live slices.
func (s SessionState) Clone() SessionState {
	out := SessionState{
		Library: make([]POI, len(s.Library)),
		Trips:   make([]Trip, len(s.Trips)),
		History: make([]SwipeEvent, len(s.History)),
	}
	copy(out.Library, s.Library)
	copy(out.History, s.History)
	for i, t := range s.Trips {
		items := make([]POI, len(t.Items))
		copy(items, t.Items)
		t.Items = items
		out.Trips[i] = t
	}
	if s.Prefs != nil {
		p := *s.Prefs
		out.Prefs = &p
	}
	return out
}
