package handler

import "net/http"

// sessionResponse tells a client where to route on startup: a session
// without preferences goes to onboarding, anything else to the feed.
type sessionResponse struct {
	NeedsOnboarding bool `json:"needsOnboarding"`
	SavedCount      int  `json:"savedCount"`
	TripCount       int  `json:"tripCount"`
}

// GetSession handles GET /session.
func (s *Server) GetSession(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, sessionResponse{
		NeedsOnboarding: s.prefs.NeedsOnboarding(),
		SavedCount:      len(s.library.List()),
		TripCount:       len(s.trips.List()),
	})
}
