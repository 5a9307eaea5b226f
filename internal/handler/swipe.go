package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aina-travel/backend/internal/domain"
)

// swipeRequest is the body of POST /swipes.
type swipeRequest struct {
	POIID  string             `json:"poiId"`
	Action domain.SwipeAction `json:"action"`
}

// CreateSwipe handles POST /swipes.
// Applies one gesture. A stale POI ID still returns 202; the engine treats
// it as a silent no-op, and the feed client cannot act on the difference.
func (s *Server) CreateSwipe(w http.ResponseWriter, r *http.Request) {
	var req swipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "request body is required")
		return
	}
	if req.POIID == "" {
		writeBadRequest(w, "poiId is required")
		return
	}

	if err := s.swipes.Apply(r.Context(), req.POIID, req.Action); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeValidation(w, err)
			return
		}
		writeInternal(w)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// ListSwipes handles GET /swipes. Returns the append-only gesture history.
func (s *Server) ListSwipes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"data": s.swipes.History()})
}
