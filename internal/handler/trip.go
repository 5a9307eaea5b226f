package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/aina-travel/backend/internal/domain"
)

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"data": s.trips.List()})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := parseTripID(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := parseTripID(w, r)
	if !ok {
		return
	}

	if err := s.trips.Remove(r.Context(), tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternal(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetItinerary handles GET /trips/{tripID}/itinerary.
// The schedule is derived on every call from the trip's current item order.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	tripID, ok := parseTripID(w, r)
	if !ok {
		return
	}

	entries, err := s.trips.Itinerary(tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": entries})
}

// tripItemRequest is the body of POST /trips/items.
type tripItemRequest struct {
	POIID string `json:"poiId"`
}

// AddTripItem handles POST /trips/items, the library screen's "add to
// trip". The POI must already be in the saved library.
func (s *Server) AddTripItem(w http.ResponseWriter, r *http.Request) {
	var req tripItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "request body is required")
		return
	}
	if req.POIID == "" {
		writeBadRequest(w, "poiId is required")
		return
	}

	if err := s.trips.AddFromLibrary(r.Context(), req.POIID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "poi not in library")
			return
		}
		writeInternal(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveTripItem handles DELETE /trips/items/{poiID}.
func (s *Server) RemoveTripItem(w http.ResponseWriter, r *http.Request) {
	err := s.trips.RemoveItem(r.Context(), chi.URLParam(r, "poiID"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "poi not on any trip")
			return
		}
		writeInternal(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseTripID extracts and parses the {tripID} path parameter, writing a 404
// when it is not a UUID: an unparsable ID can never name an existing trip.
func parseTripID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	tripID, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeNotFound(w, "trip not found")
		return uuid.UUID{}, false
	}
	return tripID, true
}
