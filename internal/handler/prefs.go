package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aina-travel/backend/internal/domain"
)

// GetPreferences handles GET /preferences.
// Responds 404 until onboarding has completed.
func (s *Server) GetPreferences(w http.ResponseWriter, _ *http.Request) {
	prefs := s.prefs.Get()
	if prefs == nil {
		writeNotFound(w, "preferences not set")
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// SetPreferences handles PUT /preferences, the onboarding form submit.
func (s *Server) SetPreferences(w http.ResponseWriter, r *http.Request) {
	var prefs domain.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeBadRequest(w, "request body is required")
		return
	}

	if err := s.prefs.Set(r.Context(), prefs); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeValidation(w, err)
			return
		}
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusCreated, prefs)
}
