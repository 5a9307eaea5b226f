package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aina-travel/backend/internal/domain"
)

// libraryResponse presents the saved library the way the library screen
// consumes it: grouped by city, with the flat total alongside.
type libraryResponse struct {
	Groups []domain.CityGroup `json:"groups"`
	Total  int                `json:"total"`
}

// GetLibrary handles GET /library.
func (s *Server) GetLibrary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, libraryResponse{
		Groups: s.library.Grouped(),
		Total:  len(s.library.List()),
	})
}

// RemoveFromLibrary handles DELETE /library/{poiID}.
func (s *Server) RemoveFromLibrary(w http.ResponseWriter, r *http.Request) {
	err := s.library.Remove(r.Context(), chi.URLParam(r, "poiID"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "poi not in library")
			return
		}
		writeInternal(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
