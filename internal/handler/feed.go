package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aina-travel/backend/internal/domain"
)

// feedResponse is the paginated feed payload.
type feedResponse struct {
	Data       []domain.POI `json:"data"`
	Pagination pagination   `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ListFeed handles GET /feed.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100) plus
// optional ?city= and ?category= filters. An unknown category matches
// nothing rather than erroring; the feed is a browse surface, not a form.
func (s *Server) ListFeed(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(
		queryInt(r, "page"),
		queryInt(r, "limit"),
	)
	city := r.URL.Query().Get("city")
	category := domain.Category(r.URL.Query().Get("category"))

	data, total := s.feed.Page(params, city, category)

	writeJSON(w, http.StatusOK, feedResponse{
		Data: data,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetFeedItem handles GET /feed/{poiID}.
func (s *Server) GetFeedItem(w http.ResponseWriter, r *http.Request) {
	poi, ok := s.feed.ByID(chi.URLParam(r, "poiID"))
	if !ok {
		writeNotFound(w, "poi not found")
		return
	}
	writeJSON(w, http.StatusOK, poi)
}

// queryInt parses an optional integer query parameter; nil when absent or
// malformed, letting NewPaginationParams apply its defaults.
func queryInt(r *http.Request, key string) *int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
