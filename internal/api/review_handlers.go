package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleDueItems(w http.ResponseWriter, r *http.Request) {
	cfg, err := parseSessionConfig(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	ids, err := s.DueService.DueItems(r.Context(), cfg)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"item_ids": ids, "count": len(ids)})
}

func (s *Server) handleGetReviewItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.ReviewItemService.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, item)
}
