package api

import (
	"net/http"

	"github.com/vytor/keydrill/internal/models"
)

type registerShortcutsRequest struct {
	Shortcuts []models.Shortcut `json:"shortcuts"`
}

func (s *Server) handleRegisterShortcuts(w http.ResponseWriter, r *http.Request) {
	var req registerShortcutsRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(w, r, err)
		return
	}

	created, err := s.CatalogService.Register(r.Context(), req.Shortcuts)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]int{"registered": len(req.Shortcuts), "created": created})
}

func (s *Server) handleListShortcuts(w http.ResponseWriter, r *http.Request) {
	shortcuts, err := s.CatalogService.List(r.Context(), parseCatalogFilter(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, shortcuts)
}
