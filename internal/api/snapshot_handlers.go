package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/vytor/keydrill/internal/errors"
	"github.com/vytor/keydrill/internal/logger"
)

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.ReviewItemService.Export(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="keydrill-snapshot.json"`)
	if _, err := w.Write(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to write export: %v", err)
	}
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		handleError(w, r, errors.NewBadRequestError(fmt.Sprintf("failed to read body: %v", err)))
		return
	}

	n, err := s.ReviewItemService.Import(r.Context(), data)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]int{"imported": n})
}
