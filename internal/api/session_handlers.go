package api

import (
	"net/http"

	"github.com/vytor/keydrill/internal/errors"
	"github.com/vytor/keydrill/internal/logger"
	"github.com/vytor/keydrill/internal/models"
)

type completeSessionRequest struct {
	Session *models.ReviewSession `json:"session"`
	Results []models.ReviewResult `json:"results"`
}

// createSessionRequest mirrors models.SessionConfig but keeps an absent
// max_items apart from an explicit 0.
type createSessionRequest struct {
	MaxItems         *int                `json:"max_items"`
	FocusOnDifficult bool                `json:"focus_on_difficult"`
	Categories       []models.Category   `json:"categories"`
	Difficulties     []models.Difficulty `json:"difficulties"`
}

// handleCreateSession takes an optional body. Without max_items the
// configured default session size applies; "max_items": 0 means no cap.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		handleError(w, r, err)
		return
	}
	cfg := models.SessionConfig{
		MaxItems:         s.DefaultSessionSize,
		FocusOnDifficult: req.FocusOnDifficult,
		Categories:       req.Categories,
		Difficulties:     req.Difficulties,
	}
	if req.MaxItems != nil {
		cfg.MaxItems = *req.MaxItems
	}

	session, err := s.SessionService.CreateSession(r.Context(), cfg)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, session)
}

func (s *Server) handleCompleteSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req completeSessionRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(w, r, err)
		return
	}
	if req.Session == nil {
		handleError(w, r, errors.NewBadRequestError("session is required"))
		return
	}
	for _, res := range req.Results {
		if res.ItemID == "" {
			handleError(w, r, errors.NewBadRequestError("every result needs an item_id"))
			return
		}
		if !res.Rating.IsValid() {
			handleError(w, r, errors.NewBadRequestError("every result needs a rating"))
			return
		}
	}

	log.Debug("completing session %s with %d results", req.Session.ID, len(req.Results))
	report, err := s.SessionService.CompleteSession(r.Context(), req.Session, req.Results)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, report)
}
