package api

import (
	"encoding/json"
	"net/http"

	"github.com/vytor/keydrill/internal/errors"
	"github.com/vytor/keydrill/internal/logger"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// handleError centralizes error handling for HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else {
		log.Warn("client error: %v", appErr)
	}
	writeError(w, appErr)
}

func writeError(w http.ResponseWriter, appErr *errors.AppError) {
	status := appErr.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	var body errorBody
	body.Error.Code = appErr.Code
	body.Error.Message = appErr.Message

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
