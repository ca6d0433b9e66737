package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/vytor/keydrill/internal/errors"
	"github.com/vytor/keydrill/internal/logger"
	"github.com/vytor/keydrill/internal/models"
)

const maxBodyBytes = 8 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// decodeJSON reads a JSON body into v. An empty body leaves v untouched
// when allowEmpty is set. Malformed input, including unknown rating names,
// is a BAD_REQUEST.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if err == io.EOF && allowEmpty {
			return nil
		}
		return errors.NewBadRequestError(fmt.Sprintf("invalid request body: %v", err))
	}
	return nil
}

// splitQuery collects a repeated or comma separated query parameter.
func splitQuery(r *http.Request, key string) []string {
	var out []string
	for _, v := range r.URL.Query()[key] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseCatalogFilter(r *http.Request) models.CatalogFilter {
	var f models.CatalogFilter
	for _, c := range splitQuery(r, "category") {
		f.Categories = append(f.Categories, models.Category(c))
	}
	for _, d := range splitQuery(r, "difficulty") {
		f.Difficulties = append(f.Difficulties, models.Difficulty(d))
	}
	return f
}

// parseSessionConfig reads max, focus, category and difficulty from the query.
func parseSessionConfig(r *http.Request) (models.SessionConfig, error) {
	q := r.URL.Query()
	filter := parseCatalogFilter(r)
	cfg := models.SessionConfig{Categories: filter.Categories, Difficulties: filter.Difficulties}

	if v := q.Get("max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, errors.NewBadRequestError("invalid max: " + v)
		}
		cfg.MaxItems = n
	}
	if v := q.Get("focus"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, errors.NewBadRequestError("invalid focus: " + v)
		}
		cfg.FocusOnDifficult = b
	}
	return cfg, nil
}
