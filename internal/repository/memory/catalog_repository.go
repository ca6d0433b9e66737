package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vytor/keydrill/internal/models"
	"github.com/vytor/keydrill/internal/repository"
)

type catalogRepository struct {
	mu        sync.RWMutex
	shortcuts map[string]models.Shortcut
}

// NewCatalogRepository creates an empty in-memory CatalogRepository.
func NewCatalogRepository() repository.CatalogRepository {
	return &catalogRepository{shortcuts: make(map[string]models.Shortcut)}
}

func (r *catalogRepository) Upsert(_ context.Context, shortcuts []models.Shortcut) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range shortcuts {
		r.shortcuts[s.ID] = s
	}
	return nil
}

func (r *catalogRepository) Lookup(_ context.Context, ids []string) (map[string]models.Shortcut, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]models.Shortcut, len(ids))
	for _, id := range ids {
		if s, ok := r.shortcuts[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func (r *catalogRepository) List(_ context.Context, filter models.CatalogFilter) ([]models.Shortcut, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Shortcut
	for _, s := range r.shortcuts {
		if filter.Matches(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
