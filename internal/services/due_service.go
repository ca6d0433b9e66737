package services

import (
	"context"
	"sort"

	"github.com/vytor/keydrill/internal/errors"
	"github.com/vytor/keydrill/internal/logger"
	"github.com/vytor/keydrill/internal/models"
	"github.com/vytor/keydrill/internal/repository"
)

// DueService selects the items that are due for review.
type DueService interface {
	DueItems(ctx context.Context, cfg models.SessionConfig) ([]string, error)
}

type dueService struct {
	items   repository.ReviewItemRepository
	catalog repository.CatalogRepository
	clock   Clock
}

// NewDueService creates a new DueService. catalog may be nil when no
// category or difficulty filtering is needed.
func NewDueService(items repository.ReviewItemRepository, catalog repository.CatalogRepository, clock Clock) DueService {
	return &dueService{items: items, catalog: catalog, clock: clock}
}

// DueItems returns the ids of items with NextDueAt <= now, ordered by id, or
// by ascending strength when FocusOnDifficult is set, capped at MaxItems.
func (s *dueService) DueItems(ctx context.Context, cfg models.SessionConfig) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("due")
	now := s.clock.now()
	cfg = cfg.Normalize()

	if cfg.MaxItems < 0 {
		return nil, errors.NewValidationError("max_items", "cannot be negative")
	}

	due, err := s.items.DueBefore(ctx, now)
	if err != nil {
		log.Error("failed to load due items: %v", err)
		return nil, errors.NewStorageError("due lookup", err)
	}

	filter := cfg.CatalogFilter()
	if !filter.IsEmpty() {
		if due, err = s.filterByCatalog(ctx, due, filter); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if cfg.FocusOnDifficult && due[i].Strength != due[j].Strength {
			return due[i].Strength < due[j].Strength
		}
		return due[i].ItemID < due[j].ItemID
	})

	if cfg.MaxItems > 0 && len(due) > cfg.MaxItems {
		due = due[:cfg.MaxItems]
	}

	ids := make([]string, len(due))
	for i, item := range due {
		ids[i] = item.ItemID
	}
	log.Debug("selected %d due items (focus_on_difficult=%t, max_items=%d)", len(ids), cfg.FocusOnDifficult, cfg.MaxItems)
	return ids, nil
}

// filterByCatalog drops items whose catalog entry is missing or does not
// match the filter.
func (s *dueService) filterByCatalog(ctx context.Context, due []models.ReviewItem, filter models.CatalogFilter) ([]models.ReviewItem, error) {
	if s.catalog == nil {
		return nil, errors.NewValidationError("filters", "category and difficulty filters need a catalog")
	}
	for _, c := range filter.Categories {
		if !c.IsValid() {
			return nil, errors.NewValidationError("categories", "unknown category "+string(c))
		}
	}
	for _, d := range filter.Difficulties {
		if !d.IsValid() {
			return nil, errors.NewValidationError("difficulties", "unknown difficulty "+string(d))
		}
	}

	ids := make([]string, len(due))
	for i, item := range due {
		ids[i] = item.ItemID
	}
	entries, err := s.catalog.Lookup(ctx, ids)
	if err != nil {
		logger.FromContext(ctx).Error("failed to look up catalog entries: %v", err)
		return nil, errors.NewStorageError("catalog lookup", err)
	}

	kept := make([]models.ReviewItem, 0, len(due))
	for _, item := range due {
		if entry, ok := entries[item.ItemID]; ok && filter.Matches(entry) {
			kept = append(kept, item)
		}
	}
	return kept, nil
}
