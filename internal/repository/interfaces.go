package repository

import (
	"context"
	"errors"
	"time"

	"github.com/vytor/keydrill/internal/models"
)

// ErrHistoryRewrite is returned by Upsert when the given item carries fewer
// history entries than the stored one. History is append-only.
var ErrHistoryRewrite = errors.New("review history can only grow")

// ModifyFunc computes an item's next state from its current state.
type ModifyFunc func(current models.ReviewItem) models.ReviewItem

// ReviewItemRepository stores one scheduling record per item.
// Lookups of absent items return (nil, nil).
type ReviewItemRepository interface {
	Get(ctx context.Context, itemID string) (*models.ReviewItem, error)
	Upsert(ctx context.Context, item models.ReviewItem) error
	All(ctx context.Context) ([]models.ReviewItem, error)
	// BulkInitialize creates fresh items, due at now, for ids not yet stored
	// and returns how many were created. Existing items are left untouched.
	BulkInitialize(ctx context.Context, itemIDs []string, now time.Time) (int, error)
	// DueBefore returns items with NextDueAt <= now, without history.
	DueBefore(ctx context.Context, now time.Time) ([]models.ReviewItem, error)
	// Modify atomically reads the item, applies fn and stores the result.
	Modify(ctx context.Context, itemID string, fn ModifyFunc) (*models.ReviewItem, error)
}

// CatalogRepository holds shortcut metadata used for filtering.
type CatalogRepository interface {
	Upsert(ctx context.Context, shortcuts []models.Shortcut) error
	Lookup(ctx context.Context, ids []string) (map[string]models.Shortcut, error)
	List(ctx context.Context, filter models.CatalogFilter) ([]models.Shortcut, error)
}
