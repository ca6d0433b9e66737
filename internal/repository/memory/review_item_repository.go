// Package memory provides in-process repository implementations guarded by a
// mutex. They satisfy the same contracts as the SQLite backends.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vytor/keydrill/internal/models"
	"github.com/vytor/keydrill/internal/repository"
)

type reviewItemRepository struct {
	mu    sync.Mutex
	items map[string]models.ReviewItem
}

// NewReviewItemRepository creates an empty in-memory ReviewItemRepository.
func NewReviewItemRepository() repository.ReviewItemRepository {
	return &reviewItemRepository{items: make(map[string]models.ReviewItem)}
}

func (r *reviewItemRepository) Get(_ context.Context, itemID string) (*models.ReviewItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return nil, nil
	}
	out := item.Clone()
	return &out, nil
}

func (r *reviewItemRepository) Upsert(_ context.Context, item models.ReviewItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.putLocked(item)
}

func (r *reviewItemRepository) putLocked(item models.ReviewItem) error {
	if existing, ok := r.items[item.ItemID]; ok && len(item.History) < len(existing.History) {
		return repository.ErrHistoryRewrite
	}
	r.items[item.ItemID] = item.Clone()
	return nil
}

func (r *reviewItemRepository) All(_ context.Context) ([]models.ReviewItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.ReviewItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (r *reviewItemRepository) BulkInitialize(_ context.Context, itemIDs []string, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := 0
	for _, id := range itemIDs {
		if _, ok := r.items[id]; ok {
			continue
		}
		r.items[id] = models.NewReviewItem(id, now)
		created++
	}
	return created, nil
}

func (r *reviewItemRepository) DueBefore(_ context.Context, now time.Time) ([]models.ReviewItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ReviewItem
	for _, item := range r.items {
		if item.IsDue(now) {
			due := item
			due.History = nil
			out = append(out, due)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (r *reviewItemRepository) Modify(_ context.Context, itemID string, fn repository.ModifyFunc) (*models.ReviewItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[itemID]
	if !ok {
		return nil, nil
	}
	next := fn(current.Clone())
	next.ItemID = itemID
	if err := r.putLocked(next); err != nil {
		return nil, err
	}
	out := next.Clone()
	return &out, nil
}
