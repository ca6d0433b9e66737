package services

import (
	"context"
	stderrors "errors"

	"github.com/vytor/keydrill/internal/errors"
	"github.com/vytor/keydrill/internal/logger"
	"github.com/vytor/keydrill/internal/models"
	"github.com/vytor/keydrill/internal/repository"
	"github.com/vytor/keydrill/internal/snapshot"
)

// ReviewItemService exposes stored review items and snapshot transfer.
type ReviewItemService interface {
	GetItem(ctx context.Context, itemID string) (*models.ReviewItem, error)
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) (int, error)
}

type reviewItemService struct {
	items repository.ReviewItemRepository
	clock Clock
}

// NewReviewItemService creates a new ReviewItemService
func NewReviewItemService(items repository.ReviewItemRepository, clock Clock) ReviewItemService {
	return &reviewItemService{items: items, clock: clock}
}

func (s *reviewItemService) GetItem(ctx context.Context, itemID string) (*models.ReviewItem, error) {
	item, err := s.items.Get(ctx, itemID)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("items").Error("failed to get review item %s: %v", itemID, err)
		return nil, errors.NewStorageError("get item", err)
	}
	if item == nil {
		return nil, errors.NewNotFoundError("review item", itemID)
	}
	return item, nil
}

// Export returns a snapshot document of every stored item.
func (s *reviewItemService) Export(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx).WithPrefix("items")

	items, err := s.items.All(ctx)
	if err != nil {
		log.Error("failed to load review items for export: %v", err)
		return nil, errors.NewStorageError("export", err)
	}
	data, err := snapshot.Encode(items, s.clock.now())
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	log.Info("exported %d review items", len(items))
	return data, nil
}

// Import upserts every item of a snapshot document and returns how many were
// written. An item whose history would shrink is rejected and stops the import.
func (s *reviewItemService) Import(ctx context.Context, data []byte) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("items")

	items, err := snapshot.Decode(data)
	if err != nil {
		return 0, errors.NewValidationError("snapshot", err.Error())
	}

	for i, item := range items {
		if err := s.items.Upsert(ctx, item); err != nil {
			if stderrors.Is(err, repository.ErrHistoryRewrite) {
				return i, errors.NewValidationError("snapshot", "history of "+item.ItemID+" is shorter than the stored one")
			}
			log.Error("failed to import %s: %v", item.ItemID, err)
			return i, errors.NewStorageError("import", err)
		}
	}
	log.Info("imported %d review items", len(items))
	return len(items), nil
}
