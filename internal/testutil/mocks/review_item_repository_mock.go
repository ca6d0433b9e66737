package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/keydrill/internal/models"
	"github.com/vytor/keydrill/internal/repository"
)

// MockReviewItemRepository is a mock implementation of repository.ReviewItemRepository
type MockReviewItemRepository struct {
	mock.Mock
}

func (m *MockReviewItemRepository) Get(ctx context.Context, itemID string) (*models.ReviewItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewItem), args.Error(1)
}

func (m *MockReviewItemRepository) Upsert(ctx context.Context, item models.ReviewItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockReviewItemRepository) All(ctx context.Context) ([]models.ReviewItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewItem), args.Error(1)
}

func (m *MockReviewItemRepository) BulkInitialize(ctx context.Context, itemIDs []string, now time.Time) (int, error) {
	args := m.Called(ctx, itemIDs, now)
	return args.Int(0), args.Error(1)
}

func (m *MockReviewItemRepository) DueBefore(ctx context.Context, now time.Time) ([]models.ReviewItem, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewItem), args.Error(1)
}

// Modify passes fn to the expectation; a Run hook can invoke it.
func (m *MockReviewItemRepository) Modify(ctx context.Context, itemID string, fn repository.ModifyFunc) (*models.ReviewItem, error) {
	args := m.Called(ctx, itemID, fn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewItem), args.Error(1)
}
