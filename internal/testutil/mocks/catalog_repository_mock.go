package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/keydrill/internal/models"
)

// MockCatalogRepository is a mock implementation of repository.CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) Upsert(ctx context.Context, shortcuts []models.Shortcut) error {
	args := m.Called(ctx, shortcuts)
	return args.Error(0)
}

func (m *MockCatalogRepository) Lookup(ctx context.Context, ids []string) (map[string]models.Shortcut, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.Shortcut), args.Error(1)
}

func (m *MockCatalogRepository) List(ctx context.Context, filter models.CatalogFilter) ([]models.Shortcut, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Shortcut), args.Error(1)
}
