package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vytor/keydrill/internal/errors"
	"github.com/vytor/keydrill/internal/logger"
	"github.com/vytor/keydrill/internal/models"
	"github.com/vytor/keydrill/internal/repository"
)

// CatalogService registers shortcuts and seeds their review items.
type CatalogService interface {
	Register(ctx context.Context, shortcuts []models.Shortcut) (int, error)
	List(ctx context.Context, filter models.CatalogFilter) ([]models.Shortcut, error)
}

type catalogService struct {
	catalog repository.CatalogRepository
	items   repository.ReviewItemRepository
	clock   Clock
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(catalog repository.CatalogRepository, items repository.ReviewItemRepository, clock Clock) CatalogService {
	return &catalogService{catalog: catalog, items: items, clock: clock}
}

// Register stores the shortcuts and creates a fresh review item for every id
// that does not have one yet. It returns the number of review items created;
// re-registering known shortcuts leaves their progress alone.
func (s *catalogService) Register(ctx context.Context, shortcuts []models.Shortcut) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("catalog")

	if len(shortcuts) == 0 {
		return 0, errors.NewValidationError("shortcuts", "at least one shortcut is required")
	}
	normalized := make([]models.Shortcut, len(shortcuts))
	seen := make(map[string]bool, len(shortcuts))
	ids := make([]string, 0, len(shortcuts))
	for i, sc := range shortcuts {
		field := fmt.Sprintf("shortcuts[%d]", i)
		sc.ID = strings.TrimSpace(sc.ID)
		sc.Category, sc.Difficulty = sc.Category.Normalize(), sc.Difficulty.Normalize()
		switch {
		case sc.ID == "":
			return 0, errors.NewValidationError(field+".id", "is required")
		case seen[sc.ID]:
			return 0, errors.NewValidationError(field+".id", "duplicate id "+sc.ID)
		case !sc.Category.IsValid():
			return 0, errors.NewValidationError(field+".category", "unknown category "+string(sc.Category))
		case !sc.Difficulty.IsValid():
			return 0, errors.NewValidationError(field+".difficulty", "unknown difficulty "+string(sc.Difficulty))
		}
		seen[sc.ID] = true
		ids = append(ids, sc.ID)
		normalized[i] = sc
	}

	if err := s.catalog.Upsert(ctx, normalized); err != nil {
		log.Error("failed to store shortcuts: %v", err)
		return 0, errors.NewStorageError("catalog upsert", err)
	}
	created, err := s.items.BulkInitialize(ctx, ids, s.clock.now())
	if err != nil {
		log.Error("failed to initialize review items: %v", err)
		return 0, errors.NewStorageError("bulk initialize", err)
	}

	log.Info("registered %d shortcuts, %d new review items", len(shortcuts), created)
	return created, nil
}

func (s *catalogService) List(ctx context.Context, filter models.CatalogFilter) ([]models.Shortcut, error) {
	shortcuts, err := s.catalog.List(ctx, filter.Normalize())
	if err != nil {
		logger.FromContext(ctx).WithPrefix("catalog").Error("failed to list shortcuts: %v", err)
		return nil, errors.NewStorageError("catalog list", err)
	}
	if shortcuts == nil {
		shortcuts = []models.Shortcut{}
	}
	return shortcuts, nil
}
