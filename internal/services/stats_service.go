package services

import (
	"context"
	"math"
	"time"

	"github.com/vytor/keydrill/internal/errors"
	"github.com/vytor/keydrill/internal/logger"
	"github.com/vytor/keydrill/internal/models"
	"github.com/vytor/keydrill/internal/repository"
)

// Strength span used to scale the mastery percentage: 1.3 maps to 0 and
// 2.5 (a fresh item) maps to 100.
const masterySpan = models.InitialStrength - models.MinStrength

// StatsService summarizes review progress.
type StatsService interface {
	Stats(ctx context.Context) (*models.ReviewStats, error)
}

type statsService struct {
	items repository.ReviewItemRepository
	clock Clock
}

// NewStatsService creates a new StatsService
func NewStatsService(items repository.ReviewItemRepository, clock Clock) StatsService {
	return &statsService{items: items, clock: clock}
}

func (s *statsService) Stats(ctx context.Context) (*models.ReviewStats, error) {
	items, err := s.items.All(ctx)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("stats").Error("failed to load review items: %v", err)
		return nil, errors.NewStorageError("stats", err)
	}
	return computeStats(items, s.clock.now()), nil
}

func computeStats(items []models.ReviewItem, now time.Time) *models.ReviewStats {
	stats := &models.ReviewStats{TotalItems: len(items)}
	if len(items) == 0 {
		return stats
	}

	var total float64
	for _, item := range items {
		total += item.Strength
		stats.TotalReviews += len(item.History)
		if item.IsDue(now) {
			stats.DueItems++
		}
	}
	stats.AverageStrength = total / float64(len(items))
	stats.MasteryLevel = masteryLevel(stats.AverageStrength)
	return stats
}

// masteryLevel converts an average strength into a 0-100 score.
func masteryLevel(avg float64) int {
	level := math.Round((avg - models.MinStrength) / masterySpan * 100)
	return int(math.Max(0, math.Min(100, level)))
}
