package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vytor/keydrill/internal/errors"
	"github.com/vytor/keydrill/internal/events"
	"github.com/vytor/keydrill/internal/logger"
	"github.com/vytor/keydrill/internal/models"
	"github.com/vytor/keydrill/internal/repository"
	"github.com/vytor/keydrill/internal/srs"
)

// SessionService assembles review sessions and applies their results.
type SessionService interface {
	CreateSession(ctx context.Context, cfg models.SessionConfig) (*models.ReviewSession, error)
	CompleteSession(ctx context.Context, session *models.ReviewSession, results []models.ReviewResult) (*models.CompletionReport, error)
}

type sessionService struct {
	items     repository.ReviewItemRepository
	due       DueService
	publisher events.Publisher
	clock     Clock
	newID     func() string
}

// NewSessionService creates a new SessionService. publisher may be nil.
func NewSessionService(items repository.ReviewItemRepository, due DueService, publisher events.Publisher, clock Clock) SessionService {
	return &sessionService{
		items:     items,
		due:       due,
		publisher: publisher,
		clock:     clock,
		newID:     func() string { return uuid.New().String() },
	}
}

func (s *sessionService) CreateSession(ctx context.Context, cfg models.SessionConfig) (*models.ReviewSession, error) {
	log := logger.FromContext(ctx).WithPrefix("session")

	ids, err := s.due.DueItems(ctx, cfg)
	if err != nil {
		return nil, err
	}

	session := &models.ReviewSession{
		ID:        s.newID(),
		CreatedAt: s.clock.now(),
		ItemIDs:   ids,
		Completed: false,
	}
	if session.ItemIDs == nil {
		session.ItemIDs = []string{}
	}
	log.Info("created session %s with %d items", session.ID, len(ids))
	return session, nil
}

// CompleteSession runs the scheduler for each result in order and writes the
// new state back. Results for unknown items are skipped. A storage failure
// aborts the batch; results already applied stay applied.
func (s *sessionService) CompleteSession(ctx context.Context, session *models.ReviewSession, results []models.ReviewResult) (*models.CompletionReport, error) {
	if session == nil {
		return nil, errors.NewValidationError("session", "is required")
	}
	log := logger.FromContext(ctx).WithPrefix("session").WithField("session_id", session.ID)

	if session.Completed {
		return nil, errors.NewValidationError("session", "already completed")
	}
	for _, r := range results {
		if !r.Rating.IsValid() {
			panic("services: invalid rating " + r.Rating.String() + " for item " + r.ItemID)
		}
	}

	now := s.clock.now()
	report := &models.CompletionReport{Session: session, Skipped: []string{}}

	for _, r := range results {
		rating := r.Rating
		updated, err := s.items.Modify(ctx, r.ItemID, func(cur models.ReviewItem) models.ReviewItem {
			return srs.ApplyReview(cur, rating, now)
		})
		if err != nil {
			log.Error("failed to apply review for %s: %v", r.ItemID, err)
			return nil, errors.NewStorageError("review update", err)
		}
		if updated == nil {
			log.Warn("skipping review for unknown item %s", r.ItemID)
			report.Skipped = append(report.Skipped, r.ItemID)
			continue
		}

		report.Reviewed++
		log.Debug("reviewed %s: rating=%s, interval=%d days, strength=%.2f", r.ItemID, rating, updated.Interval, updated.Strength)
		s.publish(events.Event{Kind: events.KindItemReviewed, At: now, Item: updated})
	}

	session.Completed = true
	session.Results = append([]models.ReviewResult(nil), results...)

	log.Info("session completed: reviewed=%d, skipped=%d", report.Reviewed, len(report.Skipped))
	s.publish(events.Event{Kind: events.KindSessionCompleted, At: now, Completion: report})
	return report, nil
}

func (s *sessionService) publish(ev events.Event) {
	if s.publisher != nil {
		s.publisher.Publish(ev)
	}
}
