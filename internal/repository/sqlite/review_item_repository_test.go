package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/keydrill/internal/models"
	"github.com/vytor/keydrill/internal/repository"
	"github.com/vytor/keydrill/internal/repository/sqlite"
	"github.com/vytor/keydrill/internal/testutil"
)

var now = time.Date(2023, time.May, 1, 12, 0, 0, 0, time.UTC)

type ReviewItemRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ReviewItemRepository
}

func (s *ReviewItemRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewReviewItemRepository(s.db)
}

func (s *ReviewItemRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ReviewItemRepositorySuite) TestBulkInitialize_CreatesFreshItems() {
	ctx := context.Background()

	created, err := s.repo.BulkInitialize(ctx, []string{"vscode.save", "vscode.find"}, now)
	s.Require().NoError(err)
	s.Assert().Equal(2, created)

	item, err := s.repo.Get(ctx, "vscode.save")
	s.Require().NoError(err)
	s.Require().NotNil(item)
	s.Assert().Equal(models.InitialStrength, item.Strength)
	s.Assert().Equal(0, item.Interval)
	s.Assert().True(item.NextDueAt.Equal(now))
	s.Assert().Empty(item.History)
}

func (s *ReviewItemRepositorySuite) TestBulkInitialize_KeepsExistingProgress() {
	ctx := context.Background()
	_, err := s.repo.BulkInitialize(ctx, []string{"a", "b"}, now)
	s.Require().NoError(err)

	reviewed := models.ReviewItem{
		ItemID:    "a",
		Strength:  2.6,
		Interval:  1,
		NextDueAt: now.AddDate(0, 0, 1),
		History:   []models.ReviewEvent{{ReviewedAt: now, Rating: models.RatingEasy}},
	}
	s.Require().NoError(s.repo.Upsert(ctx, reviewed))

	created, err := s.repo.BulkInitialize(ctx, []string{"a", "b", "c"}, now.Add(time.Hour))
	s.Require().NoError(err)
	s.Assert().Equal(1, created, "only c is new")

	item, err := s.repo.Get(ctx, "a")
	s.Require().NoError(err)
	s.Assert().Equal(2.6, item.Strength)
	s.Assert().Equal(1, item.Interval)
	s.Assert().Len(item.History, 1)
}

func (s *ReviewItemRepositorySuite) TestBulkInitialize_LargeBatch() {
	ids := make([]string, 450)
	for i := range ids {
		ids[i] = fmt.Sprintf("item-%03d", i)
	}

	created, err := s.repo.BulkInitialize(context.Background(), ids, now)
	s.Require().NoError(err)
	s.Assert().Equal(450, created)

	all, err := s.repo.All(context.Background())
	s.Require().NoError(err)
	s.Assert().Len(all, 450)
}

func (s *ReviewItemRepositorySuite) TestGet_NotFound() {
	item, err := s.repo.Get(context.Background(), "missing")
	s.Assert().NoError(err)
	s.Assert().Nil(item)
}

func (s *ReviewItemRepositorySuite) TestUpsert_AppendsHistory() {
	ctx := context.Background()
	item := models.NewReviewItem("a", now)
	item.History = []models.ReviewEvent{{ReviewedAt: now, Rating: models.RatingGood}}
	s.Require().NoError(s.repo.Upsert(ctx, item))

	item.History = append(item.History, models.ReviewEvent{ReviewedAt: now.Add(time.Minute), Rating: models.RatingAgain})
	item.Strength = 1.7
	s.Require().NoError(s.repo.Upsert(ctx, item))

	got, err := s.repo.Get(ctx, "a")
	s.Require().NoError(err)
	s.Require().Len(got.History, 2)
	s.Assert().Equal(models.RatingGood, got.History[0].Rating)
	s.Assert().Equal(models.RatingAgain, got.History[1].Rating)
	s.Assert().True(got.History[1].ReviewedAt.Equal(now.Add(time.Minute)))
	s.Assert().Equal(1.7, got.Strength)
}

func (s *ReviewItemRepositorySuite) TestUpsert_RejectsShorterHistory() {
	ctx := context.Background()
	item := models.NewReviewItem("a", now)
	item.History = []models.ReviewEvent{
		{ReviewedAt: now, Rating: models.RatingGood},
		{ReviewedAt: now, Rating: models.RatingGood},
	}
	s.Require().NoError(s.repo.Upsert(ctx, item))

	item.History = item.History[:1]
	err := s.repo.Upsert(ctx, item)
	s.Assert().ErrorIs(err, repository.ErrHistoryRewrite)
}

func (s *ReviewItemRepositorySuite) TestDueBefore() {
	ctx := context.Background()
	_, err := s.repo.BulkInitialize(ctx, []string{"due-now", "due-later", "due-past"}, now)
	s.Require().NoError(err)

	later := models.NewReviewItem("due-later", now)
	later.NextDueAt = now.Add(24 * time.Hour)
	s.Require().NoError(s.repo.Upsert(ctx, later))

	past := models.NewReviewItem("due-past", now)
	past.NextDueAt = now.Add(-time.Hour)
	s.Require().NoError(s.repo.Upsert(ctx, past))

	due, err := s.repo.DueBefore(ctx, now)
	s.Require().NoError(err)
	s.Require().Len(due, 2)
	s.Assert().Equal("due-now", due[0].ItemID, "boundary item is due")
	s.Assert().Equal("due-past", due[1].ItemID)
}

func (s *ReviewItemRepositorySuite) TestModify_IsAtomicReadWrite() {
	ctx := context.Background()
	_, err := s.repo.BulkInitialize(ctx, []string{"a"}, now)
	s.Require().NoError(err)

	updated, err := s.repo.Modify(ctx, "a", func(cur models.ReviewItem) models.ReviewItem {
		cur.Interval = 1
		cur.Strength = 2.6
		cur.NextDueAt = now.AddDate(0, 0, 1)
		cur.History = append(cur.History, models.ReviewEvent{ReviewedAt: now, Rating: models.RatingEasy})
		return cur
	})
	s.Require().NoError(err)
	s.Require().NotNil(updated)
	s.Assert().Equal(1, updated.Interval)

	got, err := s.repo.Get(ctx, "a")
	s.Require().NoError(err)
	s.Assert().Equal(1, got.Interval)
	s.Assert().Len(got.History, 1)
}

func (s *ReviewItemRepositorySuite) TestModify_Missing() {
	called := false
	got, err := s.repo.Modify(context.Background(), "missing", func(cur models.ReviewItem) models.ReviewItem {
		called = true
		return cur
	})
	s.Assert().NoError(err)
	s.Assert().Nil(got)
	s.Assert().False(called)
}

func (s *ReviewItemRepositorySuite) TestAll_LoadsHistory() {
	ctx := context.Background()
	_, err := s.repo.BulkInitialize(ctx, []string{"b", "a"}, now)
	s.Require().NoError(err)

	a := models.NewReviewItem("a", now)
	a.History = []models.ReviewEvent{{ReviewedAt: now, Rating: models.RatingHard}}
	s.Require().NoError(s.repo.Upsert(ctx, a))

	all, err := s.repo.All(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Assert().Equal("a", all[0].ItemID)
	s.Assert().Len(all[0].History, 1)
	s.Assert().Empty(all[1].History)
}

func TestReviewItemRepositorySuite(t *testing.T) {
	suite.Run(t, new(ReviewItemRepositorySuite))
}
