package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/keydrill/internal/events"
	"github.com/vytor/keydrill/internal/models"
	"github.com/vytor/keydrill/internal/progression"
	"github.com/vytor/keydrill/internal/testutil/mocks"
	"github.com/vytor/keydrill/internal/worker"
)

func TestForward_DeliversCompletedSessions(t *testing.T) {
	delivered := make(chan progression.Payload, 1)
	notifier := new(mocks.MockNotifier)
	notifier.On("Notify", mock.Anything, mock.AnythingOfType("progression.Payload")).
		Run(func(args mock.Arguments) { delivered <- args.Get(1).(progression.Payload) }).
		Return(nil)

	pool := worker.NewPool(1, 4)
	pool.Start(context.Background())
	defer pool.Stop()

	bus := events.NewBus()
	in, unsubscribe := bus.Subscribe(8, events.KindSessionCompleted)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Forward(ctx, in, NewWorkerQueue(pool, notifier))
		close(done)
	}()

	report := &models.CompletionReport{
		Session:  &models.ReviewSession{ID: "s1", Completed: true, Results: []models.ReviewResult{{ItemID: "a", Rating: models.RatingEasy}}},
		Reviewed: 1,
		Skipped:  []string{},
	}
	bus.Publish(events.Event{Kind: events.KindItemReviewed, Item: &models.ReviewItem{ItemID: "a"}})
	bus.Publish(events.Event{Kind: events.KindSessionCompleted, Completion: report})

	select {
	case p := <-delivered:
		assert.Equal(t, "s1", p.SessionID)
		assert.Equal(t, 1, p.Ratings.Easy)
	case <-time.After(2 * time.Second):
		t.Fatal("progression notification was not delivered")
	}

	unsubscribe()
	<-done
	cancel()
	notifier.AssertNumberOfCalls(t, "Notify", 1)
}

type failingQueue struct{ calls int }

func (q *failingQueue) EnqueueProgression(*models.CompletionReport) error {
	q.calls++
	return worker.ErrQueueFull
}

func TestForward_KeepsGoingWhenQueueIsFull(t *testing.T) {
	in := make(chan events.Event, 2)
	report := &models.CompletionReport{Session: &models.ReviewSession{ID: "s"}}
	in <- events.Event{Kind: events.KindSessionCompleted, Completion: report}
	in <- events.Event{Kind: events.KindSessionCompleted, Completion: report}
	close(in)

	q := &failingQueue{}
	Forward(context.Background(), in, q)
	require.Equal(t, 2, q.calls)
}
