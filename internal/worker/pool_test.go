package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/keydrill/internal/progression"
	"github.com/vytor/keydrill/internal/testutil/mocks"
)

type funcJob struct {
	name string
	fn   func(context.Context) error
}

func (j funcJob) Name() string                  { return j.name }
func (j funcJob) Run(ctx context.Context) error { return j.fn(ctx) }

func TestPool_RunsSubmittedJobs(t *testing.T) {
	p := NewPool(3, 16)
	p.Start(context.Background())

	var ran atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		require.NoError(t, p.Submit(funcJob{name: "count", fn: func(context.Context) error {
			defer wg.Done()
			ran.Add(1)
			return nil
		}}))
	}
	wg.Wait()
	p.Stop()

	assert.Equal(t, int32(10), ran.Load())
}

func TestPool_RejectsWhenFull(t *testing.T) {
	p := NewPool(1, 1)
	noop := funcJob{name: "noop", fn: func(context.Context) error { return nil }}

	require.NoError(t, p.Submit(noop))
	assert.ErrorIs(t, p.Submit(noop), ErrQueueFull)
	assert.Equal(t, 1, p.QueueSize())
}

func TestPool_RejectsAfterStop(t *testing.T) {
	p := NewPool(1, 1)
	p.Start(context.Background())
	p.Stop()
	p.Stop()

	err := p.Submit(funcJob{name: "late", fn: func(context.Context) error { return nil }})
	assert.ErrorIs(t, err, ErrPoolStopped)
}

func TestPool_SurvivesFailingAndPanickingJobs(t *testing.T) {
	p := NewPool(1, 4)
	p.Start(context.Background())

	done := make(chan struct{})
	require.NoError(t, p.Submit(funcJob{name: "fail", fn: func(context.Context) error { return errors.New("boom") }}))
	require.NoError(t, p.Submit(funcJob{name: "panic", fn: func(context.Context) error { panic("kaboom") }}))
	require.NoError(t, p.Submit(funcJob{name: "ok", fn: func(context.Context) error {
		close(done)
		return nil
	}}))

	<-done
	p.Stop()
}

func TestNotifyProgressionJob(t *testing.T) {
	notifier := new(mocks.MockNotifier)
	payload := progression.Payload{SessionID: "s1", Reviewed: 1}
	notifier.On("Notify", mock.Anything, payload).Return(nil).Once()

	job := &NotifyProgressionJob{Notifier: notifier, Payload: payload}
	assert.Equal(t, "notify_progression", job.Name())
	assert.NoError(t, job.Run(context.Background()))
	notifier.AssertExpectations(t)
}
