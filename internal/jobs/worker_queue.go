package jobs

import (
	"time"

	"github.com/vytor/keydrill/internal/models"
	"github.com/vytor/keydrill/internal/progression"
	"github.com/vytor/keydrill/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	pool     *worker.Pool
	notifier progression.Notifier
	clock    func() time.Time
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(pool *worker.Pool, notifier progression.Notifier) *WorkerQueue {
	return &WorkerQueue{pool: pool, notifier: notifier, clock: time.Now}
}

func (q *WorkerQueue) EnqueueProgression(report *models.CompletionReport) error {
	return q.pool.Submit(&worker.NotifyProgressionJob{
		Notifier: q.notifier,
		Payload:  progression.NewPayload(report, q.clock()),
	})
}

var _ JobQueue = (*WorkerQueue)(nil)
