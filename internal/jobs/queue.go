package jobs

import "github.com/vytor/keydrill/internal/models"

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	EnqueueProgression(report *models.CompletionReport) error
}
