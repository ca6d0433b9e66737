package worker

import (
	"context"

	"github.com/vytor/keydrill/internal/progression"
)

// NotifyProgressionJob delivers one session summary to the progression system.
type NotifyProgressionJob struct {
	Notifier progression.Notifier
	Payload  progression.Payload
}

func (j *NotifyProgressionJob) Name() string { return "notify_progression" }

func (j *NotifyProgressionJob) Run(ctx context.Context) error {
	return j.Notifier.Notify(ctx, j.Payload)
}
