package jobs

import (
	"context"

	"github.com/vytor/keydrill/internal/events"
	"github.com/vytor/keydrill/internal/logger"
)

// Forward enqueues a progression job for every session.completed event on
// in. It returns when ctx is done or in is closed. Enqueue failures are
// logged and the event is dropped.
func Forward(ctx context.Context, in <-chan events.Event, q JobQueue) {
	log := logger.FromContext(ctx).WithPrefix("forwarder")
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-in:
			if !ok {
				log.Debug("event stream closed")
				return
			}
			if ev.Kind != events.KindSessionCompleted || ev.Completion == nil {
				continue
			}
			if err := q.EnqueueProgression(ev.Completion); err != nil {
				log.Warn("dropping progression notification: %v", err)
			}
		}
	}
}
