package progression

import "context"

// Notifier delivers session summaries. Jobs depend on this so tests can
// substitute a fake.
type Notifier interface {
	Notify(ctx context.Context, payload Payload) error
}

var _ Notifier = (*Client)(nil)
