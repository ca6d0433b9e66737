// Package events carries change notifications from the review engine to
// whoever subscribes (progression forwarding, UI streams, tests).
package events

import (
	"sync"
	"time"

	"github.com/vytor/keydrill/internal/logger"
	"github.com/vytor/keydrill/internal/models"
)

type Kind string

const (
	KindItemReviewed     Kind = "item.reviewed"
	KindSessionCompleted Kind = "session.completed"
)

// Event is one notification. Item is set for item.reviewed, Completion for
// session.completed.
type Event struct {
	Kind       Kind
	At         time.Time
	Item       *models.ReviewItem
	Completion *models.CompletionReport
}

// Publisher is what the services depend on. Publish must not block.
type Publisher interface {
	Publish(ev Event)
}

type subscription struct {
	ch    chan Event
	kinds map[Kind]bool
}

func (s *subscription) wants(k Kind) bool {
	return len(s.kinds) == 0 || s.kinds[k]
}

// Bus fans events out to subscriber channels. Slow subscribers lose events
// rather than stalling the publisher.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]*subscription
	closed bool
	log    *logger.Logger
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[int]*subscription),
		log:  logger.Default().WithPrefix("events"),
	}
}

// Subscribe registers a channel with the given buffer. With no kinds the
// subscriber receives everything. The returned func unsubscribes and closes
// the channel; calling it more than once is safe.
func (b *Bus) Subscribe(buffer int, kinds ...Kind) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	sub := &subscription{ch: ch, kinds: make(map[Kind]bool, len(kinds))}
	for _, k := range kinds {
		sub.kinds[k] = true
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = sub

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if s, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(s.ch)
			}
		})
	}
}

func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, sub := range b.subs {
		if !sub.wants(ev.Kind) {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			b.log.Warn("subscriber %d is full, dropping %s event", id, ev.Kind)
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close unsubscribes everyone. Later subscriptions receive a closed channel.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, sub := range b.subs {
		close(sub.ch)
		delete(b.subs, id)
	}
	b.closed = true
}

var _ Publisher = (*Bus)(nil)
