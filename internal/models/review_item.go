package models

import "time"

const (
	// InitialStrength is the ease factor given to newly registered items.
	InitialStrength = 2.5
	// MinStrength is the hard floor for an item's ease factor.
	MinStrength = 1.3
)

// ReviewItem is the scheduling record of one learnable shortcut.
type ReviewItem struct {
	ItemID    string        `json:"item_id"`
	Strength  float64       `json:"strength"`
	Interval  int           `json:"interval"`
	NextDueAt time.Time     `json:"next_due_at"`
	History   []ReviewEvent `json:"history"`
}

// ReviewEvent is one entry of an item's review history.
type ReviewEvent struct {
	ReviewedAt time.Time `json:"reviewed_at"`
	Rating     Rating    `json:"rating"`
}

// NewReviewItem returns a fresh item that is due at now.
func NewReviewItem(itemID string, now time.Time) ReviewItem {
	return ReviewItem{
		ItemID:    itemID,
		Strength:  InitialStrength,
		Interval:  0,
		NextDueAt: now,
		History:   []ReviewEvent{},
	}
}

// IsDue reports whether the item is eligible for review at now.
func (i ReviewItem) IsDue(now time.Time) bool {
	return !i.NextDueAt.After(now)
}

// Clone returns a copy that shares no history storage with i.
func (i ReviewItem) Clone() ReviewItem {
	out := i
	out.History = make([]ReviewEvent, len(i.History))
	copy(out.History, i.History)
	return out
}
