package models

import "time"

// SessionConfig controls which due items are selected for a session.
type SessionConfig struct {
	MaxItems         int          `json:"max_items,omitempty"`
	FocusOnDifficult bool         `json:"focus_on_difficult,omitempty"`
	Categories       []Category   `json:"categories,omitempty"`
	Difficulties     []Difficulty `json:"difficulties,omitempty"`
}

// CatalogFilter returns the config's category and difficulty filters.
func (c SessionConfig) CatalogFilter() CatalogFilter {
	return CatalogFilter{Categories: c.Categories, Difficulties: c.Difficulties}
}

// Normalize returns a copy with its catalog filters normalized.
func (c SessionConfig) Normalize() SessionConfig {
	f := c.CatalogFilter().Normalize()
	c.Categories, c.Difficulties = f.Categories, f.Difficulties
	return c
}

// ReviewSession is a snapshot of due items handed to the caller.
type ReviewSession struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	ItemIDs   []string       `json:"item_ids"`
	Completed bool           `json:"completed"`
	Results   []ReviewResult `json:"results,omitempty"`
}

// ReviewResult is the outcome of reviewing one item.
type ReviewResult struct {
	ItemID         string `json:"item_id"`
	Rating         Rating `json:"rating"`
	ResponseTimeMs int64  `json:"response_time_ms"`
}

// CompletionReport summarizes how a session's results were applied.
type CompletionReport struct {
	Session  *ReviewSession `json:"session"`
	Reviewed int            `json:"reviewed"`
	Skipped  []string       `json:"skipped"`
}
