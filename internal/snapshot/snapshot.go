// Package snapshot defines the versioned interchange format for review state.
//
// A document looks like:
//
//	{"version": 1, "items": [{"item_id": "...", "strength": 2.5, "interval": 0,
//	  "next_due_at": "2023-05-01T12:00:00Z", "history": [{"reviewed_at": "...", "rating": "good"}]}]}
//
// Decode rejects versions it does not know and items that break the
// scheduling invariants.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/vytor/keydrill/internal/models"
)

// Version is the current document version.
const Version = 1

var (
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrInvalidItem        = errors.New("invalid review item in snapshot")
)

type document struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	Items      []record  `json:"items"`
}

type record struct {
	ItemID    string        `json:"item_id"`
	Strength  float64       `json:"strength"`
	Interval  int           `json:"interval"`
	NextDueAt time.Time     `json:"next_due_at"`
	History   []eventRecord `json:"history"`
}

type eventRecord struct {
	ReviewedAt time.Time     `json:"reviewed_at"`
	Rating     models.Rating `json:"rating"`
}

// Encode serializes items, sorted by id, into a version-tagged document.
func Encode(items []models.ReviewItem, exportedAt time.Time) ([]byte, error) {
	doc := document{Version: Version, ExportedAt: exportedAt.UTC(), Items: make([]record, 0, len(items))}
	for _, item := range items {
		rec := record{
			ItemID:    item.ItemID,
			Strength:  item.Strength,
			Interval:  item.Interval,
			NextDueAt: item.NextDueAt.UTC(),
			History:   make([]eventRecord, 0, len(item.History)),
		}
		for _, ev := range item.History {
			rec.History = append(rec.History, eventRecord{ReviewedAt: ev.ReviewedAt.UTC(), Rating: ev.Rating})
		}
		doc.Items = append(doc.Items, rec)
	}
	sort.Slice(doc.Items, func(i, j int) bool { return doc.Items[i].ItemID < doc.Items[j].ItemID })
	return json.MarshalIndent(doc, "", "  ")
}

// Decode parses a document produced by Encode.
func Decode(data []byte) ([]models.ReviewItem, error) {
	var head struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if head.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, head.Version)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	seen := make(map[string]bool, len(doc.Items))
	items := make([]models.ReviewItem, 0, len(doc.Items))
	for i, rec := range doc.Items {
		switch {
		case rec.ItemID == "":
			return nil, fmt.Errorf("%w: item %d has no id", ErrInvalidItem, i)
		case seen[rec.ItemID]:
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidItem, rec.ItemID)
		case rec.Strength < models.MinStrength:
			return nil, fmt.Errorf("%w: %q strength %.2f below %.1f", ErrInvalidItem, rec.ItemID, rec.Strength, models.MinStrength)
		case rec.Interval < 0:
			return nil, fmt.Errorf("%w: %q has negative interval", ErrInvalidItem, rec.ItemID)
		case rec.NextDueAt.IsZero():
			return nil, fmt.Errorf("%w: %q has no next_due_at", ErrInvalidItem, rec.ItemID)
		}
		seen[rec.ItemID] = true

		item := models.ReviewItem{
			ItemID:    rec.ItemID,
			Strength:  rec.Strength,
			Interval:  rec.Interval,
			NextDueAt: rec.NextDueAt,
			History:   make([]models.ReviewEvent, 0, len(rec.History)),
		}
		for j, ev := range rec.History {
			if !ev.Rating.IsValid() {
				return nil, fmt.Errorf("%w: %q history entry %d has no valid rating", ErrInvalidItem, rec.ItemID, j)
			}
			if ev.ReviewedAt.IsZero() {
				return nil, fmt.Errorf("%w: %q history entry %d has no reviewed_at", ErrInvalidItem, rec.ItemID, j)
			}
			item.History = append(item.History, models.ReviewEvent{ReviewedAt: ev.ReviewedAt, Rating: ev.Rating})
		}
		items = append(items, item)
	}
	return items, nil
}
