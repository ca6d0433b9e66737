package srs

import (
	"math"
	"time"

	"github.com/vytor/keydrill/internal/models"
)

// ApplyReview returns the item's next scheduling state after a review rated
// at now (SM-2 variant). The input is not modified.
//
// Ease factor is updated first and clamped to models.MinStrength; the
// interval then follows 0 -> 1 -> 6 -> round(interval * new ease). A failed
// review (again) puts the item back to interval 0, due immediately.
func ApplyReview(item models.ReviewItem, rating models.Rating, now time.Time) models.ReviewItem {
	q := float64(rating.Quality())

	ef := item.Strength + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ef < models.MinStrength {
		ef = models.MinStrength
	}

	var interval int
	switch {
	case q < 3:
		interval = 0
	case item.Interval == 0:
		interval = 1
	case item.Interval == 1:
		interval = 6
	default:
		interval = int(math.Round(float64(item.Interval) * ef))
	}

	updated := item.Clone()
	updated.Strength = ef
	updated.Interval = interval
	updated.NextDueAt = now.AddDate(0, 0, interval)
	updated.History = append(updated.History, models.ReviewEvent{ReviewedAt: now, Rating: rating})
	return updated
}
