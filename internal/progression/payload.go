package progression

import (
	"time"

	"github.com/vytor/keydrill/internal/models"
)

// Payload is the JSON body posted to the webhook.
type Payload struct {
	SessionID   string       `json:"session_id"`
	CompletedAt time.Time    `json:"completed_at"`
	Reviewed    int          `json:"reviewed"`
	Skipped     int          `json:"skipped"`
	Ratings     RatingCounts `json:"ratings"`
}

type RatingCounts struct {
	Again int `json:"again"`
	Hard  int `json:"hard"`
	Good  int `json:"good"`
	Easy  int `json:"easy"`
}

// NewPayload summarizes a completion report. Ratings of skipped items are
// not counted.
func NewPayload(report *models.CompletionReport, completedAt time.Time) Payload {
	p := Payload{
		CompletedAt: completedAt.UTC(),
		Reviewed:    report.Reviewed,
		Skipped:     len(report.Skipped),
	}
	if report.Session == nil {
		return p
	}
	p.SessionID = report.Session.ID

	skipped := make(map[string]bool, len(report.Skipped))
	for _, id := range report.Skipped {
		skipped[id] = true
	}
	for _, r := range report.Session.Results {
		if skipped[r.ItemID] {
			continue
		}
		switch r.Rating {
		case models.RatingAgain:
			p.Ratings.Again++
		case models.RatingHard:
			p.Ratings.Hard++
		case models.RatingGood:
			p.Ratings.Good++
		case models.RatingEasy:
			p.Ratings.Easy++
		}
	}
	return p
}
