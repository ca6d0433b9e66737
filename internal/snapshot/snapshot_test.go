package snapshot_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/keydrill/internal/models"
	"github.com/vytor/keydrill/internal/snapshot"
)

var now = time.Date(2023, time.May, 1, 12, 0, 0, 0, time.UTC)

func TestEncodeDecode(t *testing.T) {
	items := []models.ReviewItem{
		{
			ItemID:    "vscode.save",
			Strength:  2.6,
			Interval:  1,
			NextDueAt: now.AddDate(0, 0, 1),
			History:   []models.ReviewEvent{{ReviewedAt: now, Rating: models.RatingEasy}},
		},
		models.NewReviewItem("vscode.find", now),
	}

	data, err := snapshot.Encode(items, now)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": 1`)
	assert.Contains(t, string(data), `"rating": "easy"`)

	decoded, err := snapshot.Decode(data)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, "vscode.find", decoded[0].ItemID, "items are sorted by id")
	assert.Equal(t, 2.6, decoded[1].Strength)
	assert.True(t, decoded[1].NextDueAt.Equal(now.AddDate(0, 0, 1)))
	require.Len(t, decoded[1].History, 1)
	assert.Equal(t, models.RatingEasy, decoded[1].History[0].Rating)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "unknown version",
			doc:  `{"version": 2, "items": []}`,
			want: snapshot.ErrUnsupportedVersion,
		},
		{
			name: "missing version",
			doc:  `{"items": []}`,
			want: snapshot.ErrUnsupportedVersion,
		},
		{
			name: "strength below floor",
			doc:  `{"version": 1, "items": [{"item_id": "a", "strength": 1.0, "interval": 0, "next_due_at": "2023-05-01T12:00:00Z"}]}`,
			want: snapshot.ErrInvalidItem,
		},
		{
			name: "negative interval",
			doc:  `{"version": 1, "items": [{"item_id": "a", "strength": 2.5, "interval": -1, "next_due_at": "2023-05-01T12:00:00Z"}]}`,
			want: snapshot.ErrInvalidItem,
		},
		{
			name: "duplicate id",
			doc: `{"version": 1, "items": [
				{"item_id": "a", "strength": 2.5, "interval": 0, "next_due_at": "2023-05-01T12:00:00Z"},
				{"item_id": "a", "strength": 2.5, "interval": 0, "next_due_at": "2023-05-01T12:00:00Z"}]}`,
			want: snapshot.ErrInvalidItem,
		},
		{
			name: "unknown rating",
			doc:  `{"version": 1, "items": [{"item_id": "a", "strength": 2.5, "interval": 0, "next_due_at": "2023-05-01T12:00:00Z", "history": [{"reviewed_at": "2023-05-01T12:00:00Z", "rating": "meh"}]}]}`,
			want: models.ErrInvalidRating,
		},
		{
			name: "missing rating",
			doc:  `{"version": 1, "items": [{"item_id": "a", "strength": 2.5, "interval": 0, "next_due_at": "2023-05-01T12:00:00Z", "history": [{"reviewed_at": "2023-05-01T12:00:00Z"}]}]}`,
			want: snapshot.ErrInvalidItem,
		},
		{
			name: "missing reviewed_at",
			doc:  `{"version": 1, "items": [{"item_id": "a", "strength": 2.5, "interval": 0, "next_due_at": "2023-05-01T12:00:00Z", "history": [{"rating": "good"}]}]}`,
			want: snapshot.ErrInvalidItem,
		},
		{
			name: "missing next_due_at",
			doc:  `{"version": 1, "items": [{"item_id": "a", "strength": 2.5, "interval": 0}]}`,
			want: snapshot.ErrInvalidItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := snapshot.Decode([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := snapshot.Decode([]byte(`not json`))
	assert.Error(t, err)
}
