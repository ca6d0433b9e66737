package progression

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/keydrill/internal/models"
)

var completedAt = time.Date(2023, time.May, 1, 12, 30, 0, 0, time.UTC)

func TestNotify_PostsPayload(t *testing.T) {
	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	payload := Payload{SessionID: "s1", CompletedAt: completedAt, Reviewed: 2, Ratings: RatingCounts{Good: 1, Easy: 1}}
	require.NoError(t, New(srv.URL).Notify(context.Background(), payload))
	assert.Equal(t, payload, got)
}

func TestNotify_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := New(srv.URL).Notify(context.Background(), Payload{SessionID: "s1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNotify_Disabled(t *testing.T) {
	c := New("")
	assert.False(t, c.Enabled())
	assert.NoError(t, c.Notify(context.Background(), Payload{SessionID: "s1"}))
}

func TestNotify_HonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, New(srv.URL).Notify(ctx, Payload{SessionID: "s1"}))
}

func TestNewPayload(t *testing.T) {
	report := &models.CompletionReport{
		Session: &models.ReviewSession{
			ID:        "s1",
			Completed: true,
			Results: []models.ReviewResult{
				{ItemID: "a", Rating: models.RatingAgain},
				{ItemID: "b", Rating: models.RatingGood},
				{ItemID: "c", Rating: models.RatingGood},
				{ItemID: "ghost", Rating: models.RatingEasy},
			},
		},
		Reviewed: 3,
		Skipped:  []string{"ghost"},
	}

	p := NewPayload(report, completedAt)
	assert.Equal(t, Payload{
		SessionID:   "s1",
		CompletedAt: completedAt,
		Reviewed:    3,
		Skipped:     1,
		Ratings:     RatingCounts{Again: 1, Good: 2},
	}, p)
}
