package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sld/internal/models"
	"sld/internal/structures"
	"sld/internal/testutil"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notifyConfig(announceURL, notifyURL string) *structures.Config {
	return &structures.Config{
		Notify: structures.NotifyConfig{
			AnnounceURL: announceURL,
			NotifyURL:   notifyURL,
			Timeout:     2 * time.Second,
		},
	}
}

func sampleResult() *models.ResetResult {
	return &models.ResetResult{
		ResetID:    "r1",
		Timestamp:  time.Now(),
		Period:     "2026-W35",
		ModesReset: []models.Mode{models.ModeHard},
		TopPlayers: map[models.Mode][]models.LeaderboardEntry{
			models.ModeHard: {
				{RankedEntry: models.RankedEntry{UserID: "u1", Username: "alice", Score: 900}, Rank: 1},
			},
		},
		TotalPlayersAffected: 3,
	}
}

func TestWebhookAnnouncer_PostsSummary(t *testing.T) {
	var received announcementPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	a := NewAnnouncer(notifyConfig(srv.URL, ""), &testutil.MockLogger{})
	require.NoError(t, a.PublishResetSummary(context.Background(), sampleResult()))

	assert.Equal(t, "r1", received.ResetID)
	assert.Equal(t, "2026-W35", received.Period)
	assert.Equal(t, int64(3), received.TotalPlayers)
	require.Len(t, received.TopPlayers[models.ModeHard], 1)
	assert.Equal(t, "alice", received.TopPlayers[models.ModeHard][0].Username)
}

func TestWebhookAnnouncer_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := NewAnnouncer(notifyConfig(srv.URL, ""), &testutil.MockLogger{})
	err := a.PublishResetSummary(context.Background(), sampleResult())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestWebhookAnnouncer_UnreachableEndpoint(t *testing.T) {
	a := NewAnnouncer(notifyConfig("http://127.0.0.1:1", ""), &testutil.MockLogger{})
	assert.Error(t, a.PublishResetSummary(context.Background(), sampleResult()))
}

func TestNewAnnouncer_EmptyURLIsNoop(t *testing.T) {
	a := NewAnnouncer(notifyConfig("", ""), &testutil.MockLogger{})
	assert.NoError(t, a.PublishResetSummary(context.Background(), sampleResult()))
}

func topEntries() []models.LeaderboardEntry {
	return []models.LeaderboardEntry{
		{RankedEntry: models.RankedEntry{UserID: "u1", Username: "alice", Score: 900, Mode: models.ModeHard}, Rank: 1},
		{RankedEntry: models.RankedEntry{UserID: "u2", Username: "bob", Score: 500, Mode: models.ModeHard}, Rank: 2},
	}
}

func TestWebhookNotifier_OnePostPerRecipient(t *testing.T) {
	var payloads []notificationPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p notificationPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		payloads = append(payloads, p)
	}))
	defer srv.Close()

	n := NewNotifier(notifyConfig("", srv.URL), &testutil.MockLogger{})
	outcomes := n.NotifyTopPlayers(context.Background(), models.ModeHard, topEntries())

	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].Delivered)
	assert.True(t, outcomes[1].Delivered)
	assert.Equal(t, "Finished #1 on the hard leaderboard", outcomes[0].Achievement)

	require.Len(t, payloads, 2)
	assert.Equal(t, "alice", payloads[0].Username)
	assert.Equal(t, 1, payloads[0].Rank)
	assert.Equal(t, "bob", payloads[1].Username)
	assert.Equal(t, 2, payloads[1].Rank)
}

func TestWebhookNotifier_FailuresAreOutcomesNotErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewNotifier(notifyConfig("", srv.URL), &testutil.MockLogger{})
	outcomes := n.NotifyTopPlayers(context.Background(), models.ModeHard, topEntries())

	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.False(t, o.Delivered)
		assert.NotEmpty(t, o.Error)
	}
}

func TestNewNotifier_EmptyURLIsNoop(t *testing.T) {
	n := NewNotifier(notifyConfig("", ""), &testutil.MockLogger{})
	outcomes := n.NotifyTopPlayers(context.Background(), models.ModeHard, topEntries())

	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.False(t, o.Delivered)
		assert.Equal(t, "notifications disabled", o.Error)
	}
}
