package notify

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sld/internal/models"
	"sld/internal/providers"
	"sld/internal/structures"

	json "github.com/goccy/go-json"
)

// NotifierInterface delivers per-player achievement notifications and
// reports the outcome for each recipient. Delivery failures are data, not
// errors: the caller records them and moves on.
type NotifierInterface interface {
	NotifyTopPlayers(ctx context.Context, mode models.Mode, entries []models.LeaderboardEntry) []models.NotificationOutcome
}

// WebhookNotifier posts one notification per recipient to a configured
// endpoint.
type WebhookNotifier struct {
	url    string
	client *http.Client
	logger providers.Logger
}

type notificationPayload struct {
	Username    string      `json:"username"`
	Achievement string      `json:"achievement"`
	Mode        models.Mode `json:"mode"`
	Rank        int         `json:"rank"`
	Score       int64       `json:"score"`
}

func NewNotifier(conf *structures.Config, logger providers.Logger) NotifierInterface {
	if conf.Notify.NotifyURL == "" {
		logger.Infof(providers.TypeApp, "Player notifications disabled")
		return &noopNotifier{}
	}
	return &WebhookNotifier{
		url:    conf.Notify.NotifyURL,
		client: &http.Client{Timeout: conf.Notify.Timeout},
		logger: logger,
	}
}

func achievementText(mode models.Mode, rank int) string {
	return fmt.Sprintf("Finished #%d on the %s leaderboard", rank, mode)
}

func (n *WebhookNotifier) NotifyTopPlayers(ctx context.Context, mode models.Mode, entries []models.LeaderboardEntry) []models.NotificationOutcome {
	outcomes := make([]models.NotificationOutcome, 0, len(entries))
	for _, entry := range entries {
		achievement := achievementText(mode, entry.Rank)
		outcome := models.NotificationOutcome{
			Username:    entry.Username,
			Achievement: achievement,
		}
		if err := n.send(ctx, notificationPayload{
			Username:    entry.Username,
			Achievement: achievement,
			Mode:        mode,
			Rank:        entry.Rank,
			Score:       entry.Score,
		}); err != nil {
			outcome.Error = err.Error()
			n.logger.Warnf(providers.TypeApp, "Notification to %s failed: %s", entry.Username, err)
		} else {
			outcome.Delivered = true
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func (n *WebhookNotifier) send(ctx context.Context, payload notificationPayload) error {
	body, err := json.Marshal(&payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
	}
	return nil
}

type noopNotifier struct{}

func (n *noopNotifier) NotifyTopPlayers(_ context.Context, _ models.Mode, entries []models.LeaderboardEntry) []models.NotificationOutcome {
	outcomes := make([]models.NotificationOutcome, 0, len(entries))
	for _, entry := range entries {
		outcomes = append(outcomes, models.NotificationOutcome{
			Username:    entry.Username,
			Achievement: achievementText(entry.Mode, entry.Rank),
			Delivered:   false,
			Error:       "notifications disabled",
		})
	}
	return outcomes
}
