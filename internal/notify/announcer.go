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

// AnnouncerInterface publishes a reset summary to an external channel.
// Success or failure is all the orchestrator needs; formatting is the
// receiver's problem.
type AnnouncerInterface interface {
	PublishResetSummary(ctx context.Context, result *models.ResetResult) error
}

// WebhookAnnouncer posts the summary as JSON to a configured endpoint.
type WebhookAnnouncer struct {
	url    string
	client *http.Client
	logger providers.Logger
}

type announcementPayload struct {
	ResetID      string                                    `json:"resetId"`
	Period       string                                    `json:"period"`
	ModesReset   []models.Mode                             `json:"modesReset"`
	TotalPlayers int64                                     `json:"totalPlayers"`
	TopPlayers   map[models.Mode][]models.LeaderboardEntry `json:"topPlayers"`
}

func NewAnnouncer(conf *structures.Config, logger providers.Logger) AnnouncerInterface {
	if conf.Notify.AnnounceURL == "" {
		logger.Infof(providers.TypeApp, "Announcement publishing disabled")
		return &noopAnnouncer{}
	}
	return &WebhookAnnouncer{
		url:    conf.Notify.AnnounceURL,
		client: &http.Client{Timeout: conf.Notify.Timeout},
		logger: logger,
	}
}

func (a *WebhookAnnouncer) PublishResetSummary(ctx context.Context, result *models.ResetResult) error {
	payload := announcementPayload{
		ResetID:      result.ResetID,
		Period:       result.Period,
		ModesReset:   result.ModesReset,
		TotalPlayers: result.TotalPlayersAffected,
		TopPlayers:   result.TopPlayers,
	}
	body, err := json.Marshal(&payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("announcement endpoint returned %d", resp.StatusCode)
	}
	a.logger.Infof(providers.TypeApp, "Published reset announcement for %s", result.ResetID)
	return nil
}

type noopAnnouncer struct{}

func (n *noopAnnouncer) PublishResetSummary(context.Context, *models.ResetResult) error {
	return nil
}
