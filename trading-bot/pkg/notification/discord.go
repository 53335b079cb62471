package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// DiscordNotificationService handles sending notifications to Discord
type DiscordNotificationService struct {
	webhookURL string
	enabled    bool
	httpClient *http.Client
}

// DiscordWebhookPayload represents the payload sent to Discord webhook
type DiscordWebhookPayload struct {
	Content string `json:"content"`
}

// NewDiscordNotificationService creates a new Discord notification service
func NewDiscordNotificationService(webhookURL string) *DiscordNotificationService {
	return &DiscordNotificationService{
		webhookURL: webhookURL,
		enabled:    webhookURL != "",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// sendNotification sends a notification to Discord
func (d *DiscordNotificationService) sendNotification(ctx context.Context, message string) error {
	if !d.enabled {
		log.Debug("Discord notifications disabled (no webhook URL)")
		return nil
	}

	jsonData, err := json.Marshal(DiscordWebhookPayload{Content: message})
	if err != nil {
		return fmt.Errorf("failed to marshal Discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create Discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send Discord notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Discord webhook returned status %d", resp.StatusCode)
	}

	return nil
}

// NotifyReady sends a notification when the bot has resolved its Tradier configuration
func (d *DiscordNotificationService) NotifyReady(ctx context.Context, endpoint string) error {
	message := fmt.Sprintf("🚀 **Bluejacket Bot Started**\n"+
		"Tradier endpoint: %s", endpoint)
	return d.sendNotification(ctx, message)
}

// NotifyConfigError sends a notification when the configuration could not be resolved.
// err must not carry credential material; the loaders guarantee this.
func (d *DiscordNotificationService) NotifyConfigError(ctx context.Context, err error) error {
	message := fmt.Sprintf("⚠️ **Error Alert**\n"+
		"**Configuration**\n"+
		"Failed to resolve Tradier API configuration\n"+
		"Details: %s", err)
	return d.sendNotification(ctx, message)
}
