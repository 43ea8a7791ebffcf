package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Discord embed accent colors.
const (
	embedColorBlue  = 0x3498DB
	embedColorGreen = 0x2ECC71
	embedColorRed   = 0xE74C3C
	embedColorGrey  = 0x95A5A6
)

// DiscordEmbedField represents one field inside a Discord embed
type DiscordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// DiscordEmbed represents a rich embed in a Discord webhook message
type DiscordEmbed struct {
	Title       string              `json:"title,omitempty"`
	Description string              `json:"description,omitempty"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color,omitempty"`
	Fields      []DiscordEmbedField `json:"fields,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

// discordWebhookPayload is the body posted to a Discord webhook URL
type discordWebhookPayload struct {
	Username string         `json:"username,omitempty"`
	Content  string         `json:"content,omitempty"`
	Embeds   []DiscordEmbed `json:"embeds,omitempty"`
}

// DiscordNotifier posts messages to Discord webhook URLs
type DiscordNotifier struct {
	httpClient *http.Client
	username   string
}

// NewDiscordNotifier creates a webhook notifier with the given request timeout
func NewDiscordNotifier(timeout time.Duration) *DiscordNotifier {
	return &DiscordNotifier{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		username: "valo-platform",
	}
}

// Send posts a message to a webhook URL and returns the HTTP status code.
// Discord answers 204 on success.
func (n *DiscordNotifier) Send(ctx context.Context, webhookURL string, content string, embeds []DiscordEmbed) (int, error) {
	payload := discordWebhookPayload{
		Username: n.username,
		Content:  content,
		Embeds:   embeds,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", webhookURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return 0, fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, fmt.Errorf("webhook request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return resp.StatusCode, nil
}
