package discord

import (
	"context"
	"fmt"
	"net/http"
)

// SendMessage posts a plain content message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.post(ctx, webhookPayload{Content: content})
}

// SendError posts an error embed.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := Embed{
		Title:       title,
		Description: description,
		Color:       colorError,
	}
	if err != nil {
		embed.Fields = append(embed.Fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.post(ctx, webhookPayload{Embeds: []Embed{embed}})
}

// SendInfo posts an informational embed.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.post(ctx, webhookPayload{Embeds: []Embed{{
		Title:       title,
		Description: description,
		Color:       colorInfo,
	}}})
}

func (d *discordImpl) post(ctx context.Context, payload webhookPayload) error {
	url := fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)

	body, statusCode, err := d.httpClient.Post(ctx, url, payload, nil)
	if err != nil {
		return fmt.Errorf("failed to call Discord webhook: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusNoContent {
		return fmt.Errorf("Discord webhook returned status: %d, body: %s", statusCode, string(body))
	}
	return nil
}
