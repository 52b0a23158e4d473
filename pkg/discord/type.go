package discord

import (
	pkghttp "jewelbot-srv/pkg/http"
	"jewelbot-srv/pkg/log"
)

// DiscordWebhook contains webhook information for the Discord API.
type DiscordWebhook struct {
	ID    string
	Token string
}

// discordImpl implements IDiscord.
type discordImpl struct {
	l          log.Logger
	webhook    *DiscordWebhook
	httpClient pkghttp.IClient
}

// EmbedField represents a field in a Discord embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed represents a Discord embed message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// webhookPayload is the payload sent to the Discord webhook.
type webhookPayload struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

// Embed colors.
const (
	colorError = 0xE74C3C
	colorInfo  = 0x3498DB
)
