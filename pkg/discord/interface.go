package discord

import (
	"context"
	"errors"
	"time"

	pkghttp "jewelbot-srv/pkg/http"
	"jewelbot-srv/pkg/log"
)

var errWebhookRequired = errors.New("discord: webhook ID and token are required")

// IDiscord defines the interface for the Discord webhook notifier.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendError(ctx context.Context, title, description string, err error) error
	SendInfo(ctx context.Context, title, description string) error
}

// New creates a new Discord notifier. Returns the interface.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	return &discordImpl{
		l:       l,
		webhook: webhook,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   10 * time.Second,
			Retries:   2,
			RetryWait: 500 * time.Millisecond,
		}),
	}, nil
}
