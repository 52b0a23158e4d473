package whatsapp

import (
	"context"
	"fmt"
	"time"

	pkghttp "jewelbot-srv/pkg/http"
)

// IWhatsApp defines the interface for the outbound WhatsApp messaging transport.
// Implementations are safe for concurrent use.
type IWhatsApp interface {
	SendText(ctx context.Context, to, body string) error
	SendImage(ctx context.Context, to, link, caption string) error
}

// NewWhatsApp creates a new WhatsApp Cloud API client. Returns the interface.
func NewWhatsApp(cfg WhatsAppConfig) (IWhatsApp, error) {
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("whatsapp: access token is required")
	}
	if cfg.PhoneNumberID == "" {
		return nil, fmt.Errorf("whatsapp: phone number ID is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &whatsappImpl{
		accessToken:   cfg.AccessToken,
		phoneNumberID: cfg.PhoneNumberID,
		baseURL:       cfg.BaseURL,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   30 * time.Second,
			Retries:   2,
			RetryWait: 500 * time.Millisecond,
		}),
	}, nil
}
