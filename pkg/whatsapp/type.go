package whatsapp

import pkghttp "jewelbot-srv/pkg/http"

// WhatsAppConfig holds the configuration for the WhatsApp Cloud API client.
type WhatsAppConfig struct {
	AccessToken   string
	PhoneNumberID string
	BaseURL       string // defaults to DefaultBaseURL
}

// whatsappImpl implements IWhatsApp.
type whatsappImpl struct {
	accessToken   string
	phoneNumberID string
	baseURL       string
	httpClient    pkghttp.IClient
}

// sendRequest is the outbound message payload.
type sendRequest struct {
	MessagingProduct string     `json:"messaging_product"`
	To               string     `json:"to"`
	Type             string     `json:"type"`
	Text             *textBody  `json:"text,omitempty"`
	Image            *imageBody `json:"image,omitempty"`
}

type textBody struct {
	Body string `json:"body"`
}

type imageBody struct {
	Link    string `json:"link"`
	Caption string `json:"caption,omitempty"`
}
