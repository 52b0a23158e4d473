package whatsapp

import (
	"context"
	"fmt"
	"net/http"
)

// SendText sends a plain text message.
func (w *whatsappImpl) SendText(ctx context.Context, to, body string) error {
	return w.send(ctx, sendRequest{
		MessagingProduct: MessagingProduct,
		To:               to,
		Type:             "text",
		Text:             &textBody{Body: body},
	})
}

// SendImage sends an image message by URL with an optional caption.
func (w *whatsappImpl) SendImage(ctx context.Context, to, link, caption string) error {
	return w.send(ctx, sendRequest{
		MessagingProduct: MessagingProduct,
		To:               to,
		Type:             "image",
		Image:            &imageBody{Link: link, Caption: caption},
	})
}

func (w *whatsappImpl) send(ctx context.Context, req sendRequest) error {
	url := fmt.Sprintf("%s/%s/messages", w.baseURL, w.phoneNumberID)
	headers := map[string]string{
		"Authorization": "Bearer " + w.accessToken,
	}

	body, statusCode, err := w.httpClient.Post(ctx, url, req, headers)
	if err != nil {
		return fmt.Errorf("failed to call WhatsApp API: %w", err)
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("WhatsApp API returned status: %d, body: %s", statusCode, string(body))
	}
	return nil
}
