package renderer

import (
	"context"

	"jewelbot-srv/internal/model"
)

// Renderer formats product records into outbound messages and dispatches
// them through the messaging transport.
type Renderer interface {
	// Render sends the reply text first, then one formatted fragment per
	// product (plus an image message when an image URL is present).
	// Text-dispatch failures propagate; image-dispatch failures are logged
	// and swallowed.
	Render(ctx context.Context, userID, replyText string, products []model.Product) error
}
