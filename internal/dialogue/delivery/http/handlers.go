package http

import (
	"context"
	"net/http"
	"time"

	"jewelbot-srv/internal/dialogue"
	"jewelbot-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	// capabilityReply is sent for non-text message types.
	capabilityReply = "I can only read text messages for now. Please type what you're looking for."
	// dedupTTL bounds the duplicate-delivery guard keys.
	dedupTTL = 24 * time.Hour
)

// Verify handles the webhook subscription handshake: echo the challenge
// when the verify token matches, reject otherwise.
func (h *handler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		c.String(http.StatusOK, challenge)
		return
	}
	c.String(http.StatusForbidden, "verification failed")
}

// Receive handles inbound webhook events. The provider is always
// acknowledged with 200, even when a turn fails internally, to prevent
// provider-side retries.
func (h *handler) Receive(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWebhookRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "dialogue.delivery.http.Receive: malformed payload: %v", err)
		response.OK(c, gin.H{"status": "ignored"})
		return
	}

	for _, msg := range req.messages() {
		h.handleInbound(c, msg)
	}

	response.OK(c, gin.H{"status": "received"})
}

func (h *handler) handleInbound(c *gin.Context, msg inboundMessage) {
	ctx := c.Request.Context()

	if h.isDuplicate(ctx, msg.ID) {
		h.l.Infof(ctx, "dialogue.delivery.http.Receive: duplicate delivery %s skipped", msg.ID)
		return
	}

	if msg.Type != "text" || msg.Text == nil {
		if err := h.renderer.Render(ctx, msg.From, capabilityReply, nil); err != nil {
			h.l.Errorf(ctx, "dialogue.delivery.http.Receive: capability reply failed for %s: %v", msg.From, err)
		}
		return
	}

	out, err := h.uc.HandleMessage(ctx, dialogue.MessageInput{
		UserID:  msg.From,
		Message: msg.Text.Body,
	})
	if err != nil {
		h.l.Errorf(ctx, "dialogue.delivery.http.Receive: usecase HandleMessage failed: %v", err)
		return
	}

	if err := h.renderer.Render(ctx, msg.From, out.Reply, out.Products); err != nil {
		h.l.Errorf(ctx, "dialogue.delivery.http.Receive: render failed for %s: %v", msg.From, err)
		if h.discord != nil {
			_ = h.discord.SendError(ctx, "Reply dispatch failed", "user "+msg.From, err)
		}
	}
}

// isDuplicate marks the message ID as seen and reports whether it already
// was. Without Redis, or on Redis errors, every delivery is treated as new.
func (h *handler) isDuplicate(ctx context.Context, messageID string) bool {
	if h.redis == nil || messageID == "" {
		return false
	}
	set, err := h.redis.SetNX(ctx, "wamid:"+messageID, 1, dedupTTL)
	if err != nil {
		h.l.Warnf(ctx, "dialogue.delivery.http.isDuplicate: redis error, proceeding: %v", err)
		return false
	}
	return !set
}
