package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processWebhookRequest(c *gin.Context) (webhookReq, error) {
	var req webhookReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	return req, nil
}

// messages flattens the event envelope into the inbound user messages it
// carries. Status receipts and unrelated change fields produce nothing.
func (r webhookReq) messages() []inboundMessage {
	var msgs []inboundMessage
	for _, entry := range r.Entry {
		for _, change := range entry.Changes {
			msgs = append(msgs, change.Value.Messages...)
		}
	}
	return msgs
}
