package http

import "encoding/json"

// webhookReq is the WhatsApp Cloud API event envelope. Only the fields the
// orchestrator consumes are declared.
type webhookReq struct {
	Object string         `json:"object"`
	Entry  []webhookEntry `json:"entry"`
}

type webhookEntry struct {
	ID      string          `json:"id"`
	Changes []webhookChange `json:"changes"`
}

type webhookChange struct {
	Field string       `json:"field"`
	Value webhookValue `json:"value"`
}

type webhookValue struct {
	MessagingProduct string            `json:"messaging_product"`
	Messages         []inboundMessage  `json:"messages"`
	Statuses         []json.RawMessage `json:"statuses"` // delivery/read receipts, acknowledged and ignored
}

type inboundMessage struct {
	From string       `json:"from"`
	ID   string       `json:"id"`
	Type string       `json:"type"`
	Text *inboundText `json:"text"`
}

type inboundText struct {
	Body string `json:"body"`
}
