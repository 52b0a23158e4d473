package dialogue

import (
	"time"

	"jewelbot-srv/internal/model"
)

const (
	// PageSize is how many products are rendered per turn and per "show more" batch.
	PageSize = 3
	// MaxModelResults caps the product payload returned to the model,
	// regardless of true match count.
	MaxModelResults = 20
	// HistoryWindow is how many stored turns are sent to the model (3 user/assistant pairs).
	HistoryWindow = 6
	// MaxHistoryTurns bounds the stored history (6 pairs).
	MaxHistoryTurns = 12
)

// Fixed replies served without a model call.
const (
	ApologyReply     = "Sorry, I'm having trouble answering right now. Please try again in a moment."
	SearchFirstReply = `Please search for products first, for example: "show me gold rings under 50000".`
)

// Turn paths, recorded in analytics events.
const (
	PathContinuation = "continuation"
	PathGuidance     = "guidance"
	PathRetrieval    = "retrieval"
	PathFallback     = "fallback"
	PathDirect       = "direct"
)

// MessageInput is one inbound user message.
type MessageInput struct {
	UserID  string
	Message string
}

// TurnOutput is the assistant reply plus the products to render this turn.
type TurnOutput struct {
	Reply    string
	Products []model.Product
}

// TurnEvent is the analytics event published after a completed turn.
type TurnEvent struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Path         string    `json:"path"`
	Query        string    `json:"query,omitempty"`
	MatchCount   int       `json:"match_count"`
	ProductsSent int       `json:"products_sent"`
	LatencyMs    int64     `json:"latency_ms"`
	CreatedAt    time.Time `json:"created_at"`
}
