package repository

import (
	"context"
	"time"

	"jewelbot-srv/internal/model"
)

// Repository is the keyed conversation state store. State lives in memory
// for the process lifetime; Evict bounds its growth.
type Repository interface {
	// WithConversation runs fn with exclusive access to the user's
	// conversation, creating it on first use. Concurrent turns for the same
	// user are serialized; different users proceed independently.
	WithConversation(ctx context.Context, userID string, fn func(c *model.Conversation) error) error

	// Evict removes conversations idle for longer than ttl and returns how
	// many were removed.
	Evict(ttl time.Duration) int

	// Len returns the number of tracked conversations.
	Len() int
}
