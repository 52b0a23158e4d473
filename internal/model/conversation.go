package model

import "time"

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single entry in a conversation history.
type Turn struct {
	Role      string
	Content   string
	CreatedAt time.Time
}

// ResultCursor is an offset into a previously computed full match list,
// enabling incremental "show more" delivery.
// Invariant: 0 <= NextOffset <= len(Results).
type ResultCursor struct {
	Results    []Product
	NextOffset int
}

// Remaining returns how many results have not been served yet.
func (c ResultCursor) Remaining() int {
	if c.NextOffset >= len(c.Results) {
		return 0
	}
	return len(c.Results) - c.NextOffset
}

// Conversation is the per-user mutable state: a bounded turn history and
// an optional pagination cursor over the last query's full result set.
type Conversation struct {
	UserID       string
	Turns        []Turn
	Cursor       *ResultCursor
	LastActiveAt time.Time
}
