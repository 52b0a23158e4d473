package memory

import (
	"context"
	"time"

	"jewelbot-srv/internal/model"
)

// WithConversation serializes access per user: the entry mutex is held for
// the whole turn, so two near-simultaneous messages from one user cannot
// interleave history appends or cursor updates.
func (r *implRepository) WithConversation(ctx context.Context, userID string, fn func(c *model.Conversation) error) error {
	e := r.acquire(userID)
	defer e.mu.Unlock()

	err := fn(&e.conv)
	e.conv.LastActiveAt = time.Now()
	return err
}

// acquire returns the user's entry with its mutex held. The sweep can remove
// an entry between the map lookup and the lock, so an entry found evicted
// after locking is discarded and the lookup retried.
func (r *implRepository) acquire(userID string) *entry {
	for {
		r.mu.Lock()
		e, ok := r.entries[userID]
		if !ok {
			e = &entry{conv: model.Conversation{UserID: userID}}
			r.entries[userID] = e
		}
		r.mu.Unlock()

		e.mu.Lock()
		if !e.evicted {
			return e
		}
		e.mu.Unlock()
	}
}

// Evict removes conversations idle for longer than ttl. Entries in the
// middle of a turn are skipped and picked up on a later sweep.
func (r *implRepository) Evict(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for userID, e := range r.entries {
		if !e.mu.TryLock() {
			continue
		}
		if e.conv.LastActiveAt.Before(cutoff) {
			e.evicted = true
			delete(r.entries, userID)
			evicted++
		}
		e.mu.Unlock()
	}
	return evicted
}

// Len returns the number of tracked conversations.
func (r *implRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
