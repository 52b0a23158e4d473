package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"jewelbot-srv/internal/model"
	"jewelbot-srv/pkg/log"
)

func TestWithConversation(t *testing.T) {
	ctx := context.Background()

	t.Run("creates conversation on first use", func(t *testing.T) {
		repo := New(log.NewNop())

		err := repo.WithConversation(ctx, "user-1", func(c *model.Conversation) error {
			if c.UserID != "user-1" {
				t.Errorf("UserID: got %s, want user-1", c.UserID)
			}
			if len(c.Turns) != 0 || c.Cursor != nil {
				t.Errorf("new conversation not empty: %+v", c)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("WithConversation: %v", err)
		}
		if repo.Len() != 1 {
			t.Errorf("Len: got %d, want 1", repo.Len())
		}
	})

	t.Run("mutations persist across turns", func(t *testing.T) {
		repo := New(log.NewNop())

		_ = repo.WithConversation(ctx, "user-1", func(c *model.Conversation) error {
			c.Turns = append(c.Turns, model.Turn{Role: model.RoleUser, Content: "hello"})
			return nil
		})

		_ = repo.WithConversation(ctx, "user-1", func(c *model.Conversation) error {
			if len(c.Turns) != 1 || c.Turns[0].Content != "hello" {
				t.Errorf("history lost: %+v", c.Turns)
			}
			return nil
		})
	})

	t.Run("users are isolated", func(t *testing.T) {
		repo := New(log.NewNop())

		_ = repo.WithConversation(ctx, "user-1", func(c *model.Conversation) error {
			c.Turns = append(c.Turns, model.Turn{Role: model.RoleUser, Content: "hello"})
			return nil
		})

		_ = repo.WithConversation(ctx, "user-2", func(c *model.Conversation) error {
			if len(c.Turns) != 0 {
				t.Errorf("user-2 sees user-1 history: %+v", c.Turns)
			}
			return nil
		})

		if repo.Len() != 2 {
			t.Errorf("Len: got %d, want 2", repo.Len())
		}
	})

	t.Run("turns for one user are serialized", func(t *testing.T) {
		repo := New(log.NewNop())

		var wg sync.WaitGroup
		for n := 0; n < 50; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = repo.WithConversation(ctx, "user-1", func(c *model.Conversation) error {
					c.Turns = append(c.Turns, model.Turn{Role: model.RoleUser, Content: "x"})
					return nil
				})
			}()
		}
		wg.Wait()

		_ = repo.WithConversation(ctx, "user-1", func(c *model.Conversation) error {
			if len(c.Turns) != 50 {
				t.Errorf("turn count: got %d, want 50", len(c.Turns))
			}
			return nil
		})
	})
}

func TestEvict(t *testing.T) {
	ctx := context.Background()
	repo := New(log.NewNop())

	_ = repo.WithConversation(ctx, "idle-user", func(c *model.Conversation) error { return nil })
	_ = repo.WithConversation(ctx, "active-user", func(c *model.Conversation) error { return nil })

	// Nothing is older than a generous TTL.
	if n := repo.Evict(time.Hour); n != 0 {
		t.Errorf("Evict(1h): got %d, want 0", n)
	}

	time.Sleep(20 * time.Millisecond)
	_ = repo.WithConversation(ctx, "active-user", func(c *model.Conversation) error { return nil })

	// Only the idle entry is past a 10ms TTL.
	if n := repo.Evict(10 * time.Millisecond); n != 1 {
		t.Errorf("Evict(10ms): got %d, want 1", n)
	}
	if repo.Len() != 1 {
		t.Errorf("Len after eviction: got %d, want 1", repo.Len())
	}

	// The surviving conversation is the active one.
	_ = repo.WithConversation(ctx, "active-user", func(c *model.Conversation) error { return nil })
	if repo.Len() != 1 {
		t.Errorf("Len: got %d, want 1", repo.Len())
	}
}

func TestEvictRacingTurnIsNotLost(t *testing.T) {
	ctx := context.Background()
	repo := New(log.NewNop()).(*implRepository)

	_ = repo.WithConversation(ctx, "user-1", func(c *model.Conversation) error { return nil })

	// Interleave a sweep into the window between the map lookup and the
	// entry lock: fetch the pointer the way WithConversation does, then
	// run the sweep before locking it.
	repo.mu.Lock()
	stale := repo.entries["user-1"]
	repo.mu.Unlock()

	if n := repo.Evict(0); n != 1 {
		t.Fatalf("Evict: got %d, want 1", n)
	}

	// The removed entry is marked, so a turn holding the stale pointer
	// retries instead of writing to an orphan.
	stale.mu.Lock()
	if !stale.evicted {
		t.Error("swept entry not marked evicted")
	}
	stale.mu.Unlock()

	e := repo.acquire("user-1")
	if e == stale {
		e.mu.Unlock()
		t.Fatal("acquire returned the evicted entry")
	}
	e.mu.Unlock()

	// State written after the sweep survives into later turns.
	_ = repo.WithConversation(ctx, "user-1", func(c *model.Conversation) error {
		c.Turns = append(c.Turns, model.Turn{Role: model.RoleUser, Content: "hello"})
		return nil
	})
	_ = repo.WithConversation(ctx, "user-1", func(c *model.Conversation) error {
		if len(c.Turns) != 1 || c.Turns[0].Content != "hello" {
			t.Errorf("turn lost after sweep: %+v", c.Turns)
		}
		return nil
	})
}

func TestEvictSkipsBusyEntries(t *testing.T) {
	ctx := context.Background()
	repo := New(log.NewNop())

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		_ = repo.WithConversation(ctx, "busy-user", func(c *model.Conversation) error {
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	// The entry is mid-turn: TryLock fails and the sweep must leave it alone.
	if n := repo.Evict(0); n != 0 {
		t.Errorf("Evict during turn: got %d, want 0", n)
	}
	close(release)
	<-done
}
