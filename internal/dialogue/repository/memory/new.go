package memory

import (
	"sync"

	"jewelbot-srv/internal/dialogue/repository"
	"jewelbot-srv/internal/model"
	"jewelbot-srv/pkg/log"
)

type entry struct {
	mu      sync.Mutex
	evicted bool // set under mu when the sweep removes the entry from the map
	conv    model.Conversation
}

type implRepository struct {
	l       log.Logger
	mu      sync.Mutex // guards the map, not the conversations
	entries map[string]*entry
}

// New - Factory function
func New(l log.Logger) repository.Repository {
	return &implRepository{
		l:       l,
		entries: make(map[string]*entry),
	}
}
