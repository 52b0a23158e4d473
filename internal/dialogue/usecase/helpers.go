package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jewelbot-srv/internal/dialogue"
	"jewelbot-srv/internal/model"
	"jewelbot-srv/pkg/gemini"
)

// historyMessages converts the most recent stored turns into model messages.
func historyMessages(turns []model.Turn, limit int) []gemini.Message {
	if len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	msgs := make([]gemini.Message, 0, len(turns)+3)
	for _, t := range turns {
		role := gemini.RoleUser
		if t.Role == model.RoleAssistant {
			role = gemini.RoleModel
		}
		msgs = append(msgs, gemini.Message{Role: role, Text: t.Content})
	}
	return msgs
}

func (uc *implUseCase) publishEvent(ctx context.Context, userID, path, query string, matchCount, productsSent int, startTime time.Time) {
	if uc.producer == nil {
		return
	}
	uc.producer.PublishTurnEvent(ctx, dialogue.TurnEvent{
		ID:           uuid.NewString(),
		UserID:       userID,
		Path:         path,
		Query:        query,
		MatchCount:   matchCount,
		ProductsSent: productsSent,
		LatencyMs:    time.Since(startTime).Milliseconds(),
		CreatedAt:    time.Now(),
	})
}
