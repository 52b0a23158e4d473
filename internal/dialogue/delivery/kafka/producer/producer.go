package producer

import (
	"context"
	"encoding/json"

	"jewelbot-srv/internal/dialogue"
)

// PublishTurnEvent publishes a turn analytics event. Broker failures are
// logged and swallowed so a slow or down broker never fails a turn.
func (p *implProducer) PublishTurnEvent(ctx context.Context, event dialogue.TurnEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		p.l.Warnf(ctx, "dialogue.delivery.kafka.PublishTurnEvent: marshal failed: %v", err)
		return
	}

	if err := p.producer.Publish([]byte(event.UserID), body); err != nil {
		p.l.Warnf(ctx, "dialogue.delivery.kafka.PublishTurnEvent: publish failed: %v", err)
		return
	}

	p.l.Debugf(ctx, "Published turn event %s (path=%s) for user %s", event.ID, event.Path, event.UserID)
}
