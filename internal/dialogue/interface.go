package dialogue

import "context"

// UseCase is the dialogue orchestrator: it turns one inbound user message
// into an assistant reply plus the products to render.
type UseCase interface {
	HandleMessage(ctx context.Context, input MessageInput) (TurnOutput, error)
}

// Producer publishes turn analytics events. Implementations must not block
// the turn on broker failures.
type Producer interface {
	PublishTurnEvent(ctx context.Context, event TurnEvent)
}
