package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"jewelbot-srv/internal/dialogue"
	"jewelbot-srv/internal/model"
	"jewelbot-srv/pkg/gemini"
)

// HandleMessage - Main orchestration pipeline
// Flow: validate → lock user state → continuation check → model turn (with
// optional retrieval round-trip) → record history → publish event
func (uc *implUseCase) HandleMessage(ctx context.Context, input dialogue.MessageInput) (dialogue.TurnOutput, error) {
	if input.UserID == "" {
		return dialogue.TurnOutput{}, dialogue.ErrUserRequired
	}
	if strings.TrimSpace(input.Message) == "" {
		return dialogue.TurnOutput{}, dialogue.ErrMessageRequired
	}

	var out dialogue.TurnOutput
	err := uc.repo.WithConversation(ctx, input.UserID, func(c *model.Conversation) error {
		out = uc.handleTurn(ctx, c, input)
		return nil
	})
	return out, err
}

func (uc *implUseCase) handleTurn(ctx context.Context, c *model.Conversation, input dialogue.MessageInput) dialogue.TurnOutput {
	startTime := time.Now()

	// Step 1: continuation paths bypass the model entirely.
	if isShowMoreIntent(input.Message) {
		if c.Cursor != nil {
			out := uc.serveNextBatch(c)
			uc.publishEvent(ctx, c.UserID, dialogue.PathContinuation, "", len(c.Cursor.Results), len(out.Products), startTime)
			return out
		}
		uc.publishEvent(ctx, c.UserID, dialogue.PathGuidance, "", 0, 0, startTime)
		return dialogue.TurnOutput{Reply: dialogue.SearchFirstReply}
	}

	// Step 2: model-driven turn.
	out, path, matchCount, query, err := uc.modelTurn(ctx, c, input.Message)
	if err != nil {
		// Degrade at the turn boundary: fixed apology, and the failed turn
		// is not recorded in history.
		uc.l.Errorf(ctx, "dialogue.usecase.HandleMessage: model turn failed for %s: %v", c.UserID, err)
		return dialogue.TurnOutput{Reply: dialogue.ApologyReply}
	}

	// Step 3: record the completed turn, bounded to MaxHistoryTurns.
	now := time.Now()
	c.Turns = append(c.Turns,
		model.Turn{Role: model.RoleUser, Content: input.Message, CreatedAt: now},
		model.Turn{Role: model.RoleAssistant, Content: out.Reply, CreatedAt: now},
	)
	if len(c.Turns) > dialogue.MaxHistoryTurns {
		c.Turns = c.Turns[len(c.Turns)-dialogue.MaxHistoryTurns:]
	}

	uc.publishEvent(ctx, c.UserID, path, query, matchCount, len(out.Products), startTime)
	return out
}

// modelTurn runs the Gemini round-trip(s) and returns the reply, the path
// taken, the true match count and the model-issued query (retrieval only).
func (uc *implUseCase) modelTurn(ctx context.Context, c *model.Conversation, message string) (dialogue.TurnOutput, string, int, string, error) {
	msgs := historyMessages(c.Turns, dialogue.HistoryWindow)
	msgs = append(msgs, gemini.Message{Role: gemini.RoleUser, Text: message})

	res, err := uc.gemini.Chat(ctx, gemini.ChatInput{
		System:   systemPrompt,
		Messages: msgs,
		Tools:    toolDeclarations(),
	})
	if err != nil {
		return dialogue.TurnOutput{}, "", 0, "", err
	}

	if res.Kind == gemini.ResultText {
		return dialogue.TurnOutput{Reply: res.Text}, dialogue.PathDirect, 0, "", nil
	}

	switch res.FunctionCall.Name {
	case fnGetProducts:
		var args getProductsArgs
		if err := json.Unmarshal(res.FunctionCall.Args, &args); err != nil {
			return dialogue.TurnOutput{}, "", 0, "", fmt.Errorf("decode getProducts args: %w", err)
		}
		out, matchCount, err := uc.retrieveProducts(ctx, c, msgs, res.FunctionCall, args.Query)
		return out, dialogue.PathRetrieval, matchCount, args.Query, err

	case fnSuggestFallback:
		out, err := uc.suggestFallback(ctx, c, msgs, res.FunctionCall)
		return out, dialogue.PathFallback, len(out.Products), "", err

	default:
		return dialogue.TurnOutput{}, "", 0, "", fmt.Errorf("model requested unknown function %q", res.FunctionCall.Name)
	}
}

// retrieveProducts runs the catalog filter for a model-issued query, stores
// the full match list for pagination, and obtains the reply text from the
// second model call.
func (uc *implUseCase) retrieveProducts(ctx context.Context, c *model.Conversation, msgs []gemini.Message, call *gemini.FunctionCall, query string) (dialogue.TurnOutput, int, error) {
	matches := uc.catalog.Filter(query)

	var payload toolPayload
	var render []model.Product
	var cursor *model.ResultCursor
	if len(matches) == 0 {
		payload = toolPayload{Found: false, Message: "no products found"}
	} else {
		capped := matches
		if len(capped) > dialogue.MaxModelResults {
			capped = capped[:dialogue.MaxModelResults]
		}
		render = matches
		if len(render) > dialogue.PageSize {
			render = render[:dialogue.PageSize]
		}
		cursor = &model.ResultCursor{
			Results:    matches,
			NextOffset: len(render),
		}
		payload = toolPayload{
			Found:     true,
			Total:     len(matches),
			Remaining: len(matches) - len(render),
			Products:  uc.catalog.Project(capped),
		}
	}

	reply, err := uc.finishToolTurn(ctx, msgs, call, payload)
	if err != nil {
		// The failed turn must not touch the conversation, so the cursor is
		// only replaced once the reply round-trip succeeds.
		return dialogue.TurnOutput{}, 0, err
	}
	c.Cursor = cursor
	return dialogue.TurnOutput{Reply: reply, Products: render}, len(matches), nil
}

// suggestFallback serves the fixed top-of-catalog suggestions.
func (uc *implUseCase) suggestFallback(ctx context.Context, c *model.Conversation, msgs []gemini.Message, call *gemini.FunctionCall) (dialogue.TurnOutput, error) {
	products := uc.catalog.TopN(dialogue.PageSize)

	payload := toolPayload{
		Found:    len(products) > 0,
		Total:    len(products),
		Products: uc.catalog.Project(products),
	}
	if len(products) == 0 {
		payload.Message = "catalog is empty"
	}

	reply, err := uc.finishToolTurn(ctx, msgs, call, payload)
	if err != nil {
		return dialogue.TurnOutput{}, err
	}
	c.Cursor = nil
	return dialogue.TurnOutput{Reply: reply, Products: products}, nil
}

// finishToolTurn appends the function call and its result to the context and
// asks the model for the natural-language reply. No tools are offered, so
// the second round-trip cannot request further functions.
func (uc *implUseCase) finishToolTurn(ctx context.Context, msgs []gemini.Message, call *gemini.FunctionCall, payload toolPayload) (string, error) {
	response, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal tool payload: %w", err)
	}

	msgs = append(msgs,
		gemini.Message{Role: gemini.RoleModel, FunctionCall: call},
		gemini.Message{Role: gemini.RoleUser, FunctionResponse: &gemini.FunctionResponse{
			Name:     call.Name,
			Response: response,
		}},
	)

	res, err := uc.gemini.Chat(ctx, gemini.ChatInput{
		System:   systemPrompt,
		Messages: msgs,
	})
	if err != nil {
		return "", err
	}
	if res.Kind != gemini.ResultText {
		return "", fmt.Errorf("model requested a function on the reply round-trip")
	}
	return res.Text, nil
}
