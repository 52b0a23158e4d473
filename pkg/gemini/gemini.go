package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Chat performs one generateContent round-trip. The result is either the
// generated text or the single function call the model requested.
func (g *geminiImpl) Chat(ctx context.Context, input ChatInput) (ChatResult, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", BaseURL, g.model, g.apiKey)

	req := request{
		Contents: newContents(input.Messages),
	}
	if input.System != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: input.System}}}
	}
	if len(input.Tools) > 0 {
		req.Tools = []tool{{FunctionDeclarations: input.Tools}}
	}

	body, statusCode, err := g.httpClient.Post(ctx, url, req, nil)
	if err != nil {
		return ChatResult{}, fmt.Errorf("failed to call Gemini API: %w", err)
	}
	if statusCode != http.StatusOK {
		return ChatResult{}, fmt.Errorf("Gemini API returned status: %d, body: %s", statusCode, string(body))
	}

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return ChatResult{}, fmt.Errorf("failed to unmarshal Gemini response: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return ChatResult{}, fmt.Errorf("no content generated")
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.FunctionCall != nil {
			return ChatResult{
				Kind:         ResultFunctionCall,
				FunctionCall: p.FunctionCall,
			}, nil
		}
		b.WriteString(p.Text)
	}
	return ChatResult{Kind: ResultText, Text: b.String()}, nil
}

func newContents(msgs []Message) []content {
	contents := make([]content, 0, len(msgs))
	for _, m := range msgs {
		var p part
		switch {
		case m.FunctionCall != nil:
			p.FunctionCall = m.FunctionCall
		case m.FunctionResponse != nil:
			p.FunctionResponse = m.FunctionResponse
		default:
			p.Text = m.Text
		}
		contents = append(contents, content{Role: m.Role, Parts: []part{p}})
	}
	return contents
}
