package gemini

import (
	"encoding/json"

	pkghttp "jewelbot-srv/pkg/http"
)

// GeminiConfig holds the configuration for the Gemini client.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// geminiImpl implements IGemini using the Gemini REST API.
type geminiImpl struct {
	apiKey     string
	model      string
	httpClient pkghttp.IClient
}

// ChatInput is one chat-completion call: optional system instructions,
// the conversation so far, and the functions the model may request.
type ChatInput struct {
	System   string
	Messages []Message
	Tools    []FunctionDeclaration
}

// Message is a single conversation entry. Exactly one of Text, FunctionCall
// (echoing a prior model request) or FunctionResponse is set.
type Message struct {
	Role             string
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// FunctionDeclaration describes a callable function exposed to the model.
type FunctionDeclaration struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Parameters  *Schema `json:"parameters,omitempty"`
}

// Schema is a minimal JSON-schema subset for function parameters.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// FunctionCall is a model request to invoke a declared function.
type FunctionCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args,omitempty"`
}

// FunctionResponse carries a function result back to the model.
type FunctionResponse struct {
	Name     string          `json:"name"`
	Response json.RawMessage `json:"response"`
}

// ResultKind discriminates the two possible chat outcomes.
type ResultKind string

const (
	// ResultText means the model answered directly.
	ResultText ResultKind = "text"
	// ResultFunctionCall means the model requested exactly one function invocation.
	ResultFunctionCall ResultKind = "function_call"
)

// ChatResult is the tagged union returned by Chat.
// Kind selects which of Text / FunctionCall is populated.
type ChatResult struct {
	Kind         ResultKind
	Text         string
	FunctionCall *FunctionCall
}

// Wire types for the generateContent endpoint.

type request struct {
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Contents          []content `json:"contents"`
	Tools             []tool    `json:"tools,omitempty"`
}

type tool struct {
	FunctionDeclarations []FunctionDeclaration `json:"functionDeclarations"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text             string            `json:"text,omitempty"`
	FunctionCall     *FunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *FunctionResponse `json:"functionResponse,omitempty"`
}

type response struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}
