package usecase

import (
	"jewelbot-srv/internal/catalog"
	"jewelbot-srv/pkg/gemini"
)

// Function names exposed to the model.
const (
	fnGetProducts     = "getProducts"
	fnSuggestFallback = "suggestFallback"
)

// getProductsArgs are the model-supplied arguments for getProducts.
type getProductsArgs struct {
	Query string `json:"query"`
}

// toolPayload is the function result sent back to the model. Products is
// capped at MaxModelResults; Total carries the true match count.
type toolPayload struct {
	Found     bool                       `json:"found"`
	Total     int                        `json:"total"`
	Remaining int                        `json:"remaining"`
	Products  []catalog.ProjectedProduct `json:"products,omitempty"`
	Message   string                     `json:"message,omitempty"`
}

func toolDeclarations() []gemini.FunctionDeclaration {
	return []gemini.FunctionDeclaration{
		{
			Name:        fnGetProducts,
			Description: "Search the jewellery catalog with a free-text query. Supports price limits like 'under 50000' or 'over 20000'.",
			Parameters: &gemini.Schema{
				Type: "object",
				Properties: map[string]*gemini.Schema{
					"query": {
						Type:        "string",
						Description: "Search text built from the customer's request",
					},
				},
				Required: []string{"query"},
			},
		},
		{
			Name:        fnSuggestFallback,
			Description: "Suggest popular catalog pieces when no good match exists for the customer's request.",
		},
	}
}
