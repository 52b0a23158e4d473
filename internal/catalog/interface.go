package catalog

import "jewelbot-srv/internal/model"

// UseCase exposes read-only operations over the in-memory catalog.
// The catalog is loaded once at startup and never mutated, so all
// operations are safe for concurrent use.
type UseCase interface {
	// Filter returns the order-preserving subsequence of products matching
	// the free-text query. See usecase.Filter for the matching semantics.
	Filter(query string) []model.Product
	// Project trims products to the attribute set the model may see.
	Project(products []model.Product) []ProjectedProduct
	// TopN returns the first n products in load order (fallback suggestions).
	TopN(n int) []model.Product
	// Size returns the number of loaded products.
	Size() int
}
