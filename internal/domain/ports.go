package domain

import "context"

// RecipeSource provides the catalog. Implementations can be in-memory
// (hardcoded) or file-based. The catalog is read once at startup.
type RecipeSource interface {
	// All returns every recipe in catalog order.
	All(ctx context.Context) ([]*Recipe, error)
	Get(ctx context.Context, id string) (*Recipe, error)
	Search(ctx context.Context, query string) ([]*Recipe, error)
}
