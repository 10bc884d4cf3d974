// Package recipe provides recipe source implementations.
package recipe

import (
	"context"
	"fmt"
	"sync"

	"github.com/hammamikhairi/pocketchef/internal/domain"
	"github.com/hammamikhairi/pocketchef/internal/filter"
	"github.com/hammamikhairi/pocketchef/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*MemorySource)(nil)

// MemorySource holds a fixed catalog in memory. Safe for concurrent reads.
type MemorySource struct {
	mu    sync.RWMutex
	order []*domain.Recipe
	byID  map[string]*domain.Recipe
	log   *logger.Logger
}

// NewMemorySource creates a recipe source preloaded with built-in recipes.
func NewMemorySource(log *logger.Logger) *MemorySource {
	src, err := NewMemorySourceFrom(log, builtin())
	if err != nil {
		// The built-in catalog is covered by tests.
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return src
}

// NewMemorySourceFrom creates a source over the given recipes, keeping their
// order. Every recipe is validated and IDs must be unique.
func NewMemorySourceFrom(log *logger.Logger, recipes []*domain.Recipe) (*MemorySource, error) {
	src := &MemorySource{
		order: make([]*domain.Recipe, 0, len(recipes)),
		byID:  make(map[string]*domain.Recipe, len(recipes)),
		log:   log,
	}
	for _, r := range recipes {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := src.byID[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", domain.ErrInvalidRecipe, r.ID)
		}
		src.order = append(src.order, r)
		src.byID[r.ID] = r
	}
	log.Debug("catalog holds %d recipes", len(src.order))
	return src, nil
}

// All returns every recipe in catalog order.
func (s *MemorySource) All(ctx context.Context) ([]*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.log.Debug("listing all recipes, count=%d", len(s.order))
	out := make([]*domain.Recipe, len(s.order))
	copy(out, s.order)
	return out, nil
}

// Get returns a recipe by ID.
func (s *MemorySource) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	if !ok {
		s.log.Debug("recipe not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// Search returns the recipes whose title, description or tags contain the
// query, in catalog order.
func (s *MemorySource) Search(ctx context.Context, query string) ([]*domain.Recipe, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Debug("searching recipes for: %q", query)
	return filter.Search(query, all), nil
}
