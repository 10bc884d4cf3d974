// Package engine holds the catalog page state: the filtered view, the
// search/filter bar and the detail view's tab state machine.
//
// None of the types here are safe for concurrent mutation. They are driven
// from a single event loop, one user interaction at a time.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/hammamikhairi/pocketchef/internal/domain"
	"github.com/hammamikhairi/pocketchef/internal/filter"
	"github.com/hammamikhairi/pocketchef/internal/logger"
)

// Option configures the page.
type Option func(*Page)

// WithIndependentEntryPoints makes every search or filter event recompute
// the view from the full catalog using only that event's input, so a filter
// change drops the live query and vice versa.
func WithIndependentEntryPoints() Option {
	return func(p *Page) {
		p.compose = false
	}
}

// Page is the state container owned by the composition root. It holds the
// catalog, the current filtered view and the detail view.
type Page struct {
	catalog []*domain.Recipe
	query   string
	filters domain.FilterOptions
	results []*domain.Recipe
	detail  DetailView
	compose bool
	log     *logger.Logger
}

// New loads the catalog from src once and shows all of it.
func New(ctx context.Context, src domain.RecipeSource, log *logger.Logger, opts ...Option) (*Page, error) {
	all, err := src.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	p := &Page{
		catalog: all,
		results: all,
		compose: true,
		log:     log,
	}
	for _, opt := range opts {
		opt(p)
	}
	log.Info("page ready with %d recipes (compose=%t)", len(all), p.compose)
	return p, nil
}

// HandleSearch is the bar's search callback.
func (p *Page) HandleSearch(query string) {
	p.query = query
	if p.compose {
		p.results = filter.Apply(p.filters, filter.Search(query, p.catalog))
	} else {
		p.results = filter.Search(query, p.catalog)
	}
	p.log.Debug("search %q -> %d results", query, len(p.results))
}

// HandleFilterChange is the bar's filter callback.
func (p *Page) HandleFilterChange(opts domain.FilterOptions) {
	p.filters = opts
	if p.compose {
		p.results = filter.Apply(opts, filter.Search(p.query, p.catalog))
	} else {
		p.results = filter.Apply(opts, p.catalog)
	}
	p.log.Debug("filters %+v -> %d results", opts, len(p.results))
}

// Catalog returns the full catalog.
func (p *Page) Catalog() []*domain.Recipe { return p.catalog }

// Results returns the current filtered view in catalog order.
func (p *Page) Results() []*domain.Recipe { return p.results }

// NoResults reports whether the filtered view is empty.
func (p *Page) NoResults() bool { return len(p.results) == 0 }

// Constrained reports whether a query or any filter is active. It tells an
// empty view caused by constraints apart from an empty catalog.
func (p *Page) Constrained() bool {
	return strings.TrimSpace(p.query) != "" || !p.filters.IsZero()
}

// Query returns the last search query received.
func (p *Page) Query() string { return p.query }

// Filters returns the last filter options received.
func (p *Page) Filters() domain.FilterOptions { return p.filters }

// Select opens the detail view on the i-th recipe of the filtered view.
func (p *Page) Select(i int) error {
	if i < 0 || i >= len(p.results) {
		return fmt.Errorf("result %d of %d: %w", i, len(p.results), domain.ErrNotFound)
	}
	r := p.results[i]
	p.detail.Open(r)
	p.log.Debug("selected %s", r.ID)
	return nil
}

// SelectID opens the detail view on the catalog recipe with the given ID.
func (p *Page) SelectID(id string) error {
	for _, r := range p.catalog {
		if r.ID == id {
			p.detail.Open(r)
			p.log.Debug("selected %s", r.ID)
			return nil
		}
	}
	return fmt.Errorf("recipe %q: %w", id, domain.ErrNotFound)
}

// Selected returns the recipe shown in the detail view, or nil.
func (p *Page) Selected() *domain.Recipe { return p.detail.Recipe() }

// IsOpen reports whether the detail view is showing a recipe.
func (p *Page) IsOpen() bool { return p.detail.IsOpen() }

// Close dismisses the detail view.
func (p *Page) Close() { p.detail.Close() }

// Detail exposes the detail view for tab changes.
func (p *Page) Detail() *DetailView { return &p.detail }
