// Package filter implements search and filtering over a recipe catalog.
//
// Every function here is pure: the input slice is never modified and the
// result keeps the input order. An empty match is an empty, non-nil slice.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/pocketchef/internal/domain"
)

// Search keeps the recipes whose title, description or any tag contains
// query, ignoring case. A blank query returns the catalog unchanged.
func Search(query string, catalog []*domain.Recipe) []*domain.Recipe {
	if strings.TrimSpace(query) == "" {
		return catalog
	}
	q := strings.ToLower(query)
	out := make([]*domain.Recipe, 0, len(catalog))
	for _, r := range catalog {
		if matches(r, q) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether the recipe would be kept by Search(query, ...).
func Matches(r *domain.Recipe, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	return matches(r, strings.ToLower(query))
}

func matches(r *domain.Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	return anyTagContains(r.Tags, q)
}

// Apply keeps the recipes that satisfy every active axis of opts.
func Apply(opts domain.FilterOptions, catalog []*domain.Recipe) []*domain.Recipe {
	if opts.IsZero() {
		return catalog
	}
	diet := strings.ToLower(opts.DietType)
	out := make([]*domain.Recipe, 0, len(catalog))
	for _, r := range catalog {
		if opts.MaxTime != 0 && r.CookTime > opts.MaxTime {
			continue
		}
		if opts.MaxCost != 0 && r.CostPerServing > opts.MaxCost {
			continue
		}
		if opts.Difficulty != domain.DifficultyAny && r.Difficulty != opts.Difficulty {
			continue
		}
		// Substring, so "Vegetarian" also keeps "Non-Vegetarian" tags.
		if diet != "" && !anyTagContains(r.Tags, diet) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func anyTagContains(tags []string, lowered string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), lowered) {
			return true
		}
	}
	return false
}

// Label renders the chip text for one axis of opts.
func Label(axis domain.FilterAxis, opts domain.FilterOptions) string {
	switch axis {
	case domain.AxisMaxTime:
		return fmt.Sprintf("Under %d min", opts.MaxTime)
	case domain.AxisMaxCost:
		return "Under " + Rupees(opts.MaxCost)
	case domain.AxisDifficulty:
		return opts.Difficulty.String()
	case domain.AxisDietType:
		return opts.DietType
	}
	return ""
}

// Chips derives the chip list for opts, one chip per active axis.
func Chips(opts domain.FilterOptions) []domain.Chip {
	active := opts.Active()
	out := make([]domain.Chip, 0, len(active))
	for _, a := range active {
		out = append(out, domain.Chip{Axis: a, Label: Label(a, opts)})
	}
	return out
}

// VisibleTags splits tags into the first limit entries and the number of
// tags left over.
func VisibleTags(tags []string, limit int) ([]string, int) {
	if limit < 0 {
		limit = 0
	}
	if len(tags) <= limit {
		return tags, 0
	}
	return tags[:limit], len(tags) - limit
}

// Rupees formats an amount as "₹35" or "₹12.5".
func Rupees(v float64) string {
	return "₹" + strconv.FormatFloat(v, 'f', -1, 64)
}
