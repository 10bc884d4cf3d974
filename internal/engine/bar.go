package engine

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/hammamikhairi/pocketchef/internal/domain"
	"github.com/hammamikhairi/pocketchef/internal/filter"
)

// FilterBar is the local state of the search/filter bar: the query text,
// the filter options and the derived chips. Every change is reported
// through the callbacks immediately.
type FilterBar struct {
	query          string
	options        domain.FilterOptions
	chips          []domain.Chip
	onSearch       func(string)
	onFilterChange func(domain.FilterOptions)
}

// NewFilterBar creates an empty bar. Nil callbacks are treated as no-ops.
func NewFilterBar(onSearch func(string), onFilterChange func(domain.FilterOptions)) *FilterBar {
	if onSearch == nil {
		onSearch = func(string) {}
	}
	if onFilterChange == nil {
		onFilterChange = func(domain.FilterOptions) {}
	}
	return &FilterBar{onSearch: onSearch, onFilterChange: onFilterChange}
}

// Query returns the current query text.
func (b *FilterBar) Query() string { return b.query }

// Options returns the current filter options.
func (b *FilterBar) Options() domain.FilterOptions { return b.options }

// Chips returns a copy of the active filter chips.
func (b *FilterBar) Chips() []domain.Chip {
	return slices.Clone(b.chips)
}

// SetQuery updates the query and reports it.
func (b *FilterBar) SetQuery(q string) {
	b.query = q
	b.onSearch(q)
}

// SetMaxTime selects one of domain.TimeOptions.
func (b *FilterBar) SetMaxTime(minutes int) error {
	if !slices.Contains(domain.TimeOptions, minutes) {
		return fmt.Errorf("%w: time %d", domain.ErrInvalidFilter, minutes)
	}
	next := b.options
	next.MaxTime = minutes
	b.apply(next)
	return nil
}

// SetMaxCost selects one of domain.CostOptions.
func (b *FilterBar) SetMaxCost(rupees float64) error {
	if !slices.Contains(domain.CostOptions, rupees) {
		return fmt.Errorf("%w: budget %v", domain.ErrInvalidFilter, rupees)
	}
	next := b.options
	next.MaxCost = rupees
	b.apply(next)
	return nil
}

// SetDifficulty selects one of domain.DifficultyOptions.
func (b *FilterBar) SetDifficulty(d domain.Difficulty) error {
	if !slices.Contains(domain.DifficultyOptions, d) {
		return fmt.Errorf("%w: level %d", domain.ErrInvalidFilter, d)
	}
	next := b.options
	next.Difficulty = d
	b.apply(next)
	return nil
}

// SetDietType selects one of domain.DietOptions.
func (b *FilterBar) SetDietType(diet string) error {
	if !slices.Contains(domain.DietOptions, diet) {
		return fmt.Errorf("%w: diet %q", domain.ErrInvalidFilter, diet)
	}
	next := b.options
	next.DietType = diet
	b.apply(next)
	return nil
}

// Set parses raw for the given axis and selects it. Values must come from
// the fixed option lists.
func (b *FilterBar) Set(axis domain.FilterAxis, raw string) error {
	raw = strings.TrimSpace(raw)
	switch axis {
	case domain.AxisMaxTime:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: time %q", domain.ErrInvalidFilter, raw)
		}
		return b.SetMaxTime(n)
	case domain.AxisMaxCost:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%w: budget %q", domain.ErrInvalidFilter, raw)
		}
		return b.SetMaxCost(v)
	case domain.AxisDifficulty:
		d, err := domain.ParseDifficulty(raw)
		if err != nil {
			return err
		}
		return b.SetDifficulty(d)
	case domain.AxisDietType:
		return b.SetDietType(raw)
	}
	return fmt.Errorf("%w: unknown axis %d", domain.ErrInvalidFilter, axis)
}

// Cycle advances the axis to its next fixed option. After the last option
// the axis is cleared, and a cleared axis starts again at the first option.
func (b *FilterBar) Cycle(axis domain.FilterAxis) {
	switch axis {
	case domain.AxisMaxTime:
		if v, ok := nextOption(domain.TimeOptions, b.options.MaxTime, b.options.Has(axis)); ok {
			_ = b.SetMaxTime(v)
			return
		}
	case domain.AxisMaxCost:
		if v, ok := nextOption(domain.CostOptions, b.options.MaxCost, b.options.Has(axis)); ok {
			_ = b.SetMaxCost(v)
			return
		}
	case domain.AxisDifficulty:
		if v, ok := nextOption(domain.DifficultyOptions, b.options.Difficulty, b.options.Has(axis)); ok {
			_ = b.SetDifficulty(v)
			return
		}
	case domain.AxisDietType:
		if v, ok := nextOption(domain.DietOptions, b.options.DietType, b.options.Has(axis)); ok {
			_ = b.SetDietType(v)
			return
		}
	default:
		return
	}
	b.Clear(axis)
}

// nextOption returns the option after cur, or false when cur is the last.
func nextOption[T comparable](opts []T, cur T, set bool) (T, bool) {
	if !set {
		return opts[0], true
	}
	i := slices.Index(opts, cur)
	if i+1 < len(opts) {
		return opts[i+1], true
	}
	var zero T
	return zero, false
}

// Clear removes the axis. Clearing an absent axis does nothing.
func (b *FilterBar) Clear(axis domain.FilterAxis) {
	if !b.options.Has(axis) {
		return
	}
	b.apply(b.options.Without(axis))
}

// Reset clears the query and every filter.
func (b *FilterBar) Reset() {
	b.SetQuery("")
	b.apply(domain.FilterOptions{})
}

func (b *FilterBar) apply(next domain.FilterOptions) {
	b.options = next
	b.chips = filter.Chips(next)
	b.onFilterChange(next)
}
