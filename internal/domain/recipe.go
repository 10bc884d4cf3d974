// Package domain defines the core types and interfaces for the recipe catalog.
// All other packages depend on domain; domain depends on nothing.
package domain

import "fmt"

// Recipe is a dish in the catalog. Recipes are built once when the catalog
// loads and are never mutated afterwards.
type Recipe struct {
	ID             string
	Title          string
	Description    string
	Image          string
	CookTime       int     // minutes
	Servings       int
	CostPerServing float64 // rupees
	Difficulty     Difficulty
	Tags           []string // display order matters: the first three are shown on cards
	Ingredients    []string
	Instructions   []string // execution order
	Nutrition      Nutrition
}

// Nutrition holds per-serving nutrition facts. Protein, carbs and fat are grams.
type Nutrition struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// Validate checks the invariants a catalog entry must satisfy.
func (r *Recipe) Validate() error {
	switch {
	case r.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidRecipe)
	case r.Title == "":
		return fmt.Errorf("%w: %s: missing title", ErrInvalidRecipe, r.ID)
	case r.CookTime <= 0:
		return fmt.Errorf("%w: %s: cook time must be positive", ErrInvalidRecipe, r.ID)
	case r.Servings <= 0:
		return fmt.Errorf("%w: %s: servings must be positive", ErrInvalidRecipe, r.ID)
	case r.CostPerServing < 0:
		return fmt.Errorf("%w: %s: negative cost per serving", ErrInvalidRecipe, r.ID)
	case r.Difficulty == DifficultyAny:
		return fmt.Errorf("%w: %s: difficulty is required", ErrInvalidRecipe, r.ID)
	}
	n := r.Nutrition
	if n.Calories < 0 || n.Protein < 0 || n.Carbs < 0 || n.Fat < 0 {
		return fmt.Errorf("%w: %s: negative nutrition value", ErrInvalidRecipe, r.ID)
	}
	return nil
}

// Difficulty is the three-level effort rating of a recipe. The zero value
// means "any" and only appears in filter options, never on a recipe.
type Difficulty int

const (
	DifficultyAny Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
)

// String returns the display name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return ""
	}
}

// ParseDifficulty converts a display name back to a Difficulty. Matching is
// case-sensitive: "easy" is rejected.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "Easy":
		return DifficultyEasy, nil
	case "Medium":
		return DifficultyMedium, nil
	case "Hard":
		return DifficultyHard, nil
	}
	return DifficultyAny, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidFilter, s)
}
