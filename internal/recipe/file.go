package recipe

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/pocketchef/internal/domain"
	"github.com/hammamikhairi/pocketchef/internal/logger"
)

// catalogFile is the on-disk shape of a YAML catalog.
type catalogFile struct {
	Recipes []recipeFile `yaml:"recipes"`
}

type recipeFile struct {
	ID             string        `yaml:"id"`
	Title          string        `yaml:"title"`
	Description    string        `yaml:"description"`
	Image          string        `yaml:"image"`
	CookTime       int           `yaml:"cook_time"`
	Servings       int           `yaml:"servings"`
	CostPerServing float64       `yaml:"cost_per_serving"`
	Difficulty     string        `yaml:"difficulty"`
	Tags           []string      `yaml:"tags"`
	Ingredients    []string      `yaml:"ingredients"`
	Instructions   []string      `yaml:"instructions"`
	Nutrition      nutritionFile `yaml:"nutrition"`
}

type nutritionFile struct {
	Calories float64 `yaml:"calories"`
	Protein  float64 `yaml:"protein"`
	Carbs    float64 `yaml:"carbs"`
	Fat      float64 `yaml:"fat"`
}

// LoadFile reads a YAML catalog and returns a source over it. The file
// replaces the built-in catalog entirely.
func LoadFile(path string, log *logger.Logger) (*MemorySource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	recipes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	src, err := NewMemorySourceFrom(log, recipes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info("loaded %d recipes from %s", len(recipes), path)
	return src, nil
}

// Parse decodes a YAML catalog document. It checks field formats only;
// catalog invariants are enforced by NewMemorySourceFrom.
func Parse(data []byte) ([]*domain.Recipe, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	out := make([]*domain.Recipe, 0, len(doc.Recipes))
	for i, rf := range doc.Recipes {
		diff, err := domain.ParseDifficulty(rf.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("%w: recipe %d (%s): %v", domain.ErrInvalidRecipe, i+1, rf.ID, err)
		}
		out = append(out, &domain.Recipe{
			ID:             rf.ID,
			Title:          rf.Title,
			Description:    rf.Description,
			Image:          rf.Image,
			CookTime:       rf.CookTime,
			Servings:       rf.Servings,
			CostPerServing: rf.CostPerServing,
			Difficulty:     diff,
			Tags:           rf.Tags,
			Ingredients:    rf.Ingredients,
			Instructions:   rf.Instructions,
			Nutrition: domain.Nutrition{
				Calories: rf.Nutrition.Calories,
				Protein:  rf.Nutrition.Protein,
				Carbs:    rf.Nutrition.Carbs,
				Fat:      rf.Nutrition.Fat,
			},
		})
	}
	return out, nil
}
