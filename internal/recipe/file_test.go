package recipe

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/pocketchef/internal/domain"
	"github.com/hammamikhairi/pocketchef/internal/logger"
)

const sampleCatalog = `
recipes:
  - id: poha
    title: Kanda Poha
    description: Flattened rice with onion and peanuts.
    cook_time: 15
    servings: 2
    cost_per_serving: 20
    difficulty: Easy
    tags: [Vegetarian, Breakfast]
    ingredients:
      - 2 cups poha
      - 1 onion
    instructions:
      - Rinse the poha.
      - Temper and toss.
    nutrition:
      calories: 250
      protein: 6
      carbs: 45
      fat: 7
  - id: biryani
    title: Veg Biryani
    description: Layered rice.
    cook_time: 60
    servings: 4
    cost_per_serving: 70
    difficulty: Hard
    tags: [Vegetarian]
    ingredients: [rice]
    instructions: [Layer and steam.]
`

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src, err := LoadFile(writeCatalog(t, sampleCatalog), log)
	require.NoError(t, err)

	all, err := src.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	poha := all[0]
	assert.Equal(t, "poha", poha.ID)
	assert.Equal(t, 15, poha.CookTime)
	assert.Equal(t, domain.DifficultyEasy, poha.Difficulty)
	assert.Equal(t, []string{"Vegetarian", "Breakfast"}, poha.Tags)
	assert.Equal(t, []string{"Rinse the poha.", "Temper and toss."}, poha.Instructions)
	assert.Equal(t, domain.Nutrition{Calories: 250, Protein: 6, Carbs: 45, Fat: 7}, poha.Nutrition)
	assert.Equal(t, domain.DifficultyHard, all[1].Difficulty)
}

func TestLoadFileErrors(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "lowercase difficulty",
			body:    "recipes:\n  - {id: x, title: X, cook_time: 5, servings: 1, difficulty: easy}\n",
			wantErr: domain.ErrInvalidRecipe,
		},
		{
			name:    "zero cook time",
			body:    "recipes:\n  - {id: x, title: X, cook_time: 0, servings: 1, difficulty: Easy}\n",
			wantErr: domain.ErrInvalidRecipe,
		},
		{
			name:    "negative cost",
			body:    "recipes:\n  - {id: x, title: X, cook_time: 5, servings: 1, cost_per_serving: -1, difficulty: Easy}\n",
			wantErr: domain.ErrInvalidRecipe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeCatalog(t, tt.body), log)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadFile(writeCatalog(t, "recipes: [\n"), log)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), log)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
