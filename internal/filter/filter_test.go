package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/pocketchef/internal/domain"
)

func scenarioCatalog() []*domain.Recipe {
	return []*domain.Recipe{
		{ID: "a", Title: "Recipe A", Description: "Simple pasta", CookTime: 15, Servings: 2, CostPerServing: 35, Difficulty: domain.DifficultyEasy, Tags: []string{"Vegetarian"}},
		{ID: "b", Title: "Recipe B", Description: "Rice and lentils", CookTime: 25, Servings: 3, CostPerServing: 28, Difficulty: domain.DifficultyEasy, Tags: []string{"High-Protein", "Vegetarian"}},
	}
}

func wideCatalog() []*domain.Recipe {
	return append(scenarioCatalog(),
		&domain.Recipe{ID: "c", Title: "Butter Chicken", Description: "Rich tomato gravy", CookTime: 45, Servings: 4, CostPerServing: 120, Difficulty: domain.DifficultyMedium, Tags: []string{"Non-Vegetarian", "High-Protein"}},
		&domain.Recipe{ID: "d", Title: "Masala Dosa", Description: "Crisp crepe with potato", CookTime: 40, Servings: 2, CostPerServing: 60, Difficulty: domain.DifficultyHard, Tags: []string{"Vegan", "South-Indian"}},
		&domain.Recipe{ID: "e", Title: "Egg Bhurji", Description: "Spiced scrambled eggs", CookTime: 10, Servings: 1, CostPerServing: 25, Difficulty: domain.DifficultyEasy, Tags: []string{"Non-Vegetarian", "Quick"}},
	)
}

func ids(rs []*domain.Recipe) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

// isSubsequence reports whether sub appears in full in the same relative order.
func isSubsequence(sub, full []*domain.Recipe) bool {
	i := 0
	for _, r := range full {
		if i < len(sub) && sub[i] == r {
			i++
		}
	}
	return i == len(sub)
}

func TestSearch(t *testing.T) {
	catalog := wideCatalog()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query is identity", "", []string{"a", "b", "c", "d", "e"}},
		{"whitespace query is identity", "   ", []string{"a", "b", "c", "d", "e"}},
		{"title match ignores case", "recipe a", []string{"a"}},
		{"description match", "LENTILS", []string{"b"}},
		{"tag match", "protein", []string{"b", "c"}},
		{"tag substring", "vegetarian", []string{"a", "b", "c", "e"}},
		{"no match", "sushi", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tt.query, catalog)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
			assert.True(t, isSubsequence(got, catalog), "result must keep catalog order")
		})
	}
}

func TestSearchMatchesIffSubstring(t *testing.T) {
	catalog := wideCatalog()
	for _, q := range []string{"a", "egg", "gravy", "quick", "south", "x"} {
		got := Search(q, catalog)
		kept := make(map[string]bool, len(got))
		for _, r := range got {
			kept[r.ID] = true
		}
		for _, r := range catalog {
			assert.Equal(t, Matches(r, q), kept[r.ID], "query=%q recipe=%s", q, r.ID)
		}
	}
}

func TestApply(t *testing.T) {
	catalog := wideCatalog()

	tests := []struct {
		name string
		opts domain.FilterOptions
		want []string
	}{
		{"no constraints", domain.FilterOptions{}, []string{"a", "b", "c", "d", "e"}},
		{"max time", domain.FilterOptions{MaxTime: 15}, []string{"a", "e"}},
		{"max time inclusive", domain.FilterOptions{MaxTime: 25}, []string{"a", "b", "e"}},
		{"max cost", domain.FilterOptions{MaxCost: 50}, []string{"a", "b", "e"}},
		{"max cost none", domain.FilterOptions{MaxCost: 10}, []string{}},
		{"difficulty", domain.FilterOptions{Difficulty: domain.DifficultyHard}, []string{"d"}},
		{"diet substring", domain.FilterOptions{DietType: "Vegetarian"}, []string{"a", "b", "c", "e"}},
		{"diet ignores case", domain.FilterOptions{DietType: "vegan"}, []string{"d"}},
		{"combined", domain.FilterOptions{MaxTime: 30, Difficulty: domain.DifficultyEasy, DietType: "Non-Vegetarian"}, []string{"e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.opts, catalog)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
			assert.True(t, isSubsequence(got, catalog))
		})
	}
}

func TestApplyMaxTimeBound(t *testing.T) {
	catalog := wideCatalog()
	for _, limit := range []int{5, 10, 15, 30, 45} {
		got := Apply(domain.FilterOptions{MaxTime: limit}, catalog)
		kept := map[string]bool{}
		for _, r := range got {
			assert.LessOrEqual(t, r.CookTime, limit)
			kept[r.ID] = true
		}
		for _, r := range catalog {
			if r.CookTime > limit {
				assert.False(t, kept[r.ID], "recipe %s exceeds %d min", r.ID, limit)
			}
		}
	}
}

func TestApplyIsIntersectionOfAxes(t *testing.T) {
	catalog := wideCatalog()
	combined := domain.FilterOptions{MaxTime: 45, MaxCost: 100, Difficulty: domain.DifficultyEasy, DietType: "Vegetarian"}

	want := map[string]int{}
	for _, axis := range combined.Active() {
		for _, r := range Apply(onlyAxis(combined, axis), catalog) {
			want[r.ID]++
		}
	}

	var expected []string
	for _, r := range catalog {
		if want[r.ID] == len(combined.Active()) {
			expected = append(expected, r.ID)
		}
	}
	assert.Equal(t, expected, ids(Apply(combined, catalog)))
}

func onlyAxis(opts domain.FilterOptions, keep domain.FilterAxis) domain.FilterOptions {
	for _, a := range domain.Axes {
		if a != keep {
			opts = opts.Without(a)
		}
	}
	return opts
}

func TestApplyRemovingAxisRestoresResult(t *testing.T) {
	catalog := wideCatalog()
	base := domain.FilterOptions{MaxCost: 100}
	withDiet := base
	withDiet.DietType = "Vegan"

	require.NotEqual(t, ids(Apply(base, catalog)), ids(Apply(withDiet, catalog)))
	assert.Equal(t, ids(Apply(base, catalog)), ids(Apply(withDiet.Without(domain.AxisDietType), catalog)))
}

func TestScenario(t *testing.T) {
	catalog := scenarioCatalog()

	assert.Equal(t, []string{"a"}, ids(Apply(domain.FilterOptions{MaxTime: 20}, catalog)))
	assert.Equal(t, []string{"b"}, ids(Search("protein", catalog)))
	assert.Equal(t, []string{"a", "b"}, ids(Apply(domain.FilterOptions{DietType: "Vegetarian"}, catalog)))
	assert.Empty(t, Apply(domain.FilterOptions{MaxCost: 10}, catalog))
}

func TestChips(t *testing.T) {
	opts := domain.FilterOptions{DietType: "Vegan", MaxTime: 30, MaxCost: 100, Difficulty: domain.DifficultyMedium}
	assert.Equal(t, []domain.Chip{
		{Axis: domain.AxisMaxTime, Label: "Under 30 min"},
		{Axis: domain.AxisMaxCost, Label: "Under ₹100"},
		{Axis: domain.AxisDifficulty, Label: "Medium"},
		{Axis: domain.AxisDietType, Label: "Vegan"},
	}, Chips(opts))

	assert.Empty(t, Chips(domain.FilterOptions{}))
}

func TestVisibleTags(t *testing.T) {
	tests := []struct {
		name      string
		tags      []string
		wantShown []string
		wantMore  int
	}{
		{"none", nil, nil, 0},
		{"exactly three", []string{"a", "b", "c"}, []string{"a", "b", "c"}, 0},
		{"five", []string{"a", "b", "c", "d", "e"}, []string{"a", "b", "c"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shown, more := VisibleTags(tt.tags, 3)
			assert.Equal(t, tt.wantShown, shown)
			assert.Equal(t, tt.wantMore, more)
		})
	}
}

func TestRupees(t *testing.T) {
	assert.Equal(t, "₹35", Rupees(35))
	assert.Equal(t, "₹12.5", Rupees(12.5))
}
