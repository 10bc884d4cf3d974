package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/pocketchef/internal/domain"
)

type barEvents struct {
	queries []string
	filters []domain.FilterOptions
}

func newRecordingBar() (*FilterBar, *barEvents) {
	ev := &barEvents{}
	bar := NewFilterBar(
		func(q string) { ev.queries = append(ev.queries, q) },
		func(o domain.FilterOptions) { ev.filters = append(ev.filters, o) },
	)
	return bar, ev
}

func TestFilterBarSetQuery(t *testing.T) {
	bar, ev := newRecordingBar()

	bar.SetQuery("p")
	bar.SetQuery("pa")
	assert.Equal(t, []string{"p", "pa"}, ev.queries)
	assert.Equal(t, "pa", bar.Query())
	assert.Empty(t, ev.filters)
}

func TestFilterBarSelectionReplaces(t *testing.T) {
	bar, ev := newRecordingBar()

	require.NoError(t, bar.SetMaxTime(15))
	require.NoError(t, bar.SetMaxTime(45))

	assert.Equal(t, 45, bar.Options().MaxTime)
	assert.Equal(t, []domain.Chip{{Axis: domain.AxisMaxTime, Label: "Under 45 min"}}, bar.Chips())
	require.Len(t, ev.filters, 2)
	assert.Equal(t, domain.FilterOptions{MaxTime: 45}, ev.filters[1])
}

func TestFilterBarChipsRecomputed(t *testing.T) {
	bar, _ := newRecordingBar()

	require.NoError(t, bar.SetDietType("Vegan"))
	require.NoError(t, bar.SetMaxCost(100))
	require.NoError(t, bar.SetDifficulty(domain.DifficultyHard))

	assert.Equal(t, []domain.Chip{
		{Axis: domain.AxisMaxCost, Label: "Under ₹100"},
		{Axis: domain.AxisDifficulty, Label: "Hard"},
		{Axis: domain.AxisDietType, Label: "Vegan"},
	}, bar.Chips())
}

func TestFilterBarRejectsUnknownValues(t *testing.T) {
	bar, ev := newRecordingBar()

	assert.ErrorIs(t, bar.SetMaxTime(20), domain.ErrInvalidFilter)
	assert.ErrorIs(t, bar.SetMaxCost(75), domain.ErrInvalidFilter)
	assert.ErrorIs(t, bar.SetDifficulty(domain.DifficultyAny), domain.ErrInvalidFilter)
	assert.ErrorIs(t, bar.SetDietType("Keto"), domain.ErrInvalidFilter)
	assert.ErrorIs(t, bar.Set(domain.AxisMaxTime, "soon"), domain.ErrInvalidFilter)
	assert.ErrorIs(t, bar.Set(domain.AxisDifficulty, "easy"), domain.ErrInvalidFilter)
	assert.ErrorIs(t, bar.Set(domain.FilterAxis(99), "x"), domain.ErrInvalidFilter)

	assert.Empty(t, ev.filters)
	assert.True(t, bar.Options().IsZero())
}

func TestFilterBarSetParses(t *testing.T) {
	bar, _ := newRecordingBar()

	require.NoError(t, bar.Set(domain.AxisMaxTime, "30"))
	require.NoError(t, bar.Set(domain.AxisMaxCost, " 150 "))
	require.NoError(t, bar.Set(domain.AxisDifficulty, "Medium"))
	require.NoError(t, bar.Set(domain.AxisDietType, "High-Protein"))

	assert.Equal(t, domain.FilterOptions{
		MaxTime:    30,
		MaxCost:    150,
		Difficulty: domain.DifficultyMedium,
		DietType:   "High-Protein",
	}, bar.Options())
}

func TestFilterBarClearByAxis(t *testing.T) {
	bar, ev := newRecordingBar()

	require.NoError(t, bar.SetDifficulty(domain.DifficultyEasy))
	require.NoError(t, bar.SetDietType("Vegetarian"))
	require.NoError(t, bar.SetMaxTime(15))

	bar.Clear(domain.AxisDietType)
	assert.Equal(t, domain.FilterOptions{MaxTime: 15, Difficulty: domain.DifficultyEasy}, bar.Options())
	assert.Equal(t, []domain.Chip{
		{Axis: domain.AxisMaxTime, Label: "Under 15 min"},
		{Axis: domain.AxisDifficulty, Label: "Easy"},
	}, bar.Chips())

	emitted := len(ev.filters)
	bar.Clear(domain.AxisDietType)
	assert.Len(t, ev.filters, emitted, "clearing an absent axis must not emit")
}

func TestFilterBarCycle(t *testing.T) {
	bar, _ := newRecordingBar()

	var seen []int
	for i := 0; i < len(domain.TimeOptions)+1; i++ {
		bar.Cycle(domain.AxisMaxTime)
		seen = append(seen, bar.Options().MaxTime)
	}
	assert.Equal(t, []int{15, 30, 45, 0}, seen)
	assert.Empty(t, bar.Chips())

	bar.Cycle(domain.AxisDifficulty)
	bar.Cycle(domain.AxisDifficulty)
	assert.Equal(t, domain.DifficultyMedium, bar.Options().Difficulty)

	bar.Cycle(domain.AxisDietType)
	assert.Equal(t, "Vegetarian", bar.Options().DietType)
}

func TestFilterBarReset(t *testing.T) {
	bar, ev := newRecordingBar()
	bar.SetQuery("rice")
	require.NoError(t, bar.SetMaxCost(50))

	bar.Reset()
	assert.Equal(t, "", bar.Query())
	assert.True(t, bar.Options().IsZero())
	assert.Empty(t, bar.Chips())
	assert.Equal(t, "", ev.queries[len(ev.queries)-1])
	assert.True(t, ev.filters[len(ev.filters)-1].IsZero())
}

func TestFilterBarNilCallbacks(t *testing.T) {
	bar := NewFilterBar(nil, nil)
	bar.SetQuery("x")
	require.NoError(t, bar.SetMaxTime(15))
	bar.Clear(domain.AxisMaxTime)
	assert.True(t, bar.Options().IsZero())
}
