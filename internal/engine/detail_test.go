package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hammamikhairi/pocketchef/internal/domain"
)

func TestDetailViewZeroValueIsClosed(t *testing.T) {
	var d DetailView
	assert.False(t, d.IsOpen())
	assert.Nil(t, d.Recipe())

	d.SetTab(domain.TabNutrition)
	assert.Equal(t, domain.TabIngredients, d.Tab(), "tab changes are ignored while closed")
}

func TestDetailViewTransitions(t *testing.T) {
	r := &domain.Recipe{ID: "r"}
	var d DetailView
	d.Open(r)

	tests := []struct {
		name string
		act  func()
		want domain.DetailTab
	}{
		{"instructions", func() { d.SetTab(domain.TabInstructions) }, domain.TabInstructions},
		{"nutrition", func() { d.SetTab(domain.TabNutrition) }, domain.TabNutrition},
		{"next wraps", d.NextTab, domain.TabIngredients},
		{"prev wraps", d.PrevTab, domain.TabNutrition},
		{"prev", d.PrevTab, domain.TabInstructions},
		{"unknown ignored", func() { d.SetTab(domain.DetailTab(7)) }, domain.TabInstructions},
		{"direct back", func() { d.SetTab(domain.TabIngredients) }, domain.TabIngredients},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.act()
			assert.Equal(t, tt.want, d.Tab())
		})
	}
}

func TestDetailViewReopenResetsTab(t *testing.T) {
	var d DetailView
	for _, last := range domain.Tabs {
		d.Open(&domain.Recipe{ID: "r"})
		d.SetTab(last)
		d.Close()
		assert.False(t, d.IsOpen())

		d.Open(&domain.Recipe{ID: "r"})
		assert.Equal(t, domain.TabIngredients, d.Tab())
	}

	d.Open(nil)
	assert.False(t, d.IsOpen())
}
