package engine

import "github.com/hammamikhairi/pocketchef/internal/domain"

// DetailView is the tab state of the recipe detail modal. The zero value is
// a closed view. Opening always starts on the ingredients tab; closing
// discards the tab.
type DetailView struct {
	recipe *domain.Recipe
	tab    domain.DetailTab
}

// Open binds r and resets the tab. A nil recipe closes the view.
func (d *DetailView) Open(r *domain.Recipe) {
	if r == nil {
		d.Close()
		return
	}
	d.recipe = r
	d.tab = domain.TabIngredients
}

// Close unbinds the recipe.
func (d *DetailView) Close() {
	d.recipe = nil
	d.tab = domain.TabIngredients
}

// IsOpen reports whether a recipe is bound.
func (d *DetailView) IsOpen() bool { return d.recipe != nil }

// Recipe returns the bound recipe, or nil when closed.
func (d *DetailView) Recipe() *domain.Recipe { return d.recipe }

// Tab returns the active tab.
func (d *DetailView) Tab() domain.DetailTab { return d.tab }

// SetTab switches to t. Ignored while closed or for unknown tabs.
func (d *DetailView) SetTab(t domain.DetailTab) {
	if !d.IsOpen() || t < domain.TabIngredients || t > domain.TabNutrition {
		return
	}
	d.tab = t
}

// NextTab moves one tab to the right, wrapping around.
func (d *DetailView) NextTab() {
	d.SetTab((d.tab + 1) % domain.DetailTab(len(domain.Tabs)))
}

// PrevTab moves one tab to the left, wrapping around.
func (d *DetailView) PrevTab() {
	n := domain.DetailTab(len(domain.Tabs))
	d.SetTab((d.tab + n - 1) % n)
}
