package domain

// DetailTab selects which section of the recipe detail view is shown.
// The zero value is the tab every newly opened view starts on.
type DetailTab int

const (
	TabIngredients DetailTab = iota
	TabInstructions
	TabNutrition
)

// Tabs lists the detail tabs in display order.
var Tabs = []DetailTab{TabIngredients, TabInstructions, TabNutrition}

// String returns the tab title.
func (t DetailTab) String() string {
	switch t {
	case TabIngredients:
		return "Ingredients"
	case TabInstructions:
		return "Instructions"
	case TabNutrition:
		return "Nutrition"
	default:
		return "unknown"
	}
}
