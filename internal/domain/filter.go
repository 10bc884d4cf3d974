package domain

// FilterAxis identifies one independent filter dimension.
type FilterAxis int

const (
	AxisMaxTime FilterAxis = iota
	AxisMaxCost
	AxisDifficulty
	AxisDietType
)

// Axes lists every filter axis in canonical order.
var Axes = []FilterAxis{AxisMaxTime, AxisMaxCost, AxisDifficulty, AxisDietType}

// String returns a human-readable axis name.
func (a FilterAxis) String() string {
	switch a {
	case AxisMaxTime:
		return "time"
	case AxisMaxCost:
		return "budget"
	case AxisDifficulty:
		return "level"
	case AxisDietType:
		return "diet"
	default:
		return "unknown"
	}
}

// FilterOptions holds at most one value per axis. A zero field means the
// axis is absent and places no constraint on the catalog.
type FilterOptions struct {
	MaxTime    int     // minutes
	MaxCost    float64 // rupees per serving
	Difficulty Difficulty
	DietType   string
}

// Has reports whether the axis carries a value.
func (o FilterOptions) Has(axis FilterAxis) bool {
	switch axis {
	case AxisMaxTime:
		return o.MaxTime != 0
	case AxisMaxCost:
		return o.MaxCost != 0
	case AxisDifficulty:
		return o.Difficulty != DifficultyAny
	case AxisDietType:
		return o.DietType != ""
	}
	return false
}

// Without returns a copy of o with the axis removed.
func (o FilterOptions) Without(axis FilterAxis) FilterOptions {
	switch axis {
	case AxisMaxTime:
		o.MaxTime = 0
	case AxisMaxCost:
		o.MaxCost = 0
	case AxisDifficulty:
		o.Difficulty = DifficultyAny
	case AxisDietType:
		o.DietType = ""
	}
	return o
}

// Active returns the axes that carry a value, in canonical order.
func (o FilterOptions) Active() []FilterAxis {
	var out []FilterAxis
	for _, a := range Axes {
		if o.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// IsZero reports whether no axis is set.
func (o FilterOptions) IsZero() bool {
	return o == FilterOptions{}
}

// Chip is the removable display token for one active filter axis. Removal
// goes through Axis; Label is for display only and may collide across axes.
type Chip struct {
	Axis  FilterAxis
	Label string
}

// Fixed choices offered by the filter bar.
var (
	TimeOptions       = []int{15, 30, 45}
	CostOptions       = []float64{50, 100, 150}
	DifficultyOptions = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
	DietOptions       = []string{"Vegetarian", "Non-Vegetarian", "Vegan", "High-Protein"}
)
