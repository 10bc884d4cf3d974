package display

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Open        key.Binding
	Close       key.Binding
	Search      key.Binding
	Time        key.Binding
	Budget      key.Binding
	Level       key.Binding
	Diet        key.Binding
	ClearTime   key.Binding
	ClearBudget key.Binding
	ClearLevel  key.Binding
	ClearDiet   key.Binding
	ViewAll     key.Binding
	Export      key.Binding
	Tab1        key.Binding
	Tab2        key.Binding
	Tab3        key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open recipe")),
		Close:       key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Time:        key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "time")),
		Budget:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "budget")),
		Level:       key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "level")),
		Diet:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "diet")),
		ClearTime:   key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "clear time")),
		ClearBudget: key.NewBinding(key.WithKeys("B"), key.WithHelp("B", "clear budget")),
		ClearLevel:  key.NewBinding(key.WithKeys("V"), key.WithHelp("V", "clear level")),
		ClearDiet:   key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "clear diet")),
		ViewAll:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "view all")),
		Export:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export view")),
		Tab1:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "ingredients")),
		Tab2:        key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "instructions")),
		Tab3:        key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "nutrition")),
		NextTab:     key.NewBinding(key.WithKeys("right", "tab", "l"), key.WithHelp("→", "next tab")),
		PrevTab:     key.NewBinding(key.WithKeys("left", "shift+tab", "h"), key.WithHelp("←", "prev tab")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Open, k.Time, k.Budget, k.Level, k.Diet, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Open},
		{k.Time, k.Budget, k.Level, k.Diet},
		{k.ClearTime, k.ClearBudget, k.ClearLevel, k.ClearDiet},
		{k.Search, k.ViewAll, k.Export, k.Help, k.Quit},
	}
}
