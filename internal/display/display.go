// Package display provides the terminal UI using Bubble Tea.
//
// The [UI] type renders the hero banner, the search/filter bar, the recipe
// grid and the detail modal. All state lives in an [engine.Page] and an
// [engine.FilterBar] owned by the caller; the Bubble Tea model only keeps
// focus, cursor and terminal size.
package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/pocketchef/internal/domain"
	"github.com/hammamikhairi/pocketchef/internal/engine"
	"github.com/hammamikhairi/pocketchef/internal/logger"
)

// ExportFunc writes a snapshot of recipes to path.
type ExportFunc func(path string, recipes []*domain.Recipe) error

// Option configures the UI.
type Option func(*UI)

// WithExport enables the export key, writing the current view to path.
func WithExport(path string, fn ExportFunc) Option {
	return func(u *UI) {
		u.exportPath = path
		u.exportFn = fn
	}
}

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea. Call [NewUI] then [UI.Run]
// (blocking).
type UI struct {
	page       *engine.Page
	bar        *engine.FilterBar
	log        *logger.Logger
	exportPath string
	exportFn   ExportFunc
}

// NewUI creates the display over the given page and bar. The bar's
// callbacks must already be wired to the page.
func NewUI(page *engine.Page, bar *engine.FilterBar, log *logger.Logger, opts ...Option) *UI {
	u := &UI{page: page, bar: bar, log: log}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	_, err := tea.NewProgram(u.model(), tea.WithAltScreen()).Run()
	return err
}

func (u *UI) model() model {
	ti := textinput.New()
	ti.Prompt = "search> "
	ti.Placeholder = "Search recipes or ingredients..."
	ti.PromptStyle = keyHintStyle
	ti.TextStyle = primaryStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(colorAccent)
	ti.CharLimit = 120
	ti.Width = 60 // updated on first WindowSizeMsg
	ti.SetValue(u.bar.Query())
	ti.Focus()

	return model{
		page:       u.page,
		bar:        u.bar,
		log:        u.log,
		input:      ti,
		keys:       defaultKeyMap(),
		help:       help.New(),
		focus:      focusSearch,
		exportPath: u.exportPath,
		exportFn:   u.exportFn,
	}
}

// ── Bubble Tea model ─────────────────────────────────────────────

type focus int

const (
	focusSearch focus = iota
	focusGrid
)

type model struct {
	page       *engine.Page
	bar        *engine.FilterBar
	log        *logger.Logger
	input      textinput.Model
	keys       keyMap
	help       help.Model
	focus      focus
	cursor     int
	width      int
	height     int
	status     string
	statusErr  bool
	exportPath string
	exportFn   ExportFunc
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle("PocketChef"))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		const promptLen = 8 // "search> "
		if msg.Width > promptLen+1 {
			m.input.Width = msg.Width - promptLen - 1
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch {
		case m.page.IsOpen():
			return m.updateDetail(msg), nil
		case m.focus == focusSearch:
			return m.updateSearch(msg)
		default:
			return m.updateGrid(msg)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateDetail(msg tea.KeyMsg) model {
	d := m.page.Detail()
	switch {
	case key.Matches(msg, m.keys.Close):
		m.page.Close()
	case key.Matches(msg, m.keys.Tab1):
		d.SetTab(domain.TabIngredients)
	case key.Matches(msg, m.keys.Tab2):
		d.SetTab(domain.TabInstructions)
	case key.Matches(msg, m.keys.Tab3):
		d.SetTab(domain.TabNutrition)
	case key.Matches(msg, m.keys.NextTab):
		d.NextTab()
	case key.Matches(msg, m.keys.PrevTab):
		d.PrevTab()
	}
	return m
}

func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter, tea.KeyDown, tea.KeyTab:
		m.focus = focusGrid
		m.input.Blur()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.bar.SetQuery(v)
		m.cursor = 0
	}
	return m, cmd
}

func (m model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := GridColumns(m.width)
	n := len(m.page.Results())

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		return m.focusSearch()
	case key.Matches(msg, m.keys.Up):
		if m.cursor-cols < 0 {
			return m.focusSearch()
		}
		m.cursor -= cols
	case key.Matches(msg, m.keys.Down):
		if m.cursor+cols < n {
			m.cursor += cols
		}
	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor+1 < n {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if err := m.page.Select(m.cursor); err != nil {
			m.log.Debug("select: %v", err)
		}
	case key.Matches(msg, m.keys.Time):
		m.bar.Cycle(domain.AxisMaxTime)
	case key.Matches(msg, m.keys.Budget):
		m.bar.Cycle(domain.AxisMaxCost)
	case key.Matches(msg, m.keys.Level):
		m.bar.Cycle(domain.AxisDifficulty)
	case key.Matches(msg, m.keys.Diet):
		m.bar.Cycle(domain.AxisDietType)
	case key.Matches(msg, m.keys.ClearTime):
		m.bar.Clear(domain.AxisMaxTime)
	case key.Matches(msg, m.keys.ClearBudget):
		m.bar.Clear(domain.AxisMaxCost)
	case key.Matches(msg, m.keys.ClearLevel):
		m.bar.Clear(domain.AxisDifficulty)
	case key.Matches(msg, m.keys.ClearDiet):
		m.bar.Clear(domain.AxisDietType)
	case key.Matches(msg, m.keys.ViewAll):
		m.bar.Reset()
		m.input.SetValue("")
	case key.Matches(msg, m.keys.Export):
		m = m.export()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.cursor = clampCursor(m.cursor, len(m.page.Results()))
	return m, nil
}

func (m model) focusSearch() (tea.Model, tea.Cmd) {
	m.focus = focusSearch
	cmd := m.input.Focus()
	return m, cmd
}

func (m model) export() model {
	if m.exportFn == nil || m.exportPath == "" {
		m.status, m.statusErr = "export disabled: start with -export <file.xlsx|file.csv>", true
		return m
	}
	results := m.page.Results()
	if err := m.exportFn(m.exportPath, results); err != nil {
		m.log.Error("export to %s: %v", m.exportPath, err)
		m.status, m.statusErr = "export failed: "+err.Error(), true
		if errors.Is(err, domain.ErrUnsupportedFormat) {
			m.status = "export failed: use a .xlsx or .csv path"
		}
		return m
	}
	m.log.Info("exported %d recipes to %s", len(results), m.exportPath)
	m.status, m.statusErr = fmt.Sprintf("exported %d recipes to %s", len(results), m.exportPath), false
	return m
}

func clampCursor(c, n int) int {
	if c >= n {
		c = n - 1
	}
	if c < 0 {
		c = 0
	}
	return c
}

func (m model) View() string {
	if m.page.IsOpen() {
		modal := RenderDetail(m.page.Detail(), m.width)
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
		}
		return modal
	}

	var b strings.Builder
	b.WriteString(RenderHero(m.width))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	b.WriteString(RenderSelectors(m.bar.Options()))
	b.WriteByte('\n')
	if chips := RenderChips(m.bar.Chips()); chips != "" {
		b.WriteString(chips)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	b.WriteString(headingStyle.Render(fmt.Sprintf("Recommended Recipes (%d)", len(m.page.Results()))))
	b.WriteString("\n\n")
	cursor := -1
	if m.focus == focusGrid {
		cursor = m.cursor
	}
	b.WriteString(RenderGrid(m.page.Results(), cursor, m.width))
	b.WriteString("\n\n")

	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteByte('\n')
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
