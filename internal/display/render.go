package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/pocketchef/internal/domain"
	"github.com/hammamikhairi/pocketchef/internal/engine"
	"github.com/hammamikhairi/pocketchef/internal/filter"
)

// NoResultsMessage is shown in place of the grid when the view is empty.
const NoResultsMessage = "No recipes found. Try adjusting your filters!"

const (
	// CardWidth is the outer width of one card including its border.
	CardWidth = 38
	// maxCardTags is how many tag badges a card shows before "+N".
	maxCardTags = 3
	cardGap     = 1
)

// ── Hero ─────────────────────────────────────────────────────────

// RenderHero renders the banner, tagline and feature blurbs.
func RenderHero(width int) string {
	tagline := "Your cooking companion for hostel & PG life. Find recipes based on what you have!"
	features := lipgloss.JoinHorizontal(lipgloss.Top,
		feature("Smart Recipe Finder", "Search by dish, ingredient or tag"),
		" ",
		feature("Quick Meals", "15-minute recipes for busy students"),
		" ",
		feature("Budget Friendly", "Delicious meals under ₹50"),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderBanner(width),
		center(taglineStyle.Render(tagline), width),
		"",
		center(features, width),
	)
}

func feature(title, body string) string {
	return featureStyle.Render(featureTitleStyle.Render(title) + "\n" + secondaryStyle.Render(body))
}

func center(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// ── Search / filter bar ──────────────────────────────────────────

// RenderSelectors renders the four filter selectors with their key hints.
func RenderSelectors(opts domain.FilterOptions) string {
	sel := func(name, key string, axis domain.FilterAxis) string {
		value := "Any"
		if opts.Has(axis) {
			value = filter.Label(axis, opts)
		}
		return selectorStyle.Render(name+": "+value) + keyHintStyle.Render(" ["+key+"]")
	}
	return strings.Join([]string{
		sel("Time", "t", domain.AxisMaxTime),
		sel("Budget", "b", domain.AxisMaxCost),
		sel("Level", "v", domain.AxisDifficulty),
		sel("Diet", "d", domain.AxisDietType),
	}, "   ")
}

// RenderChips renders the active filter chips, or "" when there are none.
func RenderChips(chips []domain.Chip) string {
	if len(chips) == 0 {
		return ""
	}
	parts := make([]string, 0, len(chips))
	for _, c := range chips {
		parts = append(parts, chipStyle.Render(c.Label+" ×"))
	}
	return strings.Join(parts, " ") + keyHintStyle.Render("  (shift+key removes)")
}

// ── Cards ────────────────────────────────────────────────────────

// RenderCard renders the summary card for one recipe.
func RenderCard(r *domain.Recipe, selected bool) string {
	inner := CardWidth - 4 // border + horizontal padding

	shown, more := filter.VisibleTags(r.Tags, maxCardTags)
	tags := make([]string, 0, len(shown)+1)
	for _, t := range shown {
		tags = append(tags, tagStyle.Render(t))
	}
	if more > 0 {
		tags = append(tags, tagStyle.Render(fmt.Sprintf("+%d", more)))
	}

	meta := fmt.Sprintf("%d min · %d servings · %s/serving",
		r.CookTime, r.Servings, filter.Rupees(r.CostPerServing))

	body := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(clampLines(r.Title, inner, 1)),
		secondaryStyle.Render(clampLines(r.Description, inner, 2)),
		primaryStyle.Render(meta),
		difficultyStyle(r.Difficulty).Render(r.Difficulty.String()),
		lipgloss.NewStyle().Width(inner).Render(strings.Join(tags, " ")),
	)

	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	return style.Width(CardWidth - 2).Render(body)
}

// GridColumns returns how many cards fit side by side in width.
func GridColumns(width int) int {
	cols := (width + cardGap) / (CardWidth + cardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

// RenderGrid lays the cards out in rows. cursor marks the selected card;
// pass -1 for none. An empty list renders NoResultsMessage.
func RenderGrid(recipes []*domain.Recipe, cursor, width int) string {
	if len(recipes) == 0 {
		return emptyStyle.Render(NoResultsMessage)
	}
	cols := GridColumns(width)
	var rows []string
	for start := 0; start < len(recipes); start += cols {
		end := min(start+cols, len(recipes))
		cards := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, RenderCard(recipes[i], i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

// clampLines wraps text to width and keeps at most n lines, marking the
// cut with an ellipsis.
func clampLines(text string, width, n int) string {
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}
	lines = lines[:n]
	last := []rune(lines[n-1])
	if len(last) >= width {
		last = last[:width-1]
	}
	lines[n-1] = string(last) + "…"
	return strings.Join(lines, "\n")
}

// ── Detail modal ─────────────────────────────────────────────────

// RenderDetail renders the detail modal. A closed view renders nothing.
func RenderDetail(d *engine.DetailView, width int) string {
	if d == nil || !d.IsOpen() {
		return ""
	}
	r := d.Recipe()

	inner := width - 8 // double border + padding
	if inner > 72 || inner <= 0 {
		inner = 72
	}

	meta := fmt.Sprintf("%d min · %d servings · %s/serving  ",
		r.CookTime, r.Servings, filter.Rupees(r.CostPerServing))
	header := lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render(r.Title),
		secondaryStyle.Width(inner).Render(r.Description),
		primaryStyle.Render(meta)+difficultyStyle(r.Difficulty).Render(r.Difficulty.String()),
		secondaryStyle.Render(strings.Join(r.Tags, " · ")),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		renderTabs(d.Tab()),
		"",
		primaryStyle.Width(inner).Render(strings.Join(TabLines(r, d.Tab()), "\n")),
		"",
		keyHintStyle.Render("1-3 / ←→ switch tab · esc close"),
	)
	return modalStyle.Render(body)
}

func renderTabs(active domain.DetailTab) string {
	parts := make([]string, 0, len(domain.Tabs))
	for i, t := range domain.Tabs {
		label := strconv.Itoa(i+1) + " " + t.String()
		if t == active {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// TabLines returns the unstyled content lines of one detail tab.
func TabLines(r *domain.Recipe, tab domain.DetailTab) []string {
	switch tab {
	case domain.TabIngredients:
		out := make([]string, 0, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			out = append(out, "• "+ing)
		}
		return out
	case domain.TabInstructions:
		out := make([]string, 0, len(r.Instructions))
		for i, step := range r.Instructions {
			out = append(out, fmt.Sprintf("%d. %s", i+1, step))
		}
		return out
	case domain.TabNutrition:
		n := r.Nutrition
		return []string{
			"Calories " + num(n.Calories),
			"Protein  " + num(n.Protein) + "g",
			"Carbs    " + num(n.Carbs) + "g",
			"Fat      " + num(n.Fat) + "g",
		}
	}
	return nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
