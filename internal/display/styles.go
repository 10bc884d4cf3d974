package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/pocketchef/internal/domain"
)

// ── Palette ──────────────────────────────────────────────────────

var (
	colorMuted   = lipgloss.Color("#71717a")
	colorText    = lipgloss.Color("#d4d4d8")
	colorAccent  = lipgloss.Color("#fdba74")
	colorBorder  = lipgloss.Color("#52525b")
	colorSurface = lipgloss.Color("#27272a")
)

// ── Styles ───────────────────────────────────────────────────────

var (
	// Muted slate for the startup banner.
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	taglineStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Italic(true)

	featureStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	featureTitleStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	secondaryStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	primaryStyle = lipgloss.NewStyle().
			Foreground(colorText)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	cardSelectedStyle = cardStyle.
				BorderForeground(colorAccent)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa")).
			Background(colorSurface).
			Padding(0, 1)

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fecaca")).
			Background(lipgloss.Color("#3f3f46")).
			Padding(0, 1)

	selectorStyle = lipgloss.NewStyle().
			Foreground(colorText)

	keyHintStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#18181b")).
			Background(colorAccent).
			Bold(true).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa")).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))
)

// difficultyStyle colours the badge per level: green, amber, red.
func difficultyStyle(d domain.Difficulty) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch d {
	case domain.DifficultyEasy:
		return base.Foreground(lipgloss.Color("#14532d")).Background(lipgloss.Color("#bbf7d0"))
	case domain.DifficultyMedium:
		return base.Foreground(lipgloss.Color("#713f12")).Background(lipgloss.Color("#fde68a"))
	case domain.DifficultyHard:
		return base.Foreground(lipgloss.Color("#7f1d1d")).Background(lipgloss.Color("#fca5a5"))
	}
	return base
}
