package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

// RenderBanner returns the banner art horizontally centred for the given
// width. No scaling is applied. To change the banner just replace
// banner.txt.
func RenderBanner(width int) string {
	lines := strings.Split(strings.TrimRight(bannerRaw, "\n"), "\n")

	// Find the widest line.
	maxW := 0
	for _, l := range lines {
		if w := lipgloss.Width(l); w > maxW {
			maxW = w
		}
	}

	var b strings.Builder
	for _, l := range lines {
		if width > maxW {
			b.WriteString(strings.Repeat(" ", (width-maxW)/2))
		}
		b.WriteString(bannerStyle.Render(l))
		b.WriteByte('\n')
	}
	return b.String()
}

// TermWidth returns the current terminal column count, or 80 as fallback.
func TermWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
