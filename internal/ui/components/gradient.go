package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gamenative/gamenative-tui/internal/ui/anim"
)

// SplashStops is the splash overlay: purple into a wide black centre into cyan
var SplashStops = []string{"#A21CAF", "#000000", "#000000", "#000000", "#000000", "#06B6D4"}

// GradientBar renders a horizontal band of blended colours whose intensity
// follows Alpha, composited over Base
type GradientBar struct {
	Width int
	Stops []string
	Base  string
	Alpha float64
	Char  string
}

// NewGradientBar creates a bar over a black background using the splash stops
func NewGradientBar(width int) *GradientBar {
	return &GradientBar{
		Width: width,
		Stops: SplashStops,
		Base:  "#000000",
		Alpha: anim.PulseMin,
		Char:  "▀",
	}
}

// Colors returns the composited colour of every cell
func (g *GradientBar) Colors() []string {
	cells := anim.Gradient(g.Stops, g.Width)
	for i, c := range cells {
		cells[i] = anim.Blend(g.Base, c, g.Alpha)
	}
	return cells
}

// Render renders the band as a single line
func (g *GradientBar) Render() string {
	if g.Width <= 0 {
		return ""
	}

	char := g.Char
	if char == "" {
		char = " "
	}

	var b strings.Builder
	for _, c := range g.Colors() {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(c)).
			Background(lipgloss.Color(g.Base)).
			Render(char))
	}
	return b.String()
}
