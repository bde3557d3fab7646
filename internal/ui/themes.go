package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gamenative/gamenative-tui/internal/ui/anim"
)

// Theme represents a color theme for the TUI
type Theme struct {
	Name string

	// Brand colors; the splash title runs from Primary to Tertiary
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Tertiary  lipgloss.AdaptiveColor

	// Surface colors
	Border           lipgloss.AdaptiveColor
	Background       lipgloss.AdaptiveColor
	Foreground       lipgloss.AdaptiveColor
	OnSurfaceVariant lipgloss.AdaptiveColor
	Muted            lipgloss.AdaptiveColor
}

// buildTheme creates a theme from [light, dark] pairs
func buildTheme(name string, primary, secondary, tertiary, border, background, foreground, onSurfaceVariant, muted [2]string) Theme {
	return Theme{
		Name:             name,
		Primary:          lipgloss.AdaptiveColor{Light: primary[0], Dark: primary[1]},
		Secondary:        lipgloss.AdaptiveColor{Light: secondary[0], Dark: secondary[1]},
		Tertiary:         lipgloss.AdaptiveColor{Light: tertiary[0], Dark: tertiary[1]},
		Border:           lipgloss.AdaptiveColor{Light: border[0], Dark: border[1]},
		Background:       lipgloss.AdaptiveColor{Light: background[0], Dark: background[1]},
		Foreground:       lipgloss.AdaptiveColor{Light: foreground[0], Dark: foreground[1]},
		OnSurfaceVariant: lipgloss.AdaptiveColor{Light: onSurfaceVariant[0], Dark: onSurfaceVariant[1]},
		Muted:            lipgloss.AdaptiveColor{Light: muted[0], Dark: muted[1]},
	}
}

// Available themes
var (
	DefaultTheme = buildTheme("default",
		[2]string{"#7E22CE", "#C084FC"}, [2]string{"#4B5563", "#9CA3AF"}, [2]string{"#0891B2", "#22D3EE"},
		[2]string{"#D1D5DB", "#374151"}, [2]string{"#FFFFFF", "#000000"}, [2]string{"#111827", "#F9FAFB"},
		[2]string{"#4B5563", "#CAC4D0"}, [2]string{"#6B7280", "#9CA3AF"})

	HighContrastTheme = buildTheme("high-contrast",
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#333333", "#DDDDDD"}, [2]string{"#000080", "#80FFFF"},
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#FFFFFF", "#000000"}, [2]string{"#000000", "#FFFFFF"},
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#444444", "#BBBBBB"})

	MinimalTheme = buildTheme("minimal",
		[2]string{"#2D3748", "#E2E8F0"}, [2]string{"#718096", "#A0AEC0"}, [2]string{"#4A5568", "#CBD5E0"},
		[2]string{"#E2E8F0", "#2D3748"}, [2]string{"#FFFFFF", "#1A202C"}, [2]string{"#2D3748", "#F7FAFC"},
		[2]string{"#4A5568", "#CBD5E0"}, [2]string{"#A0AEC0", "#718096"})
)

var currentTheme = DefaultTheme

// GetTheme returns the current active theme
func GetTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme
func SetTheme(theme *Theme) {
	currentTheme = *theme
}

// SetThemeByName sets the theme by name
func SetThemeByName(name string) bool {
	switch name {
	case "default", "":
		SetTheme(&DefaultTheme)
		return true
	case "high-contrast":
		SetTheme(&HighContrastTheme)
		return true
	case "minimal":
		SetTheme(&MinimalTheme)
		return true
	default:
		return false
	}
}

// GetAvailableThemes returns list of available theme names
func GetAvailableThemes() []string {
	return []string{"default", "high-contrast", "minimal"}
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// Styles contains the styled components shared by the views
type Styles struct {
	Theme Theme

	Title   lipgloss.Style
	Header  lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Button  lipgloss.Style
	Dialog  lipgloss.Style
	Caption lipgloss.Style
}

// GetStyles builds styles from the current theme
func GetStyles() *Styles {
	theme := GetTheme()

	return &Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Button: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),

		Caption: lipgloss.NewStyle().
			Foreground(theme.OnSurfaceVariant).
			Align(lipgloss.Center),
	}
}

// GradientText colours each rune of text along a from→to blend
func GradientText(text, from, to string, bold bool) string {
	if IsColorDisabled() {
		return text
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(anim.Blend(from, to, t))).
			Bold(bold).
			Render(string(r)))
	}
	return b.String()
}
