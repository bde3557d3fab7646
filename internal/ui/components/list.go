package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gamenative/gamenative-tui/internal/supporters"
)

// LineKind controls how a list line is styled
type LineKind int

const (
	LineItem LineKind = iota
	LineHeader
	LineAccentHeader
	LineAccentItem
	LineNote
	LineBlank
)

// Line is a single row of a list
type Line struct {
	Text string
	Kind LineKind
}

// List is a sectioned list shown through a scrollable window
type List struct {
	Lines  []Line
	Width  int
	Height int
	offset int
}

// NewList creates an empty list with the given viewport size
func NewList(width, height int) *List {
	return &List{Width: width, Height: height}
}

// SetLines replaces the content and scrolls back to the top
func (l *List) SetLines(lines []Line) {
	l.Lines = lines
	l.offset = 0
}

// SetSize updates the viewport, keeping the offset in range
func (l *List) SetSize(width, height int) {
	l.Width = width
	l.Height = height
	l.clampOffset()
}

// Offset returns the index of the first visible line
func (l *List) Offset() int { return l.offset }

// visible returns how many lines fit in the viewport
func (l *List) visible() int {
	if l.Height < 1 {
		return 1
	}
	return l.Height
}

func (l *List) maxOffset() int {
	return max(0, len(l.Lines)-l.visible())
}

func (l *List) clampOffset() {
	l.offset = min(max(0, l.offset), l.maxOffset())
}

// ScrollUp moves the window up by one line
func (l *List) ScrollUp() {
	l.offset--
	l.clampOffset()
}

// ScrollDown moves the window down by one line
func (l *List) ScrollDown() {
	l.offset++
	l.clampOffset()
}

// PageUp moves the window up by a full page
func (l *List) PageUp() {
	l.offset -= l.visible()
	l.clampOffset()
}

// PageDown moves the window down by a full page
func (l *List) PageDown() {
	l.offset += l.visible()
	l.clampOffset()
}

// Top scrolls to the first line
func (l *List) Top() { l.offset = 0 }

// Bottom scrolls to the last page
func (l *List) Bottom() { l.offset = l.maxOffset() }

// CanScroll reports whether the content is taller than the viewport
func (l *List) CanScroll() bool {
	return len(l.Lines) > l.visible()
}

// Render renders the visible window
func (l *List) Render() string {
	primaryColor := lipgloss.AdaptiveColor{Light: "#7E22CE", Dark: "#C084FC"}
	secondaryColor := lipgloss.AdaptiveColor{Light: "#374151", Dark: "#E5E7EB"}
	mutedColor := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	styles := map[LineKind]lipgloss.Style{
		LineItem:         lipgloss.NewStyle().Foreground(secondaryColor),
		LineHeader:       lipgloss.NewStyle().Foreground(secondaryColor).Bold(true),
		LineAccentHeader: lipgloss.NewStyle().Foreground(primaryColor).Bold(true),
		LineAccentItem:   lipgloss.NewStyle().Foreground(primaryColor),
		LineNote:         lipgloss.NewStyle().Foreground(mutedColor),
		LineBlank:        lipgloss.NewStyle(),
	}

	end := min(len(l.Lines), l.offset+l.visible())
	rows := make([]string, 0, end-l.offset+1)

	for _, line := range l.Lines[l.offset:end] {
		text := line.Text
		if l.Width > 0 {
			text = truncate(text, l.Width)
		}
		rows = append(rows, styles[line.Kind].Render(text))
	}

	if l.CanScroll() {
		info := fmt.Sprintf("(%d-%d of %d)", l.offset+1, end, len(l.Lines))
		rows = append(rows, styles[LineNote].Render(info))
	}

	return strings.Join(rows, "\n")
}

// truncate shortens s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// SupporterLines lays out a partitioned supporter list: members first under
// their own accented heading, then one-off supporters
func SupporterLines(p supporters.Partitioned) []Line {
	if p.IsEmpty() {
		return []Line{{Text: "No supporters yet.", Kind: LineNote}}
	}

	lines := make([]Line, 0, p.Total()+3)

	if len(p.Members) > 0 {
		lines = append(lines, Line{Text: "Members", Kind: LineAccentHeader})
		for _, r := range p.Members {
			lines = append(lines, Line{Text: r.DisplayName(), Kind: LineAccentItem})
		}
	}

	if len(p.OneOffs) > 0 {
		if len(lines) > 0 {
			lines = append(lines, Line{Kind: LineBlank})
		}
		lines = append(lines, Line{Text: "Supporters", Kind: LineHeader})
		for _, r := range p.OneOffs {
			lines = append(lines, Line{Text: r.DisplayName(), Kind: LineItem})
		}
	}

	return lines
}

// NewSupporterList creates a list showing p
func NewSupporterList(p supporters.Partitioned, width, height int) *List {
	list := NewList(width, height)
	list.SetLines(SupporterLines(p))
	return list
}
