package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gamenative/gamenative-tui/internal/tips"
	"github.com/gamenative/gamenative-tui/internal/ui/anim"
	"github.com/gamenative/gamenative-tui/internal/ui/components"
)

const (
	splashTitle   = "GameNative"
	splashStatus  = "Booting..."
	splashBarRows = 2
)

// BootSplash is the full-screen overlay shown while the container boots.
// It rotates a random tip every interval for as long as it is visible.
type BootSplash struct {
	rotator  *tips.Rotator
	interval time.Duration
	pulse    anim.Pulse
	now      func() time.Time

	visible    bool
	generation int

	shownAt      time.Time
	tipChangedAt time.Time
	frameAt      time.Time

	onBootCompleted func()

	width    int
	height   int
	quitting bool
}

// SplashOption customizes a BootSplash
type SplashOption func(*BootSplash)

// WithInterval overrides the tip rotation interval
func WithInterval(d time.Duration) SplashOption {
	return func(m *BootSplash) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithClock replaces the time source used for animations
func WithClock(now func() time.Time) SplashOption {
	return func(m *BootSplash) { m.now = now }
}

// WithBootCompleted registers the callback fired when booting finishes
func WithBootCompleted(fn func()) SplashOption {
	return func(m *BootSplash) { m.onBootCompleted = fn }
}

// WithVisible sets the initial visibility
func WithVisible(visible bool) SplashOption {
	return func(m *BootSplash) { m.visible = visible }
}

// NewBootSplash creates a visible splash over the given rotator
func NewBootSplash(rotator *tips.Rotator, opts ...SplashOption) *BootSplash {
	m := &BootSplash{
		rotator:  rotator,
		interval: tips.DefaultInterval,
		pulse:    anim.DefaultPulse(),
		now:      time.Now,
		visible:  true,
		width:    80,
		height:   24,
	}
	for _, opt := range opts {
		opt(m)
	}

	t := m.now()
	m.shownAt = t
	m.tipChangedAt = t
	m.frameAt = t
	return m
}

// Init starts the animation frames and, when visible, the tip timer
func (m *BootSplash) Init() tea.Cmd {
	return tea.Batch(frameTick(), m.scheduleTip())
}

func (m *BootSplash) scheduleTip() tea.Cmd {
	if !m.visible || m.rotator.Len() == 0 {
		return nil
	}
	return tipTick(m.interval, m.generation)
}

// Update handles messages
func (m *BootSplash) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tipTickMsg:
		return m, m.handleTipTick(msg)

	case frameMsg:
		m.frameAt = msg.at
		if m.quitting {
			return m, nil
		}
		return m, frameTick()

	case SetVisibleMsg:
		return m, m.setVisible(msg.Visible)

	case BootCompletedMsg:
		m.setVisible(false)
		m.quitting = true
		if m.onBootCompleted != nil {
			m.onBootCompleted()
		}
		return m, tea.Quit
	}

	return m, nil
}

// handleTipTick advances on a live tick and schedules the next one. A tick
// scheduled before the splash was hidden carries an old generation and is
// dropped without rescheduling.
func (m *BootSplash) handleTipTick(msg tipTickMsg) tea.Cmd {
	if msg.generation != m.generation || !m.visible {
		return nil
	}
	m.rotator.Advance()
	m.tipChangedAt = m.now()
	return m.scheduleTip()
}

// setVisible keeps the current tip index across toggles
func (m *BootSplash) setVisible(visible bool) tea.Cmd {
	if visible == m.visible {
		return nil
	}
	m.visible = visible
	m.generation++

	if !visible {
		return nil
	}
	t := m.now()
	m.shownAt = t
	m.tipChangedAt = t
	return m.scheduleTip()
}

// Visible reports whether the splash is shown
func (m *BootSplash) Visible() bool { return m.visible }

// TipIndex returns the index of the tip on screen
func (m *BootSplash) TipIndex() int { return m.rotator.Index() }

// CurrentTip returns the tip on screen
func (m *BootSplash) CurrentTip() string { return m.rotator.Current() }

// View renders the splash
func (m *BootSplash) View() string {
	if !m.visible || m.quitting {
		return ""
	}

	styles := GetStyles()
	theme := styles.Theme
	fg := adaptiveHex(theme.Foreground)
	bg := adaptiveHex(theme.Background)

	fadeIn := anim.Fade{Duration: anim.SplashFadeIn}.Progress(m.frameAt.Sub(m.shownAt))
	tipIn := anim.Fade{Duration: anim.TipCrossfade}.Progress(m.frameAt.Sub(m.tipChangedAt))

	bar := components.NewGradientBar(m.width)
	bar.Alpha = m.pulse.Alpha(m.frameAt.Sub(m.shownAt)) * fadeIn
	band := strings.TrimRight(strings.Repeat(bar.Render()+"\n", splashBarRows), "\n")

	title := GradientText(splashTitle, adaptiveHex(theme.Primary), adaptiveHex(theme.Tertiary), true)
	status := m.fadedStyle(bg, fg, fadeIn).Render(splashStatus)

	var center strings.Builder
	center.WriteString(title)
	center.WriteString("\n\n")
	center.WriteString(status)

	if tip := m.rotator.Current(); tip != "" {
		width := max(20, min(72, m.width-8))
		tipStyle := m.fadedStyle(bg, adaptiveHex(theme.OnSurfaceVariant), tipIn*fadeIn).
			Width(width).
			Align(lipgloss.Center)
		center.WriteString("\n\n")
		center.WriteString(tipStyle.Render(tip))
	}

	middleHeight := max(0, m.height-2*splashBarRows)
	middle := lipgloss.Place(m.width, middleHeight, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(center.String()))

	return lipgloss.JoinVertical(lipgloss.Left, band, middle, band)
}

func (m *BootSplash) fadedStyle(from, to string, t float64) lipgloss.Style {
	if IsColorDisabled() {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(anim.Blend(from, to, t)))
}

// adaptiveHex picks the variant matching the terminal background
func adaptiveHex(c lipgloss.AdaptiveColor) string {
	if lipgloss.HasDarkBackground() {
		return c.Dark
	}
	return c.Light
}

// RunBootSplash runs the splash until the user quits or done is closed
func RunBootSplash(rotator *tips.Rotator, done <-chan struct{}, opts ...SplashOption) error {
	model := NewBootSplash(rotator, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())

	exited := make(chan struct{})
	defer close(exited)

	if done != nil {
		go func() {
			select {
			case <-done:
				p.Send(BootCompletedMsg{})
			case <-exited:
			}
		}()
	}

	_, err := p.Run()
	return err
}
