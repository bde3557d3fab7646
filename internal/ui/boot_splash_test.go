package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gamenative/gamenative-tui/internal/tips"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSplash(t *testing.T, tipList []string, start int, opts ...SplashOption) (*BootSplash, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	rotator := tips.NewRotator(tipList, func(int) int { return start })
	opts = append([]SplashOption{WithClock(clock.Now)}, opts...)
	return NewBootSplash(rotator, opts...), clock
}

func TestBootSplashInit(t *testing.T) {
	m, _ := newTestSplash(t, []string{"a", "b", "c"}, 1)

	assert.True(t, m.Visible())
	assert.Equal(t, 1, m.TipIndex())
	assert.Equal(t, "b", m.CurrentTip())
	assert.NotNil(t, m.Init())
	assert.NotNil(t, m.scheduleTip())
}

func TestBootSplashTickAdvancesAndWraps(t *testing.T) {
	m, _ := newTestSplash(t, []string{"a", "b", "c"}, 1)

	want := []int{2, 0, 1, 2}
	for _, idx := range want {
		_, cmd := m.Update(tipTickMsg{generation: m.generation})
		assert.NotNil(t, cmd, "a live tick reschedules")
		assert.Equal(t, idx, m.TipIndex())
	}
}

func TestBootSplashHideStopsRotation(t *testing.T) {
	m, _ := newTestSplash(t, []string{"a", "b", "c"}, 0)
	pending := tipTickMsg{generation: m.generation}

	_, cmd := m.Update(SetVisibleMsg{Visible: false})
	assert.Nil(t, cmd)
	assert.False(t, m.Visible())
	assert.Empty(t, m.View())

	// the tick scheduled before hiding arrives late
	_, cmd = m.Update(pending)
	assert.Nil(t, cmd, "a stale tick is not rescheduled")
	assert.Equal(t, 0, m.TipIndex())
}

func TestBootSplashShowKeepsIndex(t *testing.T) {
	m, _ := newTestSplash(t, []string{"a", "b", "c"}, 0)

	m.Update(tipTickMsg{generation: m.generation})
	require.Equal(t, 1, m.TipIndex())

	stale := tipTickMsg{generation: m.generation}
	m.Update(SetVisibleMsg{Visible: false})
	_, cmd := m.Update(SetVisibleMsg{Visible: true})
	assert.NotNil(t, cmd, "showing again restarts the timer")
	assert.Equal(t, 1, m.TipIndex())

	m.Update(stale)
	assert.Equal(t, 1, m.TipIndex(), "ticks from before the hide stay dead")

	m.Update(tipTickMsg{generation: m.generation})
	assert.Equal(t, 2, m.TipIndex())
}

func TestBootSplashRepeatedVisibilityIsNoop(t *testing.T) {
	m, _ := newTestSplash(t, []string{"a", "b"}, 0)
	gen := m.generation

	_, cmd := m.Update(SetVisibleMsg{Visible: true})
	assert.Nil(t, cmd)
	assert.Equal(t, gen, m.generation)
}

func TestBootSplashStartsHidden(t *testing.T) {
	m, _ := newTestSplash(t, []string{"a", "b"}, 0, WithVisible(false))

	assert.Nil(t, m.scheduleTip())
	_, cmd := m.Update(tipTickMsg{generation: m.generation})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.TipIndex())
}

func TestBootSplashEmptyTips(t *testing.T) {
	m, _ := newTestSplash(t, nil, 0)

	assert.Nil(t, m.scheduleTip())
	_, cmd := m.Update(tipTickMsg{generation: m.generation})
	assert.Nil(t, cmd)
	assert.Equal(t, "", m.CurrentTip())

	view := m.View()
	assert.Contains(t, view, "Booting...")
}

func TestBootSplashBootCompleted(t *testing.T) {
	completed := 0
	m, _ := newTestSplash(t, []string{"a"}, 0, WithBootCompleted(func() { completed++ }))

	_, cmd := m.Update(BootCompletedMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 1, completed)
	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestBootSplashQuitKeys(t *testing.T) {
	m, _ := newTestSplash(t, []string{"a"}, 0)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(frameMsg{at: time.Now()})
	assert.Nil(t, cmd, "frames stop after quitting")
}

func TestBootSplashFramesContinue(t *testing.T) {
	m, clock := newTestSplash(t, []string{"a"}, 0)

	clock.Advance(time.Second)
	_, cmd := m.Update(frameMsg{at: clock.Now()})
	assert.NotNil(t, cmd)
	assert.Equal(t, clock.Now(), m.frameAt)
}

func TestBootSplashView(t *testing.T) {
	m, clock := newTestSplash(t, []string{"Use the gear icon to tweak settings."}, 0)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	clock.Advance(2 * time.Second)
	m.Update(frameMsg{at: clock.Now()})

	view := m.View()
	assert.Contains(t, view, "Booting...")
	assert.Contains(t, view, "Use the gear icon to tweak settings.")
}

func TestBootSplashCustomInterval(t *testing.T) {
	m, _ := newTestSplash(t, []string{"a"}, 0, WithInterval(time.Second))
	assert.Equal(t, time.Second, m.interval)

	m, _ = newTestSplash(t, []string{"a"}, 0, WithInterval(0))
	assert.Equal(t, tips.DefaultInterval, m.interval)
}
