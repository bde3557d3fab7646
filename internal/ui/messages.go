package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gamenative/gamenative-tui/internal/supporters"
	"github.com/gamenative/gamenative-tui/internal/ui/anim"
)

// Messages shared across UI models

type supportersLoadedMsg struct {
	activation string
	records    []supporters.Record
}

type supportersFailedMsg struct {
	activation string
	err        error
}

// tipTickMsg advances the splash tip. Ticks from an older generation are
// stale and ignored.
type tipTickMsg struct {
	generation int
}

type frameMsg struct {
	at time.Time
}

// SetVisibleMsg shows or hides the boot splash
type SetVisibleMsg struct {
	Visible bool
}

// BootCompletedMsg tells the boot splash that the container is up
type BootCompletedMsg struct{}

// CreateFetchCommand creates a tea command that fetches the supporter list
// on a background goroutine and reports back to the update loop
func CreateFetchCommand(ctx context.Context, fetcher supporters.Fetcher, activation string) tea.Cmd {
	return func() tea.Msg {
		records, err := fetcher.FetchSupporters(ctx)
		if err != nil {
			return supportersFailedMsg{activation: activation, err: err}
		}
		return supportersLoadedMsg{activation: activation, records: records}
	}
}

func tipTick(interval time.Duration, generation int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tipTickMsg{generation: generation}
	})
}

func frameTick() tea.Cmd {
	return tea.Tick(anim.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg{at: t}
	})
}
