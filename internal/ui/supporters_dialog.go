package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gamenative/gamenative-tui/internal/logger"
	"github.com/gamenative/gamenative-tui/internal/supporters"
	"github.com/gamenative/gamenative-tui/internal/ui/components"
	"github.com/google/uuid"
)

const (
	dialogTitle    = "Hall of Fame"
	loadingText    = "Loading…"
	closeLabel     = "[ Close ]"
	maxDialogWidth = 60
	// border, padding, title, gap, button rows
	dialogChromeHeight = 9
)

// SupportersDialog fetches the supporter list once when it is opened and
// shows members and one-off supporters
type SupportersDialog struct {
	fetcher   supporters.Fetcher
	log       *logger.Logger
	onDismiss func()

	ctx        context.Context
	cancel     context.CancelFunc
	activation string
	started    bool

	records     []supporters.Record
	partitioned supporters.Partitioned
	loading     bool
	list        *components.List

	width     int
	height    int
	dismissed bool
}

// DialogOption customizes a SupportersDialog
type DialogOption func(*SupportersDialog)

// WithDismiss registers a callback invoked when the dialog is closed
func WithDismiss(fn func()) DialogOption {
	return func(m *SupportersDialog) { m.onDismiss = fn }
}

// WithDialogLogger sets the logger used for fetch failures
func WithDialogLogger(log *logger.Logger) DialogOption {
	return func(m *SupportersDialog) { m.log = log.WithComponent("hall-of-fame") }
}

// NewSupportersDialog creates an activated dialog. It is loading until the
// fetch issued by Init resolves.
func NewSupportersDialog(fetcher supporters.Fetcher, opts ...DialogOption) *SupportersDialog {
	ctx, cancel := context.WithCancel(context.Background())

	m := &SupportersDialog{
		fetcher:    fetcher,
		log:        logger.Discard(),
		ctx:        ctx,
		cancel:     cancel,
		activation: uuid.NewString(),
		loading:    true,
		width:      80,
		height:     24,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.list = components.NewList(m.contentWidth(), m.listHeight())
	return m
}

// Init starts the one fetch of this activation
func (m *SupportersDialog) Init() tea.Cmd {
	if m.started {
		return nil
	}
	m.started = true

	m.log.DebugWithFields("fetching supporters", []logger.Field{logger.F("activation", m.activation)})
	return CreateFetchCommand(m.ctx, m.fetcher, m.activation)
}

// Update handles messages
func (m *SupportersDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.contentWidth(), m.listHeight())

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case supportersLoadedMsg:
		m.handleLoaded(msg)

	case supportersFailedMsg:
		m.handleFailed(msg)
	}

	return m, nil
}

func (m *SupportersDialog) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q", "ctrl+c":
		return m, m.dismiss()
	case "up", "k":
		m.list.ScrollUp()
	case "down", "j":
		m.list.ScrollDown()
	case "pgup":
		m.list.PageUp()
	case "pgdown", " ":
		m.list.PageDown()
	case "home", "g":
		m.list.Top()
	case "end", "G":
		m.list.Bottom()
	}
	return m, nil
}

// handleLoaded assigns the fetch result; the partition is derived from the
// assigned records only, after loading has been cleared
func (m *SupportersDialog) handleLoaded(msg supportersLoadedMsg) {
	if msg.activation != m.activation || !m.loading {
		return
	}

	m.records = msg.records
	m.loading = false
	m.partitioned = supporters.Partition(m.records)
	m.list.SetLines(components.SupporterLines(m.partitioned))

	m.log.DebugWithFields("supporters loaded", []logger.Field{
		logger.F("activation", m.activation),
		logger.F("members", len(m.partitioned.Members)),
		logger.F("one_offs", len(m.partitioned.OneOffs)),
	})
}

// handleFailed records the failure. The dialog has no error state and keeps
// showing the loading text.
func (m *SupportersDialog) handleFailed(msg supportersFailedMsg) {
	if msg.activation != m.activation {
		return
	}
	m.log.WarnWithFields("failed to fetch supporters", []logger.Field{
		logger.F("activation", m.activation),
		logger.Error(msg.err),
	})
}

func (m *SupportersDialog) dismiss() tea.Cmd {
	if !m.dismissed {
		m.dismissed = true
		m.cancel()
		if m.onDismiss != nil {
			m.onDismiss()
		}
	}
	return tea.Quit
}

// Loading reports whether the fetch is still outstanding
func (m *SupportersDialog) Loading() bool { return m.loading }

// Partitioned returns the categorized supporters shown by the dialog
func (m *SupportersDialog) Partitioned() supporters.Partitioned { return m.partitioned }

// Dismissed reports whether the dialog has been closed
func (m *SupportersDialog) Dismissed() bool { return m.dismissed }

func (m *SupportersDialog) dialogWidth() int {
	return max(24, min(maxDialogWidth, m.width-4))
}

// contentWidth is the dialog width minus border and padding
func (m *SupportersDialog) contentWidth() int {
	return m.dialogWidth() - 6
}

func (m *SupportersDialog) listHeight() int {
	return max(3, m.height-dialogChromeHeight)
}

// View renders the dialog
func (m *SupportersDialog) View() string {
	if m.dismissed {
		return ""
	}

	styles := GetStyles()
	width := m.contentWidth()

	var body string
	if m.loading {
		body = styles.Body.Render(loadingText)
	} else {
		body = m.list.Render()
	}

	button := lipgloss.PlaceHorizontal(width, lipgloss.Right, styles.Button.Render(closeLabel))

	var b strings.Builder
	b.WriteString(styles.Title.Render(dialogTitle))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(button)

	dialog := styles.Dialog.Width(m.dialogWidth() - 2).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

// RunSupportersDialog runs the dialog as a full-screen program
func RunSupportersDialog(fetcher supporters.Fetcher, opts ...DialogOption) error {
	model := NewSupportersDialog(fetcher, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
