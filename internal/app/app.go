package app

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/boxpad/internal/config"
	"github.com/zhubert/boxpad/internal/directory"
	"github.com/zhubert/boxpad/internal/logger"
	"github.com/zhubert/boxpad/internal/session"
	"github.com/zhubert/boxpad/internal/ui"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string
	coord   *session.Coordinator
	log     *slog.Logger

	// ctx bounds every directory request; Quit cancels it.
	ctx    context.Context
	cancel context.CancelFunc

	header   *ui.Header
	footer   *ui.Footer
	sidebar  *ui.Sidebar
	chatList *ui.ChatList
	chat     *ui.Chat
	details  *ui.Details
	modal    *ui.Modal

	width  int
	height int

	// snap is the state last pushed to the components
	snap session.Snapshot

	// announced is set once a chat listing outcome was notified;
	// announcedFailure records which one.
	announced        bool
	announcedFailure bool
}

// FetchDoneMsg carries the outcome of one directory request back into Update
type FetchDoneMsg struct {
	Result session.Result
}

// New creates a new app model reading from client
func New(cfg *config.Config, client directory.Client, version string) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	} else {
		ui.SetTheme(ui.DefaultTheme)
	}

	ctx, cancel := context.WithCancel(context.Background())
	coord := session.New(client, session.Options{Limits: cfg.GetLimits()})

	m := &Model{
		config:   cfg,
		version:  version,
		coord:    coord,
		log:      logger.WithSession(coord.ID()).With("component", "app"),
		ctx:      ctx,
		cancel:   cancel,
		header:   ui.NewHeader(),
		footer:   ui.NewFooter(),
		sidebar:  ui.NewSidebar(),
		chatList: ui.NewChatList(),
		chat:     ui.NewChat(),
		details:  ui.NewDetails(),
		modal:    ui.NewModal(),
	}
	m.sync()
	return m
}

// Coordinator returns the session coordinator behind the model
func (m *Model) Coordinator() *session.Coordinator {
	return m.coord
}

// Snapshot returns the state last rendered
func (m *Model) Snapshot() session.Snapshot {
	return m.snap
}

// Init mounts the session and starts the initial chat listing
func (m *Model) Init() tea.Cmd {
	fetches := m.coord.Mount()
	m.announced = false
	m.sync()
	m.log.Info("dashboard mounted", "version", m.version)
	return m.runFetches(fetches)
}

// Shutdown cancels in-flight directory requests
func (m *Model) Shutdown() {
	m.cancel()
}

// runFetches turns fetches into commands that report back as FetchDoneMsg
func (m *Model) runFetches(fetches []session.Fetch) tea.Cmd {
	if len(fetches) == 0 {
		return nil
	}
	ctx := m.ctx
	cmds := make([]tea.Cmd, len(fetches))
	for i, f := range fetches {
		cmds[i] = func() tea.Msg {
			return FetchDoneMsg{Result: f.Run(ctx)}
		}
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case FetchDoneMsg:
		return m.handleFetchDone(msg)

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
			return m, nil
		}
		return m, ui.FlashTick()

	case tea.KeyPressMsg:
		if m.modal.IsVisible() {
			return m.handleModalKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	}

	return m, nil
}

// sync pushes the coordinator state into every component
func (m *Model) sync() {
	m.snap = m.coord.Snapshot()
	snap := m.snap

	m.sidebar.SetSnapshot(snap)
	m.chatList.SetSnapshot(snap)
	m.chat.SetSnapshot(snap)
	m.details.SetSnapshot(snap)

	m.header.SetFilter(snap.MenuFilter.Label())
	m.header.SetOffline(snap.Fatal() != nil)
	if chat, ok := snap.SelectedChat(); ok {
		m.header.SetChatName(chat.DisplayName)
	} else {
		m.header.SetChatName("")
	}

	m.updateFocus()
}

// updateFocus highlights the panel the keys act on
func (m *Model) updateFocus() {
	mode := m.snap.ViewMode
	narrow := ui.GetViewContext().IsNarrow()

	m.sidebar.SetFocused(narrow && mode == session.ViewNone)
	m.chatList.SetFocused(mode == session.ViewList || (!narrow && mode != session.ViewChat))
	m.chat.SetFocused(mode == session.ViewChat)
}
