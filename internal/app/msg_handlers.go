package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/boxpad/internal/notification"
	"github.com/zhubert/boxpad/internal/session"
)

// handleFetchDone applies a directory result and schedules its follow-ups
func (m *Model) handleFetchDone(msg FetchDoneMsg) (tea.Model, tea.Cmd) {
	r := msg.Result
	committed, next := m.coord.Apply(r)
	if !committed {
		m.log.Debug("result dropped", "section", r.Section, "chat", r.ChatID)
		return m, m.runFetches(next)
	}

	m.sync()
	cmds := []tea.Cmd{m.runFetches(next)}

	switch r.Section {
	case session.SectionChats:
		if r.Err != nil {
			cmds = append(cmds, m.ShowFlashError("Directory unavailable: "+r.Err.Error()))
		}
		cmds = append(cmds, m.announceInbox(r))
	case session.SectionUsers:
		if r.Err != nil {
			cmds = append(cmds, m.ShowFlashWarning("Couldn't load users"))
		}
	case session.SectionChannels:
		if r.Err != nil {
			cmds = append(cmds, m.ShowFlashWarning("Couldn't load channels"))
		}
	}

	return m, tea.Batch(cmds...)
}

// announceInbox sends a desktop notification for the first listing outcome
// of a mount and whenever the directory goes down or comes back.
func (m *Model) announceInbox(r session.Result) tea.Cmd {
	failed := r.Err != nil
	if m.announced && failed == m.announcedFailure {
		return nil
	}
	m.announced = true
	m.announcedFailure = failed

	if !m.config.GetNotificationsEnabled() {
		return nil
	}

	chats := len(r.Chats)
	return func() tea.Msg {
		if failed {
			_ = notification.DirectoryUnavailable()
		} else {
			_ = notification.InboxReady(chats)
		}
		return nil
	}
}
