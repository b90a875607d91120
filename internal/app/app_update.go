package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/boxpad/internal/keys"
	"github.com/zhubert/boxpad/internal/ui"
)

// handleKey dispatches a key press outside of modals
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if result, cmd, ok := m.ExecuteShortcut(key); ok {
		return result, cmd
	}

	// Whatever the registry doesn't claim scrolls the transcript
	switch key {
	case keys.PgUp, keys.PgDown, keys.Home, keys.End, keys.CtrlU, keys.CtrlD:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleModalKey routes a key press to the visible modal
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		return shortcutQuit(m)
	}

	switch state := m.modal.State.(type) {
	case *ui.HelpState:
		if key == keys.Escape && !state.IsFiltering() {
			m.modal.Hide()
			return m, nil
		}

	case *ui.ThemeState:
		switch key {
		case keys.Escape:
			m.modal.Hide()
			return m, nil
		case keys.Enter:
			return m.applyTheme(state.Selected())
		}

	case *ui.SearchState:
		switch key {
		case keys.Escape:
			m.modal.Hide()
			return m, nil
		case keys.Enter:
			id, ok := state.Selected()
			if !ok {
				m.modal.SetError("No conversation matches")
				return m, nil
			}
			m.modal.Hide()
			return m.afterSelect(m.coord.SelectChat(id))
		}
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

// applyTheme switches the theme and persists it when the config has a file
func (m *Model) applyTheme(name ui.ThemeName) (tea.Model, tea.Cmd) {
	m.modal.Hide()
	if name == ui.CurrentThemeName() {
		return m, nil
	}

	ui.SetTheme(name)
	m.config.SetTheme(string(name))
	m.chat.Refresh()

	if m.config.FilePath() == "" {
		return m, m.ShowFlashInfo("Theme: " + ui.GetTheme(name).Name)
	}
	if err := m.config.Save(); err != nil {
		m.log.Warn("failed to save theme", "error", err)
		return m, m.ShowFlashError("Theme applied but not saved")
	}
	return m, m.ShowFlashSuccess("Theme: " + ui.GetTheme(name).Name)
}
