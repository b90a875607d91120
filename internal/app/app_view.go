package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/boxpad/internal/session"
	"github.com/zhubert/boxpad/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for the snapshot command and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	m.updateFooterContext()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.panelsView(),
		m.footer.View(),
	)
}

// panelsView lays out the content area: every panel side by side on wide
// terminals, the panel picked by the view mode on narrow ones.
func (m *Model) panelsView() string {
	if !ui.GetViewContext().IsNarrow() {
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.sidebar.View(),
			m.chatList.View(),
			m.chat.View(),
			m.details.View(),
		)
	}

	switch m.snap.ViewMode {
	case session.ViewList:
		return m.chatList.View()
	case session.ViewChat:
		return m.chat.View()
	default:
		return m.sidebar.View()
	}
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	m.footer.SetContext(ui.GetViewContext().IsNarrow(), m.snap.ViewMode, m.snap.Fatal() != nil)
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	m.chatList.SetSize(ctx.ChatListWidth, ctx.ContentHeight)
	m.chat.SetSize(ctx.ChatWidth, ctx.ContentHeight)
	m.details.SetSize(ctx.DetailsWidth, ctx.ContentHeight)

	m.updateFocus()
}
