package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/boxpad/internal/directory"
	"github.com/zhubert/boxpad/internal/session"
)

// ChatList is the panel listing conversations.
type ChatList struct {
	width   int
	height  int
	focused bool

	chats    []directory.ChatSummary
	selected directory.ID
	status   session.Status

	// cursor is the highlighted row. It follows the selection except while
	// browsing the list on a narrow terminal.
	cursor       int
	scrollOffset int
}

// NewChatList creates a new chat list
func NewChatList() *ChatList {
	return &ChatList{}
}

// SetSize sets the panel dimensions
func (l *ChatList) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// SetFocused sets the focus state
func (l *ChatList) SetFocused(focused bool) {
	l.focused = focused
}

// SetSnapshot copies the chat listing out of snap. When the selection
// changed the cursor jumps to it.
func (l *ChatList) SetSnapshot(snap session.Snapshot) {
	changed := snap.SelectedChatID != l.selected
	l.chats = snap.Chats
	l.selected = snap.SelectedChatID
	l.status = snap.ChatsStatus

	if changed {
		if i := snap.SelectedIndex(); i >= 0 {
			l.cursor = i
		}
	}
	l.cursor = max(0, min(l.cursor, len(l.chats)-1))
}

// MoveCursor moves the highlighted row by delta, clamped to the list.
func (l *ChatList) MoveCursor(delta int) {
	if len(l.chats) == 0 {
		return
	}
	l.cursor = max(0, min(len(l.chats)-1, l.cursor+delta))
}

// CursorChat returns the id of the highlighted chat.
func (l *ChatList) CursorChat() (directory.ID, bool) {
	if l.cursor < 0 || l.cursor >= len(l.chats) {
		return "", false
	}
	return l.chats[l.cursor].ID, true
}

// renderRow renders one two-line entry of the list.
func (l *ChatList) renderRow(chat directory.ChatSummary, innerWidth int, highlighted bool) []string {
	avatar := AvatarStyle(string(chat.AvatarColor)).Render(chat.AvatarGlyph)
	avatarWidth := ansi.StringWidth(avatar)

	timeText := ChatTimeStyle.Render(chat.DisplayTime)
	nameWidth := innerWidth - avatarWidth - 1 - ansi.StringWidth(timeText) - 1
	name := runewidth.Truncate(chat.DisplayName, max(0, nameWidth), "…")
	gap := max(1, innerWidth-avatarWidth-1-runewidth.StringWidth(name)-ansi.StringWidth(timeText))

	first := avatar + " " + ChatNameStyle.Render(name) + strings.Repeat(" ", gap) + timeText

	indent := strings.Repeat(" ", avatarWidth+1)
	preview := runewidth.Truncate(chat.PreviewText, max(0, innerWidth-avatarWidth-1), "…")
	second := indent + ChatPreviewStyle.Render(preview)

	style := ChatRowStyle
	if highlighted {
		style = ChatRowSelectedStyle
	}
	return []string{
		style.Width(innerWidth).Render(ansi.Truncate(first, innerWidth, "")),
		style.Width(innerWidth).Render(ansi.Truncate(second, innerWidth, "")),
	}
}

func skeletonRows(innerWidth, n int) []string {
	var lines []string
	for i := range n {
		bar := max(4, innerWidth-6-(i%3)*4)
		lines = append(lines,
			SkeletonStyle.Render("██ "+strings.Repeat("▆", bar/2)),
			SkeletonStyle.Render("   "+strings.Repeat("▂", bar)),
		)
	}
	return lines
}

func (l *ChatList) lines(innerWidth, visible int) []string {
	title := PanelTitleStyle.Render("Chats")

	switch {
	case l.status.Loading:
		return append([]string{title}, skeletonRows(innerWidth, SkeletonChatRows)...)
	case l.status.Err != nil:
		return []string{
			title,
			BannerStyle.Width(innerWidth).Render("Directory unavailable"),
			StatusEmptyStyle.Render("press r to retry"),
		}
	case len(l.chats) == 0:
		return []string{title, StatusEmptyStyle.Render("No conversations")}
	}

	var rows []string
	cursorLine := 0
	for i, chat := range l.chats {
		if i == l.cursor {
			cursorLine = len(rows)
		}
		rows = append(rows, l.renderRow(chat, innerWidth, i == l.cursor)...)
	}

	// Keep the cursor row visible
	rowsHeight := max(ChatRowHeight, visible-TitleHeight)
	if cursorLine < l.scrollOffset {
		l.scrollOffset = cursorLine
	} else if cursorLine+ChatRowHeight > l.scrollOffset+rowsHeight {
		l.scrollOffset = cursorLine + ChatRowHeight - rowsHeight
	}
	l.scrollOffset = max(0, min(l.scrollOffset, max(0, len(rows)-rowsHeight)))

	rows = rows[l.scrollOffset:]
	if len(rows) > rowsHeight {
		rows = rows[:rowsHeight]
	}
	return append([]string{title}, rows...)
}

// View renders the chat list
func (l *ChatList) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if l.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(l.width)
	innerHeight := ctx.InnerHeight(l.height)

	lines := l.lines(innerWidth, innerHeight)
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	return style.Width(l.width).Height(l.height).Render(strings.Join(lines, "\n"))
}
