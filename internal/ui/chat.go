package ui

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/boxpad/internal/directory"
	"github.com/zhubert/boxpad/internal/session"
)

// Chat is the transcript panel of the selected conversation
type Chat struct {
	viewport viewport.Model
	width    int
	height   int
	focused  bool

	chatID   directory.ID
	chatName string
	messages []directory.Message
	status   session.Status
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{viewport: vp}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()
	innerWidth := ctx.InnerWidth(width)
	viewportHeight := max(1, ctx.InnerHeight(height)-TitleHeight)

	c.viewport.SetWidth(innerWidth)
	c.viewport.SetHeight(viewportHeight)
	c.updateContent()

	ctx.Log("Chat.SetSize", "outerWidth", width, "outerHeight", height,
		"viewportWidth", c.viewport.Width(), "viewportHeight", c.viewport.Height())
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetSnapshot copies the transcript of the selected chat out of snap
func (c *Chat) SetSnapshot(snap session.Snapshot) {
	changed := snap.SelectedChatID != c.chatID ||
		snap.MessagesStatus.Loading != c.status.Loading ||
		len(snap.Messages) != len(c.messages) ||
		(snap.MessagesStatus.Err == nil) != (c.status.Err == nil)

	c.chatID = snap.SelectedChatID
	c.chatName = ""
	if chat, ok := snap.SelectedChat(); ok {
		c.chatName = chat.DisplayName
	}
	c.messages = snap.Messages
	c.status = snap.MessagesStatus

	if changed {
		c.updateContent()
	}
}

// Refresh re-renders the transcript, e.g. after a theme change
func (c *Chat) Refresh() {
	c.updateContent()
}

func (c *Chat) wrapWidth() int {
	if w := c.viewport.Width(); w > 0 {
		return w
	}
	return DefaultWrapWidth
}

// renderBubble renders one message, outgoing ones aligned right.
func renderBubble(msg directory.Message, width int) string {
	maxBubble := max(10, width*BubbleMaxWidthPercent/100)

	style := BubbleOtherStyle
	align := lipgloss.Left
	if msg.IsSelf() {
		style = BubbleSelfStyle
		align = lipgloss.Right
	}

	bubbleWidth := min(maxBubble, lipgloss.Width(msg.Body)+style.GetHorizontalFrameSize())
	bubble := style.Width(bubbleWidth).Render(msg.Body)
	stamp := BubbleTimeStyle.Render(msg.DisplayTime)

	block := lipgloss.JoinVertical(align, bubble, stamp)
	return lipgloss.PlaceHorizontal(width, align, block)
}

func renderMessageSkeleton(width int) string {
	var parts []string
	for i := range SkeletonMessages {
		bar := SkeletonStyle.Render(strings.Repeat("▆", max(4, width/2-(i%2)*6)))
		align := lipgloss.Left
		if i%2 == 1 {
			align = lipgloss.Right
		}
		parts = append(parts, lipgloss.PlaceHorizontal(width, align, bar))
	}
	return strings.Join(parts, "\n\n")
}

func (c *Chat) updateContent() {
	width := c.wrapWidth()

	var content string
	switch {
	case c.chatID == "":
		content = StatusEmptyStyle.Render("Select a conversation to read it.")
	case c.status.Loading:
		content = renderMessageSkeleton(width)
	case c.status.Err != nil:
		content = StatusErrorStyle.Render("Couldn't load messages.") + "\n" +
			StatusEmptyStyle.Render("Press enter on the chat again to retry.")
	case len(c.messages) == 0:
		content = StatusEmptyStyle.Render("No messages yet.")
	default:
		parts := make([]string, len(c.messages))
		for i, msg := range c.messages {
			parts[i] = renderBubble(msg, width)
		}
		content = strings.Join(parts, "\n\n")
	}

	c.viewport.SetContent(content)
	c.viewport.GotoBottom()
}

// Update handles scrolling
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
		switch keyMsg.String() {
		case "pgup", "pgdown", "home", "end", "ctrl+u", "ctrl+d":
		default:
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	title := "Conversation"
	if c.chatName != "" {
		title = c.chatName
	}
	innerWidth := GetViewContext().InnerWidth(c.width)
	titleLine := PanelTitleStyle.Render(lipgloss.NewStyle().MaxWidth(innerWidth).Render(title))

	body := lipgloss.JoinVertical(lipgloss.Left, titleLine, c.viewport.View())
	return panelStyle.Width(c.width).Height(c.height).Render(body)
}
