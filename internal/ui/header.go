package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// appTitle is shown at the left edge of the navbar
const appTitle = " boxpad"

// Header is the top navbar
type Header struct {
	width    int
	filter   string
	chatName string
	offline  bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetFilter sets the active inbox menu label
func (h *Header) SetFilter(label string) {
	h.filter = label
}

// SetChatName sets the name of the open conversation
func (h *Header) SetChatName(name string) {
	h.chatName = name
}

// SetOffline marks the directory as unreachable
func (h *Header) SetOffline(offline bool) {
	h.offline = offline
}

// View renders the header
func (h *Header) View() string {
	left := appTitle
	if h.filter != "" {
		left += " · " + h.filter
	}

	var right string
	switch {
	case h.offline:
		right = "offline "
	case h.chatName != "":
		right = h.chatName + " "
	}

	padding := h.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if padding < 1 && right != "" {
		// Drop the conversation name before squeezing the title
		right = runewidth.Truncate(right, max(0, h.width-runewidth.StringWidth(left)-1), "…")
		padding = h.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	}
	padding = max(0, padding)

	return h.renderGradient(left+strings.Repeat(" ", padding)+right, len([]rune(left)))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content over a background fading from the theme's
// primary color into the main background. Runes before titleEnd are bold.
func (h *Header) renderGradient(content string, titleEnd int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	accent := lipgloss.Color(theme.Warning)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(i < titleEnd)

		if h.offline && i >= titleEnd {
			style = style.Foreground(accent)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
