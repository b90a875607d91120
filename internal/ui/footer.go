package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/boxpad/internal/session"
)

// DefaultFlashDuration is how long a flash message stays in the footer
const DefaultFlashDuration = 3 * time.Second

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashMessage is a transient footer notice
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg is sent periodically while a flash message is visible
type FlashTickMsg time.Time

// FlashTick returns a command that checks flash expiry after a second
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	narrow       bool
	mode         session.ViewMode
	fatal        bool
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(narrow bool, mode session.ViewMode, fatal bool) {
	f.narrow = narrow
	f.mode = mode
	f.fatal = fatal
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for d
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is visible
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired removes an expired flash message and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// Bindings returns the shortcuts relevant in the current context
func (f *Footer) Bindings() []KeyBinding {
	switch {
	case f.fatal:
		return []KeyBinding{
			{Key: "r", Desc: "retry"},
			{Key: "q", Desc: "quit"},
		}
	case f.narrow && f.mode == session.ViewNone:
		return []KeyBinding{
			{Key: "m", Desc: "chats"},
			{Key: "u/c", Desc: "users/channels"},
			{Key: "1-3", Desc: "inbox"},
			{Key: "q", Desc: "quit"},
		}
	case f.narrow && f.mode == session.ViewList:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "move"},
			{Key: "enter", Desc: "open"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case f.narrow:
		return []KeyBinding{
			{Key: "esc", Desc: "back"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "y", Desc: "copy email"},
			{Key: "p", Desc: "copy phone"},
		}
	default:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "select"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "u/c", Desc: "users/channels"},
			{Key: "1-3", Desc: "inbox"},
			{Key: "y/p", Desc: "copy email/phone"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	}
}

func flashIcon(t FlashType) (string, lipgloss.Style) {
	switch t {
	case FlashError:
		return "✕", lipgloss.NewStyle().Foreground(ColorError)
	case FlashWarning:
		return "⚠", lipgloss.NewStyle().Foreground(ColorWarning)
	case FlashSuccess:
		return "✓", lipgloss.NewStyle().Foreground(ColorSuccess)
	default:
		return "ℹ", lipgloss.NewStyle().Foreground(ColorInfo)
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		icon, style := flashIcon(f.flashMessage.Type)
		return FooterStyle.Width(f.width).Render(style.Render(icon + " " + f.flashMessage.Text))
	}

	var parts []string
	for _, b := range f.Bindings() {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
