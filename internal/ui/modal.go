package ui

import (
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/boxpad/internal/directory"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		ModalStyle.Render(content),
	)
}

// =============================================================================
// HelpState - keyboard shortcuts
// =============================================================================

// HelpShortcut is one row of the help modal
type HelpShortcut struct {
	Key  string
	Desc string
}

// HelpSection groups shortcuts under a heading
type HelpSection struct {
	Title     string
	Shortcuts []HelpShortcut
}

type helpShortcutItem struct {
	shortcut HelpShortcut
}

func (i helpShortcutItem) FilterValue() string {
	return i.shortcut.Key + " " + i.shortcut.Desc
}

// helpSectionItem is a heading row; it never matches a filter.
type helpSectionItem struct {
	title string
}

func (i helpSectionItem) FilterValue() string { return "" }

type helpDelegate struct{}

func (d helpDelegate) Height() int                             { return 1 }
func (d helpDelegate) Spacing() int                            { return 0 }
func (d helpDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d helpDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch i := item.(type) {
	case helpSectionItem:
		fmt.Fprint(w, lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).Render(i.title))

	case helpShortcutItem:
		keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Width(14)
		descStyle := lipgloss.NewStyle().Foreground(ColorText)
		prefix := "  "
		if index == m.Index() {
			keyStyle = keyStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
			descStyle = descStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
			prefix = "> "
		}
		fmt.Fprint(w, prefix+keyStyle.Render(i.shortcut.Key)+descStyle.Render(i.shortcut.Desc))
	}
}

// HelpState wraps a bubbles list.Model for the help modal.
type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	if s.list.SettingFilter() {
		return "Type to filter  Enter: apply  Esc: cancel"
	}
	return "/: filter  up/down: navigate  Esc: close"
}

func (s *HelpState) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		s.list.View(),
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// IsFiltering returns whether the user is currently typing in the filter.
func (s *HelpState) IsFiltering() bool {
	return s.list.SettingFilter()
}

// NewHelpState creates a HelpState listing sections in order.
func NewHelpState(sections []HelpSection) *HelpState {
	var items []list.Item
	for _, section := range sections {
		items = append(items, helpSectionItem{title: section.Title})
		for _, shortcut := range section.Shortcuts {
			items = append(items, helpShortcutItem{shortcut: shortcut})
		}
	}

	l := list.New(items, helpDelegate{}, ModalWidth-6, HelpModalMaxVisible)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)

	// Start on the first shortcut rather than a heading
	for i, item := range items {
		if _, ok := item.(helpShortcutItem); ok {
			l.Select(i)
			break
		}
	}

	return &HelpState{list: l}
}

// =============================================================================
// ThemeState - theme picker
// =============================================================================

// ThemeState lets the user pick one of the built-in themes.
type ThemeState struct {
	Themes   []ThemeName
	Index    int
	Original ThemeName
}

func (*ThemeState) modalState() {}

func (s *ThemeState) Title() string { return "Theme" }

func (s *ThemeState) Help() string { return "up/down: choose  Enter: apply  Esc: cancel" }

func (s *ThemeState) Render() string {
	var rows []string
	for i, name := range s.Themes {
		label := GetTheme(name).Name
		if name == s.Original {
			label += " (current)"
		}
		if i == s.Index {
			rows = append(rows, SidebarSelectedStyle.Render("> "+label))
		} else {
			rows = append(rows, SidebarItemStyle.Render("  "+label))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		strings.Join(rows, "\n"),
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *ThemeState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "up", "k":
			s.Index = max(0, s.Index-1)
		case "down", "j":
			s.Index = min(len(s.Themes)-1, s.Index+1)
		}
	}
	return s, nil
}

// Selected returns the highlighted theme
func (s *ThemeState) Selected() ThemeName {
	if s.Index < 0 || s.Index >= len(s.Themes) {
		return s.Original
	}
	return s.Themes[s.Index]
}

// NewThemeState creates a ThemeState with current highlighted
func NewThemeState(current ThemeName) *ThemeState {
	s := &ThemeState{Themes: ThemeNames(), Original: current}
	for i, name := range s.Themes {
		if name == current {
			s.Index = i
		}
	}
	return s
}

// =============================================================================
// SearchState - jump to a conversation by name
// =============================================================================

// SearchState filters the loaded chats by display name.
type SearchState struct {
	Input   textinput.Model
	chats   []directory.ChatSummary
	matches []directory.ChatSummary
	Index   int
}

func (*SearchState) modalState() {}

func (s *SearchState) Title() string { return "Find Conversation" }

func (s *SearchState) Help() string { return "Type to search  up/down: choose  Enter: open  Esc: cancel" }

func (s *SearchState) Render() string {
	var rows []string
	for i, chat := range s.matches {
		label := chat.DisplayName
		if i == s.Index {
			rows = append(rows, SidebarSelectedStyle.Render("> "+label))
		} else {
			rows = append(rows, SidebarItemStyle.Render("  "+label))
		}
	}
	if len(rows) == 0 {
		rows = append(rows, StatusEmptyStyle.Render("No matching conversations"))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		s.Input.View(),
		"",
		strings.Join(rows, "\n"),
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *SearchState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "up":
			s.Index = max(0, s.Index-1)
			return s, nil
		case "down":
			s.Index = max(0, min(len(s.matches)-1, s.Index+1))
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	s.refilter()
	return s, cmd
}

// refilter matches the query case-insensitively against display names.
func (s *SearchState) refilter() {
	query := strings.ToLower(strings.TrimSpace(s.Input.Value()))
	s.matches = s.matches[:0]
	for _, chat := range s.chats {
		if query == "" || strings.Contains(strings.ToLower(chat.DisplayName), query) {
			s.matches = append(s.matches, chat)
			if len(s.matches) == SearchMaxResults {
				break
			}
		}
	}
	s.Index = max(0, min(s.Index, len(s.matches)-1))
}

// Matches returns the chats currently listed
func (s *SearchState) Matches() []directory.ChatSummary {
	return s.matches
}

// Selected returns the id of the highlighted match
func (s *SearchState) Selected() (directory.ID, bool) {
	if s.Index < 0 || s.Index >= len(s.matches) {
		return "", false
	}
	return s.matches[s.Index].ID, true
}

// NewSearchState creates a SearchState over chats
func NewSearchState(chats []directory.ChatSummary) *SearchState {
	ti := textinput.New()
	ti.Placeholder = "name"
	ti.CharLimit = ModalInputCharLimit
	ti.SetWidth(ModalInputWidth)
	ti.Focus()

	s := &SearchState{Input: ti, chats: chats}
	s.refilter()
	return s
}
