package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/boxpad/internal/clipboard"
	"github.com/zhubert/boxpad/internal/keys"
	"github.com/zhubert/boxpad/internal/session"
	"github.com/zhubert/boxpad/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for the dashboard's shortcuts.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "j", "enter")
	DisplayKey  string                              // Display name in help; defaults to Key
	Aliases     []string                            // Other keys that trigger the same handler
	Description string                              // Human-readable description
	Category    string                              // Section for help modal grouping
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional guard
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryInbox      = "Inbox"
	CategoryContact    = "Contact"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryInbox,
	CategoryContact,
	CategoryGeneral,
}

// ShortcutRegistry lists every dashboard shortcut. Entries appear in the help
// modal when their guard passes.
var ShortcutRegistry []Shortcut

func init() {
	// Assigned in init because shortcutHelp reads the registry
	ShortcutRegistry = []Shortcut{
		{
			Key:         keys.Next,
			DisplayKey:  "j/↓",
			Aliases:     []string{keys.Down},
			Description: "Next chat",
			Category:    CategoryNavigation,
			Handler:     shortcutNext,
		},
		{
			Key:         keys.Previous,
			DisplayKey:  "k/↑",
			Aliases:     []string{keys.Up},
			Description: "Previous chat",
			Category:    CategoryNavigation,
			Handler:     shortcutPrevious,
		},
		{
			Key:         keys.Enter,
			Description: "Open highlighted chat",
			Category:    CategoryNavigation,
			Handler:     shortcutOpen,
			Condition:   chatsLoaded,
		},
		{
			Key:         keys.OpenList,
			Description: "Show chat list",
			Category:    CategoryNavigation,
			Handler:     shortcutOpenList,
			Condition:   func(m *Model) bool { return m.snap.ViewMode == session.ViewNone },
		},
		{
			Key:         keys.Escape,
			DisplayKey:  "esc",
			Aliases:     []string{keys.Backspace},
			Description: "Back",
			Category:    CategoryNavigation,
			Handler:     shortcutBack,
			Condition:   func(m *Model) bool { return m.snap.ViewMode != session.ViewNone },
		},
		{
			Key:         keys.Search,
			Description: "Find conversation",
			Category:    CategoryNavigation,
			Handler:     shortcutSearch,
			Condition:   chatsLoaded,
		},
		{
			Key:         keys.FilterMine,
			Description: "My Inbox",
			Category:    CategoryInbox,
			Handler:     func(m *Model) (tea.Model, tea.Cmd) { return setFilter(m, session.FilterMyInbox) },
		},
		{
			Key:         keys.FilterAll,
			Description: "All",
			Category:    CategoryInbox,
			Handler:     func(m *Model) (tea.Model, tea.Cmd) { return setFilter(m, session.FilterAll) },
		},
		{
			Key:         keys.FilterNone,
			Description: "Unassigned",
			Category:    CategoryInbox,
			Handler:     func(m *Model) (tea.Model, tea.Cmd) { return setFilter(m, session.FilterUnassigned) },
		},
		{
			Key:         keys.ToggleUsers,
			Description: "Expand/collapse users",
			Category:    CategoryInbox,
			Handler:     shortcutToggleUsers,
		},
		{
			Key:         keys.ToggleChannel,
			Description: "Expand/collapse channels",
			Category:    CategoryInbox,
			Handler:     shortcutToggleChannels,
		},
		{
			Key:         keys.Retry,
			Description: "Retry loading chats",
			Category:    CategoryInbox,
			Handler:     shortcutRetry,
			Condition:   func(m *Model) bool { return m.snap.ChatsStatus.Failed() },
		},
		{
			Key:         keys.CopyEmail,
			Description: "Copy contact email",
			Category:    CategoryContact,
			Handler:     func(m *Model) (tea.Model, tea.Cmd) { return copyContactField(m, "email") },
			Condition:   hasSelection,
		},
		{
			Key:         keys.CopyPhone,
			Description: "Copy contact phone",
			Category:    CategoryContact,
			Handler:     func(m *Model) (tea.Model, tea.Cmd) { return copyContactField(m, "phone") },
			Condition:   hasSelection,
		},
		{
			Key:         keys.Theme,
			Description: "Change theme",
			Category:    CategoryGeneral,
			Handler:     shortcutTheme,
		},
		{
			Key:         keys.Help,
			Description: "Show this help",
			Category:    CategoryGeneral,
			Handler:     shortcutHelp,
		},
		{
			Key:         keys.Quit,
			DisplayKey:  "q/ctrl-c",
			Aliases:     []string{keys.CtrlC},
			Description: "Quit",
			Category:    CategoryGeneral,
			Handler:     shortcutQuit,
		},
	}
}

// displayOnlyShortcuts are handled by the transcript viewport, not the registry
var displayOnlyShortcuts = []Shortcut{
	{Key: "pgup/pgdown", Description: "Scroll conversation", Category: CategoryNavigation},
	{Key: "ctrl-u/ctrl-d", Description: "Half page up/down", Category: CategoryNavigation},
}

func chatsLoaded(m *Model) bool {
	return len(m.snap.Chats) > 0
}

func hasSelection(m *Model) bool {
	return m.snap.SelectedChatID != ""
}

func (s Shortcut) matches(key string) bool {
	if s.Key == key {
		return true
	}
	for _, alias := range s.Aliases {
		if alias == key {
			return true
		}
	}
	return false
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and its guard passed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	for _, s := range ShortcutRegistry {
		if !s.matches(key) {
			continue
		}
		if s.Condition != nil && !s.Condition(m) {
			m.log.Debug("shortcut guard failed", "key", key)
			return m, nil, false
		}
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// helpSections groups the applicable shortcuts for the help modal
func (m *Model) helpSections() []ui.HelpSection {
	categories := make(map[string][]ui.HelpShortcut)

	add := func(s Shortcut) {
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], ui.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}
	for _, s := range ShortcutRegistry {
		if s.Condition == nil || s.Condition(m) {
			add(s)
		}
	}
	for _, s := range displayOnlyShortcuts {
		add(s)
	}

	var sections []ui.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts := categories[cat]; len(shortcuts) > 0 {
			sections = append(sections, ui.HelpSection{Title: cat, Shortcuts: shortcuts})
		}
	}
	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

// browsingList reports whether j/k move the list cursor instead of the
// selection. On a narrow terminal the list is browsed before a chat is opened.
func (m *Model) browsingList() bool {
	return ui.GetViewContext().IsNarrow() && m.snap.ViewMode == session.ViewList
}

func shortcutNext(m *Model) (tea.Model, tea.Cmd) {
	return moveSelection(m, 1)
}

func shortcutPrevious(m *Model) (tea.Model, tea.Cmd) {
	return moveSelection(m, -1)
}

func moveSelection(m *Model, delta int) (tea.Model, tea.Cmd) {
	if m.browsingList() {
		m.chatList.MoveCursor(delta)
		return m, nil
	}
	if ui.GetViewContext().IsNarrow() && m.snap.ViewMode == session.ViewNone {
		return m, nil
	}

	var (
		fetches []session.Fetch
		err     error
	)
	if delta > 0 {
		fetches, err = m.coord.SelectNext()
	} else {
		fetches, err = m.coord.SelectPrevious()
	}
	return m.afterSelect(fetches, err)
}

func shortcutOpen(m *Model) (tea.Model, tea.Cmd) {
	id, ok := m.chatList.CursorChat()
	if !ok {
		return m, nil
	}
	return m.afterSelect(m.coord.SelectChat(id))
}

// afterSelect refreshes the components and starts the fetches of a selection
func (m *Model) afterSelect(fetches []session.Fetch, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.log.Debug("selection rejected", "error", err)
		return m, m.ShowFlashWarning(err.Error())
	}
	m.sync()
	return m, m.runFetches(fetches)
}

func shortcutOpenList(m *Model) (tea.Model, tea.Cmd) {
	m.coord.OpenChatList()
	m.sync()
	return m, nil
}

func shortcutBack(m *Model) (tea.Model, tea.Cmd) {
	switch m.snap.ViewMode {
	case session.ViewChat:
		m.coord.BackToList()
	case session.ViewList:
		m.coord.BackToNone()
	}
	m.sync()
	return m, nil
}

func shortcutSearch(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewSearchState(m.snap.Chats))
	return m, nil
}

func setFilter(m *Model, f session.MenuFilter) (tea.Model, tea.Cmd) {
	m.coord.SetMenuFilter(f)
	m.sync()
	return m, nil
}

func shortcutToggleUsers(m *Model) (tea.Model, tea.Cmd) {
	fetches := m.coord.ToggleUsers()
	m.sync()
	return m, m.runFetches(fetches)
}

func shortcutToggleChannels(m *Model) (tea.Model, tea.Cmd) {
	fetches := m.coord.ToggleChannels()
	m.sync()
	return m, m.runFetches(fetches)
}

func shortcutRetry(m *Model) (tea.Model, tea.Cmd) {
	fetches := m.coord.RetryChats()
	if len(fetches) == 0 {
		return m, nil
	}
	m.sync()
	return m, tea.Batch(m.runFetches(fetches), m.ShowFlashInfo("Retrying…"))
}

// copyContactField copies the selected contact's email or phone. The loaded
// contact details win over the copy carried in the chat summary.
func copyContactField(m *Model, field string) (tea.Model, tea.Cmd) {
	chat, _ := m.snap.SelectedChat()

	var value string
	switch field {
	case "email":
		value = chat.ContactEmail
		if m.snap.Details != nil && m.snap.Details.Email != "" {
			value = m.snap.Details.Email
		}
	case "phone":
		value = chat.ContactPhone
		if m.snap.Details != nil && m.snap.Details.Phone != "" {
			value = m.snap.Details.Phone
		}
	}

	if value == "" {
		return m, m.ShowFlashWarning("No " + field + " for this contact")
	}
	if err := clipboard.WriteText(value); err != nil {
		m.log.Warn("clipboard write failed", "field", field, "error", err)
		return m, m.ShowFlashError("Couldn't copy " + field)
	}
	return m, m.ShowFlashSuccess("Copied " + field + ": " + value)
}

func shortcutTheme(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewThemeState(ui.CurrentThemeName()))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewHelpState(m.helpSections()))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	m.log.Info("quitting")
	m.Shutdown()
	return m, tea.Quit
}
