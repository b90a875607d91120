package session

import "fmt"

// ViewMode decides which single panel is visible on narrow layouts.
type ViewMode int

const (
	ViewNone ViewMode = iota
	ViewList
	ViewChat
)

func (m ViewMode) String() string {
	switch m {
	case ViewList:
		return "list"
	case ViewChat:
		return "chat"
	default:
		return "none"
	}
}

func (m ViewMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Event is a gesture that may change the view mode.
type Event int

const (
	EventOpenList Event = iota
	EventSelectChat
	EventBackToList
	EventBackToNone
)

func (e Event) String() string {
	switch e {
	case EventOpenList:
		return "open-list"
	case EventSelectChat:
		return "select-chat"
	case EventBackToList:
		return "back-to-list"
	case EventBackToNone:
		return "back-to-none"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// Transition returns the view mode that follows mode on ev. Pairs that are
// not part of the table leave the mode unchanged.
func Transition(mode ViewMode, ev Event) ViewMode {
	switch ev {
	case EventOpenList:
		if mode == ViewNone || mode == ViewChat {
			return ViewList
		}
	case EventSelectChat:
		return ViewChat
	case EventBackToList:
		if mode == ViewChat {
			return ViewList
		}
	case EventBackToNone:
		if mode == ViewList {
			return ViewNone
		}
	}
	return mode
}

// MenuFilter is the active inbox menu entry in the sidebar.
type MenuFilter int

const (
	FilterMyInbox MenuFilter = iota
	FilterAll
	FilterUnassigned
)

// MenuFilters lists the filters in sidebar order.
var MenuFilters = []MenuFilter{FilterMyInbox, FilterAll, FilterUnassigned}

func (f MenuFilter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterUnassigned:
		return "unassigned"
	default:
		return "my-inbox"
	}
}

// Label is the menu text shown for f.
func (f MenuFilter) Label() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterUnassigned:
		return "Unassigned"
	default:
		return "My Inbox"
	}
}

func (f MenuFilter) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Section names a piece of session data that is loaded independently.
type Section int

const (
	SectionChats Section = iota
	SectionMessages
	SectionDetails
	SectionUsers
	SectionChannels
)

func (s Section) String() string {
	switch s {
	case SectionChats:
		return "chats"
	case SectionMessages:
		return "messages"
	case SectionDetails:
		return "details"
	case SectionUsers:
		return "users"
	case SectionChannels:
		return "channels"
	default:
		return fmt.Sprintf("section(%d)", int(s))
	}
}
