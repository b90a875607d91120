package session

import (
	"encoding/json"
	"slices"

	"github.com/zhubert/boxpad/internal/directory"
)

// Status is the loading state of one section.
type Status struct {
	Loading bool
	Err     error
}

// Failed reports whether the last load ended in an error.
func (s Status) Failed() bool {
	return !s.Loading && s.Err != nil
}

func (s Status) MarshalJSON() ([]byte, error) {
	out := struct {
		Loading bool   `json:"loading"`
		Error   string `json:"error,omitempty"`
	}{Loading: s.Loading}
	if s.Err != nil {
		out.Error = s.Err.Error()
	}
	return json.Marshal(out)
}

// Snapshot is a read-only copy of the session for rendering. Messages and
// Details are only present when they belong to SelectedChatID.
type Snapshot struct {
	SessionID      string       `json:"sessionId"`
	ViewMode       ViewMode     `json:"viewMode"`
	MenuFilter     MenuFilter   `json:"menuFilter"`
	SelectedChatID directory.ID `json:"selectedChatId,omitempty"`

	Chats       []directory.ChatSummary `json:"chats"`
	ChatsStatus Status                  `json:"chatsStatus"`

	Messages       []directory.Message `json:"messages"`
	MessagesStatus Status              `json:"messagesStatus"`

	Details       *directory.ContactDetails `json:"details"`
	DetailsStatus Status                    `json:"detailsStatus"`

	UsersExpanded bool                    `json:"usersExpanded"`
	Users         []directory.SidebarUser `json:"users"`
	UsersStatus   Status                  `json:"usersStatus"`

	ChannelsExpanded bool                       `json:"channelsExpanded"`
	Channels         []directory.SidebarChannel `json:"channels"`
	ChannelsStatus   Status                     `json:"channelsStatus"`
}

// Fatal returns the error that blocks the whole dashboard, if any.
func (s Snapshot) Fatal() error {
	return s.ChatsStatus.Err
}

// SelectedChat returns the summary of the selected chat.
func (s Snapshot) SelectedChat() (directory.ChatSummary, bool) {
	for _, chat := range s.Chats {
		if chat.ID == s.SelectedChatID {
			return chat, true
		}
	}
	return directory.ChatSummary{}, false
}

// SelectedIndex returns the position of the selected chat, or -1.
func (s Snapshot) SelectedIndex() int {
	return slices.IndexFunc(s.Chats, func(c directory.ChatSummary) bool {
		return c.ID == s.SelectedChatID
	})
}

// Snapshot returns a deep copy of the current session state.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		SessionID:      c.id,
		ViewMode:       c.mode,
		MenuFilter:     c.filter,
		SelectedChatID: c.selected,

		Chats:       slices.Clone(c.chats),
		ChatsStatus: Status{Loading: c.chatsLoading, Err: c.chatsErr},

		UsersExpanded: c.users.expanded,
		Users:         slices.Clone(c.users.data),
		UsersStatus:   Status{Loading: c.users.loading, Err: c.users.err},

		ChannelsExpanded: c.channels.expanded,
		Channels:         slices.Clone(c.channels.data),
		ChannelsStatus:   Status{Loading: c.channels.loading, Err: c.channels.err},
	}

	if c.selected != "" {
		s.MessagesStatus.Loading = c.messages.loading
		s.DetailsStatus.Loading = c.details.loading
		if c.messages.chatID == c.selected && !c.messages.loading {
			s.Messages = slices.Clone(c.messages.data)
			s.MessagesStatus.Err = c.messages.err
		}
		if c.details.chatID == c.selected && !c.details.loading {
			s.DetailsStatus.Err = c.details.err
			if c.details.err == nil {
				details := c.details.data
				s.Details = &details
			}
		}
	}
	return s
}
