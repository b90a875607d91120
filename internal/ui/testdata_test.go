package ui

import (
	"errors"

	"github.com/zhubert/boxpad/internal/directory"
	"github.com/zhubert/boxpad/internal/session"
)

var errBoom = errors.New("boom")

// loadedSnapshot returns a snapshot with two chats and the first one open.
func loadedSnapshot() session.Snapshot {
	return session.Snapshot{
		SessionID:      "test",
		ViewMode:       session.ViewChat,
		MenuFilter:     session.FilterMyInbox,
		SelectedChatID: "1",
		Chats: []directory.ChatSummary{
			{ID: "1", DisplayName: "Leanne Graham", PreviewText: "sunt aut facere", DisplayTime: "01:10", AvatarGlyph: "L", AvatarColor: directory.Palette[1]},
			{ID: "2", DisplayName: "Ervin Howell", PreviewText: "qui est esse", DisplayTime: "02:20", AvatarGlyph: "E", AvatarColor: directory.Palette[2]},
		},
		Messages: []directory.Message{
			{ID: "1", Sender: directory.SenderOther, Body: "hello from leanne", DisplayTime: "1:05"},
			{ID: "2", Sender: directory.SenderSelf, Body: "hi back", DisplayTime: "2:10"},
		},
		Details: &directory.ContactDetails{
			FirstName:   "Leanne",
			LastName:    "Graham",
			Email:       "Bret@hildegard.org",
			Phone:       "1-770-736-8031 x56442",
			CompanyName: "Romaguera-Crona",
			Website:     "hildegard.org",
			Username:    "Bret",
		},
	}
}
