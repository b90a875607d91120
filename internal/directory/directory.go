// Package directory is the read-only client for the external user/message
// directory that stands in for a real inbox backend.
//
// Every call maps one external record shape onto one internal record shape.
// The mapping only renames and truncates; it holds no business logic, so the
// backend can be swapped by providing another Client.
package directory

import "context"

// ID identifies a chat, user or channel. It is opaque to callers.
type ID string

// Color is a hex colour such as "#7c3aed".
type Color string

// Palette is the fixed set of avatar colours assigned to chats by position.
var Palette = []Color{
	"#7c3aed",
	"#8b5cf6",
	"#f59e0b",
	"#3b82f6",
	"#ef4444",
	"#eab308",
	"#ec4899",
	"#6366f1",
}

// SidebarPalette colours sidebar users by their numeric id.
var SidebarPalette = Palette[:5]

// AvatarColor returns the palette colour for the chat at position i.
// It is a pure function of position, so re-running the same listing yields
// identical colours.
func AvatarColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// SenderRole says who wrote a message.
type SenderRole int

const (
	SenderOther SenderRole = iota
	SenderSelf
)

func (r SenderRole) String() string {
	if r == SenderSelf {
		return "You"
	}
	return "Other"
}

// ChatSummary is one row of the chat list.
type ChatSummary struct {
	ID           ID     `json:"id"`
	DisplayName  string `json:"displayName"`
	PreviewText  string `json:"previewText"`
	DisplayTime  string `json:"displayTime"`
	AvatarGlyph  string `json:"avatarGlyph"`
	AvatarColor  Color  `json:"avatarColor"`
	Unread       bool   `json:"unread"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Username     string `json:"username"`
}

// Message is one bubble of a chat transcript.
type Message struct {
	ID          ID         `json:"id"`
	Sender      SenderRole `json:"sender"`
	Body        string     `json:"body"`
	DisplayTime string     `json:"displayTime"`
}

// IsSelf reports whether the message was sent by the local user.
func (m Message) IsSelf() bool {
	return m.Sender == SenderSelf
}

// ContactDetails is the contact panel for the selected chat.
type ContactDetails struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`
	Website     string `json:"website"`
	Username    string `json:"username"`
}

// SidebarUser is an entry of the sidebar "Users" section.
type SidebarUser struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	AvatarGlyph string `json:"avatarGlyph"`
	AvatarColor Color  `json:"avatarColor"`
}

// SidebarChannel is an entry of the sidebar "Channels" section.
type SidebarChannel struct {
	ID     ID     `json:"id"`
	Title  string `json:"title"`
	UserID ID     `json:"userId"`
}

// Client is the read-only directory contract. Implementations must be safe
// for concurrent use; calls are independent and may resolve in any order.
type Client interface {
	ListChats(ctx context.Context, limit int) ([]ChatSummary, error)
	ListMessages(ctx context.Context, chatID ID, limit int) ([]Message, error)
	GetContactDetails(ctx context.Context, chatID ID) (ContactDetails, error)
	ListSidebarUsers(ctx context.Context, limit int) ([]SidebarUser, error)
	ListSidebarChannels(ctx context.Context, limit int) ([]SidebarChannel, error)
}
