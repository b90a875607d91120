package directory

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rivo/uniseg"
)

// MaxBodyRunes is the length message bodies are truncated to.
const MaxBodyRunes = 100

// channelTitleWords is how many words of a post title make a channel name.
const channelTitleWords = 3

// Wire shapes of the JSONPlaceholder-style directory.

type wireCompany struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
}

type wireUser struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Website  string      `json:"website"`
	Company  wireCompany `json:"company"`
}

type wireComment struct {
	ID     int    `json:"id"`
	PostID int    `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

type wirePost struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
}

// bodyPolicy strips every tag from remote text before it reaches the terminal.
var bodyPolicy = bluemonday.StrictPolicy()

func idOf(n int) ID {
	return ID(strconv.Itoa(n))
}

// glyph returns the first user-perceived character of name.
func glyph(name string) string {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(strings.TrimSpace(name), -1)
	return cluster
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// plainText removes markup and collapses whitespace the way a browser would
// render the body.
func plainText(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(bodyPolicy.Sanitize(s))), " ")
}

// chatTime renders the display time of the chat at position i.
func chatTime(i int) string {
	minutes := "00"
	if i > 0 {
		minutes = strconv.Itoa(i * 10)
	}
	return fmt.Sprintf("%d:%s", 20+i, minutes)
}

// messageTime renders the display time of the message at position i.
func messageTime(i int) string {
	return fmt.Sprintf("%d:%02d", 23-(i%5), i*10)
}

func limitSlice[T any](items []T, limit int) []T {
	if limit >= 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func mapChats(users []wireUser, limit int) []ChatSummary {
	users = limitSlice(users, limit)
	chats := make([]ChatSummary, len(users))
	for i, u := range users {
		chats[i] = ChatSummary{
			ID:           idOf(u.ID),
			DisplayName:  u.Name,
			PreviewText:  u.Company.CatchPhrase,
			DisplayTime:  chatTime(i),
			AvatarGlyph:  glyph(u.Name),
			AvatarColor:  AvatarColor(i),
			Unread:       false,
			ContactEmail: u.Email,
			ContactPhone: u.Phone,
			Username:     u.Username,
		}
	}
	return chats
}

func mapMessages(comments []wireComment, limit int) []Message {
	comments = limitSlice(comments, limit)
	messages := make([]Message, len(comments))
	for i, c := range comments {
		sender := SenderOther
		if i%2 != 0 {
			sender = SenderSelf
		}
		messages[i] = Message{
			ID:          idOf(c.ID),
			Sender:      sender,
			Body:        plainText(truncateRunes(c.Body, MaxBodyRunes)),
			DisplayTime: messageTime(i),
		}
	}
	return messages
}

func mapContact(u wireUser) ContactDetails {
	parts := strings.Split(u.Name, " ")
	details := ContactDetails{
		FirstName:   parts[0],
		Email:       u.Email,
		Phone:       u.Phone,
		CompanyName: u.Company.Name,
		Website:     u.Website,
		Username:    u.Username,
	}
	if len(parts) > 1 {
		details.LastName = parts[1]
	}
	return details
}

func mapSidebarUsers(users []wireUser, limit int) []SidebarUser {
	users = limitSlice(users, limit)
	out := make([]SidebarUser, len(users))
	for i, u := range users {
		idx := u.ID % len(SidebarPalette)
		if idx < 0 {
			idx = -idx
		}
		out[i] = SidebarUser{
			ID:          idOf(u.ID),
			Name:        u.Name,
			Username:    u.Username,
			AvatarGlyph: glyph(u.Name),
			AvatarColor: SidebarPalette[idx],
		}
	}
	return out
}

func mapChannels(posts []wirePost, limit int) []SidebarChannel {
	posts = limitSlice(posts, limit)
	out := make([]SidebarChannel, len(posts))
	for i, p := range posts {
		words := strings.Split(p.Title, " ")
		if len(words) > channelTitleWords {
			words = words[:channelTitleWords]
		}
		out[i] = SidebarChannel{
			ID:     idOf(p.ID),
			Title:  strings.Join(words, " "),
			UserID: idOf(p.UserID),
		}
	}
	return out
}
