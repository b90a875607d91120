package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/boxpad/internal/directory"
	"github.com/zhubert/boxpad/internal/session"
)

// Sidebar is the left navigation panel: the inbox menu followed by the
// collapsible users and channels rosters.
type Sidebar struct {
	width   int
	height  int
	focused bool

	filter session.MenuFilter

	usersExpanded bool
	users         []directory.SidebarUser
	usersStatus   session.Status

	channelsExpanded bool
	channels         []directory.SidebarChannel
	channelsStatus   session.Status
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	return &Sidebar{}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height

	ctx := GetViewContext()
	ctx.Log("Sidebar.SetSize",
		"outerWidth", width,
		"outerHeight", height,
		"innerWidth", ctx.InnerWidth(width),
		"innerHeight", ctx.InnerHeight(height),
	)
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// SetSnapshot copies the menu and roster state out of snap
func (s *Sidebar) SetSnapshot(snap session.Snapshot) {
	s.filter = snap.MenuFilter
	s.usersExpanded = snap.UsersExpanded
	s.users = snap.Users
	s.usersStatus = snap.UsersStatus
	s.channelsExpanded = snap.ChannelsExpanded
	s.channels = snap.Channels
	s.channelsStatus = snap.ChannelsStatus
}

func sectionArrow(expanded bool) string {
	if expanded {
		return "▾"
	}
	return "▸"
}

// sectionBody renders the status line of a roster or nothing when it has data.
func sectionBody(status session.Status, empty bool, name, key string) []string {
	switch {
	case status.Loading:
		return []string{"  " + StatusLoadingStyle.Render("Loading…")}
	case status.Failed():
		return []string{"  " + StatusErrorStyle.Render(fmt.Sprintf("Couldn't load %s", name)),
			"  " + StatusEmptyStyle.Render(fmt.Sprintf("press %s twice to retry", key))}
	case empty:
		return []string{"  " + StatusEmptyStyle.Render("Nothing here")}
	}
	return nil
}

func (s *Sidebar) lines(innerWidth int) []string {
	var lines []string

	lines = append(lines, PanelTitleStyle.Render("Inbox"))
	for i, f := range session.MenuFilters {
		label := fmt.Sprintf("%d %s", i+1, f.Label())
		if f == s.filter {
			lines = append(lines, SidebarSelectedStyle.Width(innerWidth).Render("> "+label))
		} else {
			lines = append(lines, SidebarItemStyle.Width(innerWidth).Render("  "+label))
		}
	}

	lines = append(lines, "", SidebarSectionStyle.Render(sectionArrow(s.usersExpanded)+" Users (u)"))
	if s.usersExpanded {
		if body := sectionBody(s.usersStatus, len(s.users) == 0, "users", "u"); body != nil {
			lines = append(lines, body...)
		} else {
			for _, u := range s.users {
				avatar := AvatarStyle(string(u.AvatarColor)).Render(u.AvatarGlyph)
				name := ansi.Truncate(u.Name, max(0, innerWidth-6), "…")
				lines = append(lines, "  "+avatar+" "+name)
			}
		}
	}

	lines = append(lines, "", SidebarSectionStyle.Render(sectionArrow(s.channelsExpanded)+" Channels (c)"))
	if s.channelsExpanded {
		if body := sectionBody(s.channelsStatus, len(s.channels) == 0, "channels", "c"); body != nil {
			lines = append(lines, body...)
		} else {
			for _, ch := range s.channels {
				lines = append(lines, "  "+ansi.Truncate("# "+ch.Title, max(0, innerWidth-2), "…"))
			}
		}
	}
	return lines
}

// View renders the sidebar
func (s *Sidebar) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(s.width)
	innerHeight := ctx.InnerHeight(s.height)

	lines := s.lines(innerWidth)
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, innerWidth, "")
	}

	return style.Width(s.width).Height(s.height).Render(strings.Join(lines, "\n"))
}
