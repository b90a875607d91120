package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/boxpad/internal/directory"
	"github.com/zhubert/boxpad/internal/session"
)

// Details is the contact details panel of the selected chat
type Details struct {
	width  int
	height int

	chatID  directory.ID
	details *directory.ContactDetails
	status  session.Status
}

// NewDetails creates a new details panel
func NewDetails() *Details {
	return &Details{}
}

// SetSize sets the panel dimensions
func (d *Details) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetSnapshot copies the contact of the selected chat out of snap
func (d *Details) SetSnapshot(snap session.Snapshot) {
	d.chatID = snap.SelectedChatID
	d.details = snap.Details
	d.status = snap.DetailsStatus
}

func field(label, value string, innerWidth int) []string {
	if value == "" {
		value = "-"
	}
	return []string{
		DetailsLabelStyle.Render(label),
		DetailsValueStyle.Render(ansi.Truncate(value, innerWidth, "…")),
	}
}

func (d *Details) lines(innerWidth int) []string {
	lines := []string{PanelTitleStyle.Render("Contact")}

	switch {
	case d.chatID == "":
		return append(lines, StatusEmptyStyle.Render("No chat selected"))
	case d.status.Loading:
		return append(lines, StatusLoadingStyle.Render("Loading…"),
			SkeletonStyle.Render(strings.Repeat("▆", max(4, innerWidth/2))),
			SkeletonStyle.Render(strings.Repeat("▂", max(4, innerWidth-4))))
	case d.status.Err != nil || d.details == nil:
		return append(lines, StatusErrorStyle.Render("Couldn't load contact"))
	}

	c := d.details
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	lines = append(lines, ChatNameStyle.Render(ansi.Truncate(name, innerWidth, "…")), "")
	lines = append(lines, field("First name", c.FirstName, innerWidth)...)
	lines = append(lines, field("Last name", c.LastName, innerWidth)...)
	lines = append(lines, field("Email (y)", c.Email, innerWidth)...)
	lines = append(lines, field("Phone (p)", c.Phone, innerWidth)...)
	lines = append(lines, field("Company", c.CompanyName, innerWidth)...)
	lines = append(lines, field("Website", c.Website, innerWidth)...)
	lines = append(lines, field("Username", "@"+c.Username, innerWidth)...)
	return lines
}

// View renders the details panel
func (d *Details) View() string {
	ctx := GetViewContext()
	innerWidth := ctx.InnerWidth(d.width)
	innerHeight := ctx.InnerHeight(d.height)

	lines := d.lines(innerWidth)
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	return PanelStyle.Width(d.width).Height(d.height).Render(strings.Join(lines, "\n"))
}
