package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, regenerated when the theme changes
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorMuted       color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorBgSubtle    color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorSelf        color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
)

// Header styles
var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Sidebar styles
var (
	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarSectionStyle  lipgloss.Style
)

// Chat list styles
var (
	ChatRowStyle         lipgloss.Style
	ChatRowSelectedStyle lipgloss.Style
	ChatNameStyle        lipgloss.Style
	ChatPreviewStyle     lipgloss.Style
	ChatTimeStyle        lipgloss.Style
)

// Transcript styles
var (
	BubbleSelfStyle  lipgloss.Style
	BubbleOtherStyle lipgloss.Style
	BubbleTimeStyle  lipgloss.Style
	SkeletonStyle    lipgloss.Style
)

// Details panel styles
var (
	DetailsLabelStyle lipgloss.Style
	DetailsValueStyle lipgloss.Style
)

// Status styles
var (
	StatusLoadingStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style
	StatusEmptyStyle   lipgloss.Style
	BannerStyle        lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

func init() {
	regenerateStyles(BuiltinThemes[DefaultTheme])
}

// regenerateStyles updates all style variables based on t
func regenerateStyles(t Theme) {
	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorBgSubtle = lipgloss.Color(t.BgSubtle)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorSelf = lipgloss.Color(t.Self)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	SidebarItemStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	SidebarSectionStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Bold(true)

	ChatRowStyle = lipgloss.NewStyle()

	ChatRowSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected()))

	ChatNameStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	ChatPreviewStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ChatTimeStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	BubbleSelfStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorSelf).
		Padding(0, 1)

	BubbleOtherStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBgSubtle).
		Padding(0, 1)

	BubbleTimeStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	SkeletonStyle = lipgloss.NewStyle().
		Foreground(ColorBgSubtle)

	DetailsLabelStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	DetailsValueStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	StatusEmptyStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	BannerStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorError).
		Bold(true).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)
}

// AvatarStyle renders an avatar glyph on its palette colour.
func AvatarStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(hex)).
		Bold(true).
		Padding(0, 1)
}
