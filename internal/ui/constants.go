// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the navbar in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidth is the outer width of the navigation sidebar on wide terminals
	SidebarWidth = 24

	// ChatListWidth is the outer width of the chat list on wide terminals
	ChatListWidth = 36

	// DetailsWidth is the outer width of the contact details panel on wide terminals
	DetailsWidth = 32

	// NarrowWidth is the terminal width below which only one panel is shown
	NarrowWidth = 110

	// MinTerminalWidth is the smallest width the layout is computed for
	MinTerminalWidth = 40

	// MinTerminalHeight is the smallest height the layout is computed for
	MinTerminalHeight = 10

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// ChatRowHeight is the number of lines one chat list entry takes
	ChatRowHeight = 2

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// BubbleMaxWidthPercent caps message bubbles to this share of the transcript width
	BubbleMaxWidthPercent = 75
)

// Loading placeholders
const (
	// SkeletonChatRows is the number of placeholder rows shown while the chat list loads
	SkeletonChatRows = 4

	// SkeletonMessages is the number of placeholder bubbles shown while messages load
	SkeletonMessages = 3
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// HelpModalMaxVisible is the number of shortcut rows visible in the help modal
	HelpModalMaxVisible = 14

	// ModalInputWidth is the width of text inputs inside modals
	ModalInputWidth = 50

	// ModalInputCharLimit caps the length of modal text inputs
	ModalInputCharLimit = 64

	// SearchMaxResults is the number of matches listed by the search modal
	SearchMaxResults = 8
)
