package ui

import (
	"sync"

	"github.com/zhubert/boxpad/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	SidebarWidth  int
	ChatListWidth int
	ChatWidth     int
	DetailsWidth  int

	// Narrow is set when only one panel fits; the session view mode then
	// decides which one is shown and it gets the full width.
	Narrow bool

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// Log writes a debug message to the log file using slog structured logging.
func (v *ViewContext) Log(msg string, args ...any) {
	logger.WithComponent("ui").Debug(msg, args...)
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// This method is thread-safe and should be called from the main event loop
// when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight
	v.Narrow = width < NarrowWidth

	if v.Narrow {
		v.SidebarWidth = width
		v.ChatListWidth = width
		v.ChatWidth = width
		v.DetailsWidth = 0
	} else {
		v.SidebarWidth = SidebarWidth
		v.ChatListWidth = ChatListWidth
		v.DetailsWidth = DetailsWidth
		v.ChatWidth = width - SidebarWidth - ChatListWidth - DetailsWidth
	}

	v.Log("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"narrow", v.Narrow,
		"sidebarWidth", v.SidebarWidth,
		"chatListWidth", v.ChatListWidth,
		"chatWidth", v.ChatWidth,
		"detailsWidth", v.DetailsWidth,
	)
}

// IsNarrow reports whether the single-panel layout is active.
func (v *ViewContext) IsNarrow() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.Narrow
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return max(0, panelWidth-BorderSize)
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return max(0, panelHeight-BorderSize)
}
