// Package ui provides the user interface components for the boxpad TUI.
//
// # Overview
//
// The ui package implements the visual components of boxpad using the Bubble
// Tea framework and Lipgloss styling library. Components never talk to the
// directory; they are fed a session.Snapshot through SetSnapshot and render it.
//
// # Layout System
//
// On wide terminals all panels are visible:
//
//	┌────────────────────────────────────────────────────────────────┐
//	│ Header / navbar (1 line)                                       │
//	├─────────┬──────────────┬─────────────────────────┬─────────────┤
//	│ Sidebar │  Chat list   │  Conversation           │  Contact    │
//	│ (menu,  │  (avatars,   │  (message bubbles)      │  details    │
//	│ rosters)│  previews)   │                         │             │
//	├─────────┴──────────────┴─────────────────────────┴─────────────┤
//	│ Footer (1 line)                                                │
//	└────────────────────────────────────────────────────────────────┘
//
// Below NarrowWidth columns a single panel takes the whole content area and
// the session view mode picks it: none shows the sidebar, list shows the chat
// list, chat shows the conversation.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Application title, active inbox filter and the open conversation,
// drawn over a gradient of the theme's primary color.
//
// Footer: Context-aware keyboard shortcuts, replaced by flash messages for
// a few seconds after copy actions and failures.
//
// Sidebar, ChatList, Chat, Details: the four content panels. Each shows a
// loading placeholder, an error line or its data depending on the section
// status in the snapshot.
package ui
