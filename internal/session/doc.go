// Package session coordinates which chat the dashboard is showing and the
// directory data that depends on it.
//
// # Overview
//
// A Coordinator owns all session state: the loaded chat list, the selected
// chat, its transcript and contact details, the sidebar rosters, the inbox
// menu filter and the view mode used on narrow terminals. Callers never read
// that state directly; they take a deep-copied Snapshot and render it.
//
// # Fetches
//
// Coordinator methods never block on the network. When a gesture needs data
// the method returns one or more Fetch values describing the directory calls
// to make. The caller runs them however it likes (Bubble Tea commands in the
// TUI, Drive in headless mode) and feeds every Result back through Apply.
//
// Apply commits a result only if it still answers the latest request for its
// section and, for chat panels, the chat it was fetched for is still selected.
// Anything else is dropped silently, so the last selection always wins no
// matter in which order responses arrive.
//
// # Lifecycle
//
//  1. New creates a coordinator with a fresh session id.
//  2. Mount marks the chat list loading and returns the listing fetch.
//  3. When the listing resolves, the first chat is selected automatically and
//     its messages and contact details are fetched.
//  4. Gestures (SelectChat, OpenChatList, BackToList, ToggleUsers, ...) mutate
//     state and may return further fetches.
//
// # Failures
//
// A failed chat listing is fatal: the list stays empty and SelectChat is
// rejected until RetryChats succeeds. Message, contact and roster failures
// are local to their panel; the rest of the dashboard keeps working.
package session
