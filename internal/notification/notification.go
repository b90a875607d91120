// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"fmt"
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/boxpad/internal/logger"
)

// AppName is the title used for every boxpad notification
const AppName = "boxpad"

var (
	notifierMu sync.Mutex
	notifier   = beeep.Notify
)

func init() {
	beeep.AppName = AppName
}

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifierMu.Lock()
	defer notifierMu.Unlock()
	notifier = fn
}

// ResetNotifier restores beeep as the delivery function.
func ResetNotifier() {
	SetNotifier(beeep.Notify)
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)

	notifierMu.Lock()
	notify := notifier
	notifierMu.Unlock()

	// Empty icon lets beeep pick the platform default
	err := notify(title, message, "")
	if err != nil {
		log.Warn("notification failed", "error", err)
	}
	return err
}

// InboxReady announces that the chat listing finished loading.
func InboxReady(chats int) error {
	switch chats {
	case 0:
		return Send(AppName, "Inbox is empty")
	case 1:
		return Send(AppName, "1 conversation loaded")
	default:
		return Send(AppName, fmt.Sprintf("%d conversations loaded", chats))
	}
}

// DirectoryUnavailable announces that the chat listing could not be loaded.
func DirectoryUnavailable() error {
	return Send(AppName, "Directory unavailable, press r to retry")
}
