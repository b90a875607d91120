// Package errors provides structured error types for boxpad.
// These errors carry the operation that failed and a Kind the UI uses to decide
// whether a failure blocks the whole dashboard or only one panel.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindNetwork
	KindConfig
	// KindDirectoryUnavailable means the chat listing could not be loaded.
	// It is fatal to the session until the listing is retried.
	KindDirectoryUnavailable
	// KindDetailFetchFailed is a panel-level failure for messages or contact details.
	KindDetailFetchFailed
	// KindRosterFetchFailed is a list-level failure for sidebar users or channels.
	KindRosterFetchFailed
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindNetwork:
		return "network error"
	case KindConfig:
		return "configuration error"
	case KindDirectoryUnavailable:
		return "directory unavailable"
	case KindDetailFetchFailed:
		return "detail fetch failed"
	case KindRosterFetchFailed:
		return "roster fetch failed"
	default:
		return "unknown error"
	}
}

// Fatal reports whether errors of this kind block the whole dashboard.
func (k Kind) Fatal() bool {
	return k == KindDirectoryUnavailable
}

// Error is the structured error type for boxpad.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err, or any error it wraps, is an *Error of the given Kind.
func Is(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}

// GetKind returns the Kind of the outermost *Error in err's chain.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Directory client errors

func DirectoryRequestFailed(endpoint string, err error) error {
	return E(Op("directory.Get"), KindNetwork, fmt.Sprintf("request to %s failed", endpoint), err)
}

func DirectoryBadStatus(endpoint string, status int) error {
	return E(Op("directory.Get"), KindNetwork, fmt.Sprintf("%s returned status %d", endpoint, status))
}

func DirectoryDecodeFailed(endpoint string, err error) error {
	return E(Op("directory.Decode"), KindInvalid, fmt.Sprintf("failed to decode %s response", endpoint), err)
}

// Session errors

func ChatListUnavailable(err error) error {
	return E(Op("session.ListChats"), KindDirectoryUnavailable, "failed to load chat list", err)
}

func DetailFetchFailed(section, chatID string, err error) error {
	return E(Op("session.Fetch"), KindDetailFetchFailed, fmt.Sprintf("failed to load %s for chat %s", section, chatID), err)
}

func RosterFetchFailed(list string, err error) error {
	return E(Op("session.Roster"), KindRosterFetchFailed, fmt.Sprintf("failed to load sidebar %s", list), err)
}

func ChatNotFound(id string) error {
	return E(Op("session.SelectChat"), KindNotFound, fmt.Sprintf("chat %s not found", id))
}

func NoChatList() error {
	return E(Op("session.SelectChat"), KindDirectoryUnavailable, "chat list is not loaded")
}

// Config errors

func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
