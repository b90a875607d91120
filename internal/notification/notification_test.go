package notification

import (
	"errors"
	"testing"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
	}
	err error
}

func (m *mockNotification) notify(title, message string, _ any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
	}{title, message})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{
			name:    "successful notification",
			title:   "Test Title",
			message: "Test Message",
		},
		{
			name:        "notification error",
			title:       "Test Title",
			message:     "Test Message",
			mockErr:     errors.New("notification failed"),
			expectError: true,
		},
		{
			name:    "empty message",
			title:   "Title",
			message: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)

			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != tt.title || mock.calls[0].message != tt.message {
				t.Errorf("got (%q, %q), want (%q, %q)", mock.calls[0].title, mock.calls[0].message, tt.title, tt.message)
			}
		})
	}
}

func TestInboxReady(t *testing.T) {
	tests := []struct {
		chats   int
		message string
	}{
		{0, "Inbox is empty"},
		{1, "1 conversation loaded"},
		{8, "8 conversations loaded"},
	}

	for _, tt := range tests {
		mock := &mockNotification{}
		SetNotifier(mock.notify)

		if err := InboxReady(tt.chats); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(mock.calls) != 1 {
			t.Fatalf("expected 1 call, got %d", len(mock.calls))
		}
		if mock.calls[0].title != AppName {
			t.Errorf("title = %q, want %q", mock.calls[0].title, AppName)
		}
		if mock.calls[0].message != tt.message {
			t.Errorf("InboxReady(%d) message = %q, want %q", tt.chats, mock.calls[0].message, tt.message)
		}
	}
	ResetNotifier()
}

func TestDirectoryUnavailable(t *testing.T) {
	mock := &mockNotification{err: errors.New("no dbus")}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	if err := DirectoryUnavailable(); err == nil {
		t.Error("expected notifier error to be returned")
	}
	if len(mock.calls) != 1 || mock.calls[0].message != "Directory unavailable, press r to retry" {
		t.Errorf("unexpected calls: %+v", mock.calls)
	}
}
