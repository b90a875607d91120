package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/zhubert/boxpad/internal/session"
)

func TestNewFooter(t *testing.T) {
	footer := NewFooter()

	if footer == nil {
		t.Fatal("NewFooter() returned nil")
	}

	if footer.HasFlash() {
		t.Error("Expected no flash message initially")
	}

	if len(footer.Bindings()) == 0 {
		t.Error("Expected default bindings")
	}
}

func TestFooter_SetFlash(t *testing.T) {
	footer := NewFooter()

	footer.SetFlash("Copied email", FlashSuccess)

	if footer.flashMessage == nil {
		t.Fatal("Expected flash message to be set")
	}
	if footer.flashMessage.Text != "Copied email" {
		t.Errorf("Expected text 'Copied email', got %q", footer.flashMessage.Text)
	}
	if footer.flashMessage.Type != FlashSuccess {
		t.Errorf("Expected type FlashSuccess, got %v", footer.flashMessage.Type)
	}
	if footer.flashMessage.Duration != DefaultFlashDuration {
		t.Errorf("Expected default duration, got %v", footer.flashMessage.Duration)
	}
}

func TestFooter_ClearFlash(t *testing.T) {
	footer := NewFooter()
	footer.SetFlash("msg", FlashInfo)

	footer.ClearFlash()

	if footer.HasFlash() {
		t.Error("Expected flash to be cleared")
	}
}

func TestFooter_ClearIfExpired(t *testing.T) {
	footer := NewFooter()

	if footer.ClearIfExpired() {
		t.Error("Nothing to clear without a flash")
	}

	footer.SetFlashWithDuration("short", FlashWarning, time.Millisecond)
	footer.flashMessage.CreatedAt = time.Now().Add(-time.Second)

	if !footer.ClearIfExpired() {
		t.Error("Expected expired flash to be cleared")
	}
	if footer.HasFlash() {
		t.Error("Flash should be gone after ClearIfExpired")
	}

	footer.SetFlash("fresh", FlashInfo)
	if footer.ClearIfExpired() {
		t.Error("Fresh flash should not be cleared")
	}
}

func TestFlashMessage_IsExpired(t *testing.T) {
	msg := &FlashMessage{CreatedAt: time.Now(), Duration: time.Hour}
	if msg.IsExpired() {
		t.Error("Message should not be expired")
	}

	msg.CreatedAt = time.Now().Add(-2 * time.Hour)
	if !msg.IsExpired() {
		t.Error("Message should be expired")
	}
}

func TestFooter_View_Flash(t *testing.T) {
	tests := []struct {
		flashType FlashType
		icon      string
	}{
		{FlashError, "✕"},
		{FlashWarning, "⚠"},
		{FlashInfo, "ℹ"},
		{FlashSuccess, "✓"},
	}

	for _, tt := range tests {
		footer := NewFooter()
		footer.SetWidth(80)
		footer.SetFlash("hello", tt.flashType)

		view := stripANSI(footer.View())
		if !strings.Contains(view, tt.icon+" hello") {
			t.Errorf("Expected %q in flash view, got %q", tt.icon+" hello", view)
		}
		if strings.Contains(view, "quit") {
			t.Error("Flash should replace the bindings")
		}
	}
}

func hasBinding(bindings []KeyBinding, key string) bool {
	for _, b := range bindings {
		if b.Key == key {
			return true
		}
	}
	return false
}

func TestFooter_Bindings_Context(t *testing.T) {
	tests := []struct {
		name    string
		narrow  bool
		mode    session.ViewMode
		fatal   bool
		want    []string
		notWant []string
	}{
		{"fatal", false, session.ViewNone, true, []string{"r", "q"}, []string{"u/c"}},
		{"wide", false, session.ViewChat, false, []string{"↑/↓", "u/c", "y/p"}, []string{"esc"}},
		{"narrow none", true, session.ViewNone, false, []string{"m", "u/c"}, []string{"enter"}},
		{"narrow list", true, session.ViewList, false, []string{"enter", "esc"}, []string{"m"}},
		{"narrow chat", true, session.ViewChat, false, []string{"esc", "y", "p"}, []string{"enter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			footer := NewFooter()
			footer.SetContext(tt.narrow, tt.mode, tt.fatal)
			bindings := footer.Bindings()

			for _, key := range tt.want {
				if !hasBinding(bindings, key) {
					t.Errorf("Expected binding %q", key)
				}
			}
			for _, key := range tt.notWant {
				if hasBinding(bindings, key) {
					t.Errorf("Did not expect binding %q", key)
				}
			}
		})
	}
}

func TestFooter_View_Bindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(200)

	view := stripANSI(footer.View())

	if !strings.Contains(view, "q: quit") {
		t.Errorf("Expected quit binding, got %q", view)
	}
	if !strings.Contains(view, "|") {
		t.Error("Expected bindings to be separated")
	}
}
