package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/boxpad/internal/clipboard"
	"github.com/zhubert/boxpad/internal/config"
	"github.com/zhubert/boxpad/internal/directory"
	"github.com/zhubert/boxpad/internal/keys"
	"github.com/zhubert/boxpad/internal/notification"
)

// cmdTimeout bounds a single command while draining. Flash ticks sleep for a
// second and are dropped when they exceed it.
const cmdTimeout = 200 * time.Millisecond

// testConfig creates a config with defaults and no backing file.
func testConfig() *config.Config {
	return config.Default()
}

// testModel creates a test Model over a fresh fixture directory.
func testModel(t *testing.T) (*Model, *directory.Fixture) {
	t.Helper()
	fixture := directory.NewFixture()
	m := New(testConfig(), fixture, "0.0.0-test")
	t.Cleanup(m.Shutdown)
	return m, fixture
}

// testModelWithSize creates a mounted test Model with its size set and every
// initial fetch applied.
func testModelWithSize(t *testing.T, width, height int) (*Model, *directory.Fixture) {
	t.Helper()
	m, fixture := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	drain(t, m, m.Init())
	return m, fixture
}

// drain runs cmd and everything it produces, feeding messages back into m.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		done := make(chan tea.Msg, 1)
		go func() { done <- c() }()

		var msg tea.Msg
		select {
		case msg = <-done:
		case <-time.After(cmdTimeout):
			continue
		}

		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case FetchDoneMsg:
			_, next := m.Update(msg)
			queue = append(queue, next)
		}
	}
}

// press sends a key to m and returns the command it produced.
func press(t *testing.T, m *Model, key string) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// pressAndDrain sends a key to m and applies everything it triggers.
func pressAndDrain(t *testing.T, m *Model, key string) {
	t.Helper()
	drain(t, m, press(t, m, key))
}

// keyPress creates a tea.KeyPressMsg for the given key string.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// memoryClipboard captures clipboard writes.
type memoryClipboard struct {
	text string
}

func (c *memoryClipboard) Init() error           { return nil }
func (c *memoryClipboard) WriteText(text string) { c.text = text }
func (c *memoryClipboard) ReadText() string      { return c.text }

func useMemoryClipboard(t *testing.T) *memoryClipboard {
	t.Helper()
	mem := &memoryClipboard{}
	clipboard.SetBackend(mem)
	t.Cleanup(clipboard.ResetBackend)
	return mem
}

// recordNotifications captures desktop notifications.
func recordNotifications(t *testing.T) *[]string {
	t.Helper()
	var messages []string
	notification.SetNotifier(func(_, message string, _ any) error {
		messages = append(messages, message)
		return nil
	})
	t.Cleanup(notification.ResetNotifier)
	return &messages
}

// ansiStrip removes styling so tests can match rendered text.
func ansiStrip(s string) string {
	return ansi.Strip(s)
}
