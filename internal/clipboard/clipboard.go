// Package clipboard copies contact fields to the system clipboard.
package clipboard

import (
	"fmt"
	"strings"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/boxpad/internal/logger"
)

// Backend is the subset of the system clipboard boxpad uses.
type Backend interface {
	Init() error
	WriteText(text string)
	ReadText() string
}

// systemBackend talks to the real clipboard through golang.design/x/clipboard.
type systemBackend struct{}

func (systemBackend) Init() error { return clipboard.Init() }

func (systemBackend) WriteText(text string) {
	clipboard.Write(clipboard.FmtText, []byte(text))
}

func (systemBackend) ReadText() string {
	return string(clipboard.Read(clipboard.FmtText))
}

var (
	mu          sync.Mutex
	backend     Backend = systemBackend{}
	initialized bool
	initErr     error
)

// SetBackend swaps the clipboard implementation and forces re-initialization.
func SetBackend(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	backend = b
	initialized = false
	initErr = nil
}

// ResetBackend restores the system clipboard.
func ResetBackend() {
	SetBackend(systemBackend{})
}

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times; a failure is remembered.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return initErr
	}
	initialized = true
	if err := backend.Init(); err != nil {
		logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
		initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	return initErr
}

// WriteText writes text to the clipboard. Blank text is rejected.
func WriteText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("nothing to copy")
	}

	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(); err != nil {
		return err
	}

	backend.WriteText(text)
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// ReadText reads text from the clipboard.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(); err != nil {
		return "", err
	}
	return backend.ReadText(), nil
}
