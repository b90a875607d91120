package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/zhubert/boxpad/internal/errors"
)

// Defaults mirror the fixed slice limits of the dashboard.
const (
	DefaultBaseURL          = "https://jsonplaceholder.typicode.com"
	DefaultChatLimit        = 8
	DefaultMessageLimit     = 6
	DefaultSidebarUserLimit = 10
	DefaultChannelLimit     = 8
	DefaultRequestTimeout   = 15 * time.Second

	// MaxLimit caps every slice limit; the demo directory never returns more.
	MaxLimit = 100
)

// Environment variables that override values from the config file.
const (
	EnvBaseURL  = "BOXPAD_BASE_URL"
	EnvTimeout  = "BOXPAD_TIMEOUT"
	EnvCacheTTL = "BOXPAD_CACHE_TTL"
)

// Config holds the application configuration
type Config struct {
	BaseURL          string `json:"base_url"`
	ChatLimit        int    `json:"chat_limit"`
	MessageLimit     int    `json:"message_limit"`
	SidebarUserLimit int    `json:"sidebar_user_limit"`
	ChannelLimit     int    `json:"channel_limit"`
	RequestTimeout   string `json:"request_timeout,omitempty"` // Go duration, e.g. "15s"
	CacheTTL         string `json:"cache_ttl,omitempty"`       // Go duration; empty or "0s" disables the response cache

	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g., "dark-purple", "nord")
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notifications for inbox state

	mu       sync.RWMutex
	filePath string
}

// Default returns a config populated with defaults and no backing file.
func Default() *Config {
	return &Config{
		BaseURL:          DefaultBaseURL,
		ChatLimit:        DefaultChatLimit,
		MessageLimit:     DefaultMessageLimit,
		SidebarUserLimit: DefaultSidebarUserLimit,
		ChannelLimit:     DefaultChannelLimit,
		RequestTimeout:   DefaultRequestTimeout.String(),
	}
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".boxpad"), nil
}

// Path returns the path to the config file
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from ~/.boxpad/config.json, or returns defaults if it
// doesn't exist. A .env file in the working directory is loaded first so its
// BOXPAD_* entries act as overrides.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	// A missing .env is the common case
	_ = godotenv.Load()

	return LoadFrom(path)
}

// LoadFrom reads the config at path, applies environment overrides and validates.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.ConfigLoadFailed(path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.ConfigLoadFailed(path, err)
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills zero values left by a partial config file.
//
// Thread-safety: only called from LoadFrom before the Config is shared.
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.ChatLimit == 0 {
		c.ChatLimit = DefaultChatLimit
	}
	if c.MessageLimit == 0 {
		c.MessageLimit = DefaultMessageLimit
	}
	if c.SidebarUserLimit == 0 {
		c.SidebarUserLimit = DefaultSidebarUserLimit
	}
	if c.ChannelLimit == 0 {
		c.ChannelLimit = DefaultChannelLimit
	}
	if c.RequestTimeout == "" {
		c.RequestTimeout = DefaultRequestTimeout.String()
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		c.BaseURL = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		c.RequestTimeout = v
	}
	if v, ok := lookup(EnvCacheTTL); ok && v != "" {
		c.CacheTTL = v
	}
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.ConfigInvalid(fmt.Sprintf("base_url %q must be an absolute http(s) URL", c.BaseURL))
	}

	limits := []struct {
		name  string
		value int
	}{
		{"chat_limit", c.ChatLimit},
		{"message_limit", c.MessageLimit},
		{"sidebar_user_limit", c.SidebarUserLimit},
		{"channel_limit", c.ChannelLimit},
	}
	for _, l := range limits {
		if l.value < 1 || l.value > MaxLimit {
			return errors.ConfigInvalid(fmt.Sprintf("%s must be between 1 and %d, got %d", l.name, MaxLimit, l.value))
		}
	}

	if d, err := time.ParseDuration(c.RequestTimeout); err != nil || d <= 0 {
		return errors.ConfigInvalid(fmt.Sprintf("request_timeout %q must be a positive duration", c.RequestTimeout))
	}
	if c.CacheTTL != "" {
		if d, err := time.ParseDuration(c.CacheTTL); err != nil || d < 0 {
			return errors.ConfigInvalid(fmt.Sprintf("cache_ttl %q must be a non-negative duration", c.CacheTTL))
		}
	}

	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return errors.ConfigSaveFailed("", fmt.Errorf("config has no file path"))
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// FilePath returns the file the config was loaded from
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetBaseURL returns the directory service base URL
func (c *Config) GetBaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.BaseURL
}

// SetBaseURL sets the directory service base URL
func (c *Config) SetBaseURL(u string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.BaseURL = u
}

// Limits groups the fixed slice limits applied to directory listings.
type Limits struct {
	Chats        int
	Messages     int
	SidebarUsers int
	Channels     int
}

// GetLimits returns the configured slice limits
func (c *Config) GetLimits() Limits {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Limits{
		Chats:        c.ChatLimit,
		Messages:     c.MessageLimit,
		SidebarUsers: c.SidebarUserLimit,
		Channels:     c.ChannelLimit,
	}
}

// SetLimits replaces the slice limits
func (c *Config) SetLimits(l Limits) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ChatLimit = l.Chats
	c.MessageLimit = l.Messages
	c.SidebarUserLimit = l.SidebarUsers
	c.ChannelLimit = l.Channels
}

// GetRequestTimeout returns the per-request HTTP timeout, falling back to the
// default when the stored value does not parse.
func (c *Config) GetRequestTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return DefaultRequestTimeout
	}
	return d
}

// GetCacheTTL returns the response cache TTL; zero disables caching.
func (c *Config) GetCacheTTL() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.CacheTTL == "" {
		return 0
	}
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// SetCacheTTL sets the response cache TTL
func (c *Config) SetCacheTTL(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d <= 0 {
		c.CacheTTL = ""
		return
	}
	c.CacheTTL = d.String()
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// ParseLimit parses a limit typed into a form field.
func ParseLimit(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n < 1 || n > MaxLimit {
		return 0, fmt.Errorf("must be between 1 and %d", MaxLimit)
	}
	return n, nil
}
