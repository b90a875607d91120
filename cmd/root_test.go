package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/zhubert/boxpad/internal/config"
	"github.com/zhubert/boxpad/internal/directory"
	"github.com/zhubert/boxpad/internal/session"
)

func TestDebugFlagDefaultTrue(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "true" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "true")
	}
}

func TestQuietFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--quiet default = %q, want %q", flag.DefValue, "false")
	}
	if flag.Shorthand != "q" {
		t.Errorf("--quiet shorthand = %q, want %q", flag.Shorthand, "q")
	}
}

func TestDirectoryFlagsExist(t *testing.T) {
	for _, name := range []string{"base-url", "demo"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"snapshot", "configure"} {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestInitConfig_QuietOverridesDebug(t *testing.T) {
	origDebug, origQuiet := debugMode, quietMode
	defer func() { debugMode, quietMode = origDebug, origQuiet }()

	debugMode = true
	quietMode = true

	// Should not panic - quiet should take precedence
	initConfig()
}

func TestVersionTemplate(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer SetVersionInfo(origV, origC, origD)

	SetVersionInfo("1.2.3", "none", "unknown")
	if got := versionTemplate(); got != "boxpad 1.2.3\n" {
		t.Errorf("versionTemplate() = %q", got)
	}

	SetVersionInfo("1.2.3", "abc123", "2026-01-02")
	got := versionTemplate()
	if !strings.Contains(got, "commit: abc123") || !strings.Contains(got, "built:  2026-01-02") {
		t.Errorf("versionTemplate() = %q, want commit and date", got)
	}
}

func TestLoadConfig_BaseURLOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvBaseURL, "")
	orig := baseURL
	defer func() { baseURL = orig }()

	baseURL = "http://localhost:9999"
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.GetBaseURL() != "http://localhost:9999" {
		t.Errorf("base URL = %q", cfg.GetBaseURL())
	}

	baseURL = "not a url"
	if _, err := loadConfig(); err == nil {
		t.Error("expected an invalid --base-url to be rejected")
	}
}

func TestNewClient_Demo(t *testing.T) {
	orig := demoMode
	defer func() { demoMode = orig }()

	demoMode = true
	if _, ok := newClient(context.Background(), config.Default()).(*directory.Fixture); !ok {
		t.Error("--demo should use the fixture directory")
	}
}

func newTestCoordinator(client directory.Client) *session.Coordinator {
	return session.New(client, session.Options{Limits: config.Default().GetLimits()})
}

func TestCollectSnapshot_DefaultSelection(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	snap, err := collectSnapshot(ctx, newTestCoordinator(directory.NewFixture()), "", false, false)
	if err != nil {
		t.Fatalf("collectSnapshot() error = %v", err)
	}
	if len(snap.Chats) != config.DefaultChatLimit {
		t.Errorf("got %d chats, want %d", len(snap.Chats), config.DefaultChatLimit)
	}
	if snap.SelectedChatID != "1" {
		t.Errorf("selected = %q, want first chat", snap.SelectedChatID)
	}
	if len(snap.Messages) == 0 || snap.Details == nil {
		t.Error("expected the first chat's messages and details to be loaded")
	}
	if snap.UsersExpanded || len(snap.Users) != 0 {
		t.Error("users roster should stay collapsed")
	}
}

func TestCollectSnapshot_SelectAndExpand(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	snap, err := collectSnapshot(ctx, newTestCoordinator(directory.NewFixture()), "3", true, true)
	if err != nil {
		t.Fatalf("collectSnapshot() error = %v", err)
	}
	if snap.SelectedChatID != "3" {
		t.Errorf("selected = %q, want 3", snap.SelectedChatID)
	}
	if len(snap.Messages) == 0 || snap.Messages[0].ID != "13" {
		t.Errorf("messages = %+v, want chat 3's transcript", snap.Messages)
	}
	if !snap.UsersExpanded || len(snap.Users) != config.DefaultSidebarUserLimit {
		t.Errorf("users expanded=%v count=%d", snap.UsersExpanded, len(snap.Users))
	}
	if !snap.ChannelsExpanded || len(snap.Channels) != config.DefaultChannelLimit {
		t.Errorf("channels expanded=%v count=%d", snap.ChannelsExpanded, len(snap.Channels))
	}

	out, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if !strings.Contains(string(out), `"selectedChatId":"3"`) {
		t.Errorf("encoded snapshot missing selection: %s", out)
	}
}

func TestCollectSnapshot_UnknownChat(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := collectSnapshot(ctx, newTestCoordinator(directory.NewFixture()), "404", false, false); err == nil {
		t.Error("expected selecting an unknown chat to fail")
	}
}

func TestCollectSnapshot_DirectoryDown(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	f := directory.NewFixture()
	f.Fail(directory.OpListChats, errors.New("connection refused"))

	snap, err := collectSnapshot(ctx, newTestCoordinator(f), "", false, false)
	if err != nil {
		t.Fatalf("collectSnapshot() error = %v", err)
	}
	if snap.Fatal() == nil {
		t.Error("expected the chat list failure in the snapshot")
	}
	if snap.SelectedChatID != "" {
		t.Errorf("selected = %q, want none", snap.SelectedChatID)
	}
}

func TestConfigForm_Apply(t *testing.T) {
	cfg := config.Default()
	f := newConfigForm(cfg)
	if f.chats != "8" || f.theme == "" {
		t.Fatalf("form not seeded from config: %+v", f)
	}

	f.baseURL = "http://localhost:8080"
	f.chats = "5"
	f.cacheTTL = "45s"
	f.notifications = true
	if err := f.apply(cfg); err != nil {
		t.Fatalf("apply() error = %v", err)
	}
	if cfg.GetBaseURL() != "http://localhost:8080" || cfg.GetLimits().Chats != 5 {
		t.Errorf("config not updated: %s %+v", cfg.GetBaseURL(), cfg.GetLimits())
	}
	if cfg.GetCacheTTL() != 45*time.Second || !cfg.GetNotificationsEnabled() {
		t.Errorf("ttl=%v notifications=%v", cfg.GetCacheTTL(), cfg.GetNotificationsEnabled())
	}

	f.messages = "0"
	if err := f.apply(cfg); err == nil {
		t.Error("expected an out-of-range limit to be rejected")
	}
}

func TestConfigFormValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		input   string
		wantErr bool
	}{
		{"url ok", validateBaseURL, "https://example.com", false},
		{"url relative", validateBaseURL, "/users", true},
		{"url scheme", validateBaseURL, "ftp://example.com", true},
		{"limit ok", validateLimit, "10", false},
		{"limit zero", validateLimit, "0", true},
		{"limit text", validateLimit, "ten", true},
		{"ttl empty", validateTTL, "", false},
		{"ttl ok", validateTTL, "1m", false},
		{"ttl bad", validateTTL, "soon", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(tt.input); (err != nil) != tt.wantErr {
				t.Errorf("got err %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
