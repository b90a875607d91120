package cmd

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	huh "charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/boxpad/internal/config"
	"github.com/zhubert/boxpad/internal/logger"
	"github.com/zhubert/boxpad/internal/ui"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Edit the directory URL, slice limits and preferences",
	Long: `Opens an interactive form for the settings stored in ~/.boxpad/config.json.
Changes are validated and written when the form is submitted.`,
	Args: cobra.NoArgs,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

// configForm holds the string values bound to the form fields
type configForm struct {
	baseURL       string
	chats         string
	messages      string
	users         string
	channels      string
	cacheTTL      string
	theme         string
	notifications bool
}

func newConfigForm(cfg *config.Config) *configForm {
	l := cfg.GetLimits()
	ttl := ""
	if d := cfg.GetCacheTTL(); d > 0 {
		ttl = d.String()
	}
	theme := cfg.GetTheme()
	if theme == "" {
		theme = string(ui.DefaultTheme)
	}
	return &configForm{
		baseURL:       cfg.GetBaseURL(),
		chats:         strconv.Itoa(l.Chats),
		messages:      strconv.Itoa(l.Messages),
		users:         strconv.Itoa(l.SidebarUsers),
		channels:      strconv.Itoa(l.Channels),
		cacheTTL:      ttl,
		theme:         theme,
		notifications: cfg.GetNotificationsEnabled(),
	}
}

func validateBaseURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("must be an absolute http(s) URL")
	}
	return nil
}

func validateLimit(s string) error {
	_, err := config.ParseLimit(s)
	return err
}

func validateTTL(s string) error {
	if s == "" {
		return nil
	}
	if d, err := time.ParseDuration(s); err != nil || d < 0 {
		return fmt.Errorf("must be a duration like 30s, or empty to disable")
	}
	return nil
}

// apply copies validated form values onto cfg
func (f *configForm) apply(cfg *config.Config) error {
	var l config.Limits
	for _, field := range []struct {
		value string
		dst   *int
	}{
		{f.chats, &l.Chats},
		{f.messages, &l.Messages},
		{f.users, &l.SidebarUsers},
		{f.channels, &l.Channels},
	} {
		n, err := config.ParseLimit(field.value)
		if err != nil {
			return err
		}
		*field.dst = n
	}

	var ttl time.Duration
	if f.cacheTTL != "" {
		d, err := time.ParseDuration(f.cacheTTL)
		if err != nil {
			return fmt.Errorf("cache TTL: %w", err)
		}
		ttl = d
	}

	cfg.SetBaseURL(f.baseURL)
	cfg.SetLimits(l)
	cfg.SetCacheTTL(ttl)
	cfg.SetTheme(f.theme)
	cfg.SetNotificationsEnabled(f.notifications)
	return cfg.Validate()
}

func (f *configForm) build() *huh.Form {
	themeOptions := make([]huh.Option[string], 0, len(ui.ThemeNames()))
	for _, name := range ui.ThemeNames() {
		themeOptions = append(themeOptions, huh.NewOption(ui.GetTheme(name).Name, string(name)))
	}

	limit := func(title string, value *string) huh.Field {
		return huh.NewInput().
			Title(title).
			CharLimit(3).
			Validate(validateLimit).
			Value(value)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Directory URL").
				Placeholder(config.DefaultBaseURL).
				Validate(validateBaseURL).
				Value(&f.baseURL),
			huh.NewInput().
				Title("Cache TTL").
				Description("Empty disables the response cache").
				Placeholder("30s").
				Validate(validateTTL).
				Value(&f.cacheTTL),
		).Title("Directory"),
		huh.NewGroup(
			limit("Chats", &f.chats),
			limit("Messages per chat", &f.messages),
			limit("Sidebar users", &f.users),
			limit("Sidebar channels", &f.channels),
		).Title("Limits"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&f.theme),
			huh.NewConfirm().
				Title("Desktop notifications").
				Value(&f.notifications),
		).Title("Preferences"),
	).WithTheme(ui.FormTheme()).
		WithWidth(ui.ModalInputWidth + 10)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	defer logger.Close()

	if saved := cfg.GetTheme(); saved != "" {
		ui.SetThemeByName(saved)
	}

	f := newConfigForm(cfg)
	if err := f.build().Run(); err != nil {
		if err == huh.ErrUserAborted {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("error running form: %w", err)
	}

	if err := f.apply(cfg); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	logger.WithComponent("cmd").Info("config saved", "path", cfg.FilePath())
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", cfg.FilePath())
	return nil
}
