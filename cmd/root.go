package cmd

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/boxpad/internal/app"
	"github.com/zhubert/boxpad/internal/config"
	"github.com/zhubert/boxpad/internal/directory"
	"github.com/zhubert/boxpad/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	logFilePath           string
	baseURL               string
	demoMode              bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "boxpad",
	Short: "Terminal inbox dashboard for a contact directory",
	Long: `Boxpad is a terminal inbox dashboard. It lists conversations from a
contact directory, shows the selected conversation's transcript next to the
contact's details, and keeps the sidebar rosters a keypress away.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&logFilePath, "log-file", logger.DefaultLogPath, "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Directory base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&demoMode, "demo", false, "Use the built-in demo directory instead of the network")
}

func initConfig() {
	if logFilePath != "" {
		if err := logger.Init(logFilePath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("boxpad %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("boxpad %s\n", version)
}

// loadConfig loads the config file and applies the --base-url override
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if baseURL != "" {
		cfg.SetBaseURL(baseURL)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newClient builds the directory client the flags ask for. The returned
// client lives until ctx is done.
func newClient(ctx context.Context, cfg *config.Config) directory.Client {
	log := logger.WithComponent("cmd")
	if demoMode {
		log.Info("using demo directory")
		return directory.NewFixture()
	}

	client := directory.NewHTTPClient(cfg.GetBaseURL(), cfg.GetRequestTimeout())
	log.Info("using directory", "base_url", client.BaseURL(), "cache_ttl", cfg.GetCacheTTL())
	return directory.WithCache(ctx, client, cfg.GetCacheTTL())
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	m := app.New(cfg, newClient(ctx, cfg), version)
	defer m.Shutdown()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
