package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zhubert/boxpad/internal/directory"
	"github.com/zhubert/boxpad/internal/logger"
	"github.com/zhubert/boxpad/internal/session"
)

var (
	snapshotSelect         string
	snapshotExpandUsers    bool
	snapshotExpandChannels bool
	snapshotTimeout        time.Duration
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Load the inbox headlessly and print the session state as JSON",
	Long: `Mounts a dashboard session without a terminal UI, waits until every
request has settled and prints the resulting session state as JSON.

Examples:
  boxpad snapshot --demo
  boxpad snapshot --select 3 --expand-users`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotSelect, "select", "", "Select this chat ID after the inbox loads")
	snapshotCmd.Flags().BoolVar(&snapshotExpandUsers, "expand-users", false, "Expand the users roster")
	snapshotCmd.Flags().BoolVar(&snapshotExpandChannels, "expand-channels", false, "Expand the channels roster")
	snapshotCmd.Flags().DurationVar(&snapshotTimeout, "timeout", 30*time.Second, "Give up after this long")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), snapshotTimeout)
	defer cancel()

	coord := session.New(newClient(ctx, cfg), session.Options{Limits: cfg.GetLimits()})
	snap, err := collectSnapshot(ctx, coord, snapshotSelect, snapshotExpandUsers, snapshotExpandChannels)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// collectSnapshot mounts coord, applies the requested selection and roster
// toggles, and returns the state once every fetch has settled.
func collectSnapshot(ctx context.Context, coord *session.Coordinator, selectID string, users, channels bool) (session.Snapshot, error) {
	log := logger.WithSession(coord.ID()).With("component", "snapshot")

	if err := session.Drive(ctx, coord, coord.Mount()...); err != nil {
		return session.Snapshot{}, fmt.Errorf("loading inbox: %w", err)
	}

	var fetches []session.Fetch
	if selectID != "" {
		f, err := coord.SelectChat(directory.ID(selectID))
		if err != nil {
			return session.Snapshot{}, err
		}
		fetches = append(fetches, f...)
	}
	if users {
		fetches = append(fetches, coord.ToggleUsers()...)
	}
	if channels {
		fetches = append(fetches, coord.ToggleChannels()...)
	}
	if err := session.Drive(ctx, coord, fetches...); err != nil {
		return session.Snapshot{}, fmt.Errorf("loading selection: %w", err)
	}

	snap := coord.Snapshot()
	log.Info("snapshot collected", "chats", len(snap.Chats), "selected", snap.SelectedChatID)
	return snap, nil
}
