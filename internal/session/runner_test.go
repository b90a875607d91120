package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zhubert/boxpad/internal/directory"
	"github.com/zhubert/boxpad/internal/errors"
)

func TestDrive_RunsFollowUps(t *testing.T) {
	f := directory.NewFixture()
	f.SetDelay(5 * time.Millisecond)
	c := New(f, DefaultOptions())

	fetches := append(c.Mount(), c.ToggleUsers()...)
	fetches = append(fetches, c.ToggleChannels()...)
	require.NoError(t, Drive(context.Background(), c, fetches...))

	snap := c.Snapshot()
	require.Len(t, snap.Chats, 8)
	require.Len(t, snap.Messages, 6)
	require.NotNil(t, snap.Details)
	require.Len(t, snap.Users, 10)
	require.Len(t, snap.Channels, 8)
}

func TestDrive_NoFetches(t *testing.T) {
	c := New(directory.NewFixture(), DefaultOptions())
	require.NoError(t, Drive(context.Background(), c))
}

func TestDrive_ContextDone(t *testing.T) {
	f := directory.NewFixture()
	f.SetDelay(time.Hour)
	c := New(f, DefaultOptions())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Drive(ctx, c, c.Mount()...)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// The cancelled listing is recorded as a failed load.
	snap := c.Snapshot()
	require.True(t, errors.Is(snap.Fatal(), errors.KindDirectoryUnavailable))
}
