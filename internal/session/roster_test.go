package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zhubert/boxpad/internal/directory"
	"github.com/zhubert/boxpad/internal/errors"
)

func TestToggleUsers_FetchesOnce(t *testing.T) {
	ctx := context.Background()
	c, f := mounted(t)

	require.False(t, c.Snapshot().UsersExpanded)

	fetches := c.ToggleUsers()
	require.Len(t, fetches, 1)
	require.Equal(t, SectionUsers, fetches[0].Section)
	snap := c.Snapshot()
	require.True(t, snap.UsersExpanded)
	require.True(t, snap.UsersStatus.Loading)

	require.NoError(t, Drive(ctx, c, fetches...))
	snap = c.Snapshot()
	require.Len(t, snap.Users, 10)
	require.False(t, snap.UsersStatus.Loading)

	require.Nil(t, c.ToggleUsers(), "collapse never fetches")
	require.False(t, c.Snapshot().UsersExpanded)
	require.Nil(t, c.ToggleUsers(), "second expansion uses the loaded roster")
	require.Len(t, c.Snapshot().Users, 10)

	require.Equal(t, 1, f.Calls(directory.OpListSidebarUsers))
}

func TestToggleChannels_RetriesAfterFailure(t *testing.T) {
	ctx := context.Background()
	c, f := mounted(t)
	f.Fail(directory.OpListSidebarChannels, fmt.Errorf("unreachable"))

	require.NoError(t, Drive(ctx, c, c.ToggleChannels()...))
	snap := c.Snapshot()
	require.True(t, snap.ChannelsStatus.Failed())
	require.True(t, errors.Is(snap.ChannelsStatus.Err, errors.KindRosterFetchFailed))
	require.Empty(t, snap.Channels)

	require.Nil(t, c.ToggleChannels())

	f.Fail(directory.OpListSidebarChannels, nil)
	fetches := c.ToggleChannels()
	require.Len(t, fetches, 1)
	require.NoError(t, Drive(ctx, c, fetches...))

	snap = c.Snapshot()
	require.NoError(t, snap.ChannelsStatus.Err)
	require.Len(t, snap.Channels, 8)
	require.Equal(t, 2, f.Calls(directory.OpListSidebarChannels))
}

func TestToggle_CollapseWhileLoading(t *testing.T) {
	ctx := context.Background()
	c, f := mounted(t)

	pending := c.ToggleUsers()
	require.Len(t, pending, 1)
	require.Nil(t, c.ToggleUsers())
	require.Nil(t, c.ToggleUsers(), "expanding again while loading must not duplicate the request")

	require.NoError(t, Drive(ctx, c, pending...))
	require.Len(t, c.Snapshot().Users, 10)
	require.Equal(t, 1, f.Calls(directory.OpListSidebarUsers))
}

func TestRosters_IndependentOfSelection(t *testing.T) {
	ctx := context.Background()
	c, _ := mounted(t)

	users := c.ToggleUsers()
	channels := c.ToggleChannels()
	selection, err := c.SelectChat("6")
	require.NoError(t, err)

	require.NoError(t, Drive(ctx, c, users...))
	snap := c.Snapshot()
	require.False(t, snap.UsersStatus.Loading)
	require.True(t, snap.ChannelsStatus.Loading)
	require.True(t, snap.MessagesStatus.Loading)
	require.True(t, snap.DetailsStatus.Loading)

	require.NoError(t, Drive(ctx, c, selection...))
	snap = c.Snapshot()
	require.True(t, snap.ChannelsStatus.Loading)
	require.False(t, snap.MessagesStatus.Loading)

	require.NoError(t, Drive(ctx, c, channels...))
	require.False(t, c.Snapshot().ChannelsStatus.Loading)
}
