package directory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCachedClient_ServesRepeatsFromCache(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fixture := NewFixture()
	client := NewCachedClient(ctx, fixture, time.Minute)

	first, err := client.ListChats(ctx, 8)
	require.NoError(t, err)
	second, err := client.ListChats(ctx, 8)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, fixture.Calls(OpListChats))

	// A different limit is a different request.
	_, err = client.ListChats(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, 2, fixture.Calls(OpListChats))
}

func TestCachedClient_KeysByChat(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fixture := NewFixture()
	client := NewCachedClient(ctx, fixture, time.Minute)

	for _, id := range []ID{"1", "2", "1", "2"} {
		_, err := client.ListMessages(ctx, id, 6)
		require.NoError(t, err)
		_, err = client.GetContactDetails(ctx, id)
		require.NoError(t, err)
	}
	require.Equal(t, 2, fixture.Calls(OpListMessages))
	require.Equal(t, 2, fixture.Calls(OpGetContactDetails))
}

func TestCachedClient_DoesNotCacheFailures(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fixture := NewFixture()
	fixture.Fail(OpListSidebarUsers, fmt.Errorf("boom"))
	client := NewCachedClient(ctx, fixture, time.Minute)

	_, err := client.ListSidebarUsers(ctx, 10)
	require.Error(t, err)

	fixture.Fail(OpListSidebarUsers, nil)
	users, err := client.ListSidebarUsers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, users, 10)
	require.Equal(t, 2, fixture.Calls(OpListSidebarUsers))
}

func TestCachedClient_CollapsesConcurrentRequests(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fixture := NewFixture()
	fixture.SetDelay(50 * time.Millisecond)
	client := NewCachedClient(ctx, fixture, time.Minute)

	var wg sync.WaitGroup
	results := make([][]SidebarChannel, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			channels, err := client.ListSidebarChannels(ctx, 8)
			if err == nil {
				results[i] = channels
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, fixture.Calls(OpListSidebarChannels))
	for _, r := range results {
		require.Len(t, r, 8)
	}
}

func TestWithCache(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fixture := NewFixture()

	require.Same(t, Client(fixture), WithCache(ctx, fixture, 0))

	wrapped := WithCache(ctx, fixture, time.Second)
	_, ok := wrapped.(*CachedClient)
	require.True(t, ok, "expected a CachedClient for a positive TTL")
}
