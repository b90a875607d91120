package directory

import (
	"context"
	"fmt"
	"time"

	"github.com/c-pro/geche"
	"golang.org/x/sync/singleflight"

	"github.com/zhubert/boxpad/internal/logger"
)

// CachedClient decorates a Client with a TTL cache of successful results.
// Identical concurrent requests are collapsed into one upstream call.
// Failures are never cached, so re-triggering a failed load always reaches
// the directory again.
//
// Cached slices are shared between callers and must be treated as read-only.
type CachedClient struct {
	inner Client
	cache *geche.MapTTLCache[string, any]
	group singleflight.Group
}

// NewCachedClient wraps inner with a cache whose entries live for ttl. The
// cache's cleanup goroutine stops when ctx is done.
func NewCachedClient(ctx context.Context, inner Client, ttl time.Duration) *CachedClient {
	cleanup := ttl
	if cleanup > time.Minute {
		cleanup = time.Minute
	}
	return &CachedClient{
		inner: inner,
		cache: geche.NewMapTTLCache[string, any](ctx, ttl, cleanup),
	}
}

// WithCache wraps client in a CachedClient when ttl is positive and returns
// it unchanged otherwise.
func WithCache(ctx context.Context, client Client, ttl time.Duration) Client {
	if ttl <= 0 {
		return client
	}
	return NewCachedClient(ctx, client, ttl)
}

func load[T any](c *CachedClient, key string, fetch func() (T, error)) (T, error) {
	if v, err := c.cache.Get(key); err == nil {
		if t, ok := v.(T); ok {
			return t, nil
		}
	}

	v, err, shared := c.group.Do(key, func() (any, error) {
		t, err := fetch()
		if err != nil {
			return nil, err
		}
		c.cache.Set(key, t)
		return t, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if shared {
		logger.WithComponent("directory").Debug("collapsed duplicate request", "key", key)
	}
	return v.(T), nil
}

func (c *CachedClient) ListChats(ctx context.Context, limit int) ([]ChatSummary, error) {
	return load(c, fmt.Sprintf("chats:%d", limit), func() ([]ChatSummary, error) {
		return c.inner.ListChats(ctx, limit)
	})
}

func (c *CachedClient) ListMessages(ctx context.Context, chatID ID, limit int) ([]Message, error) {
	return load(c, fmt.Sprintf("messages:%s:%d", chatID, limit), func() ([]Message, error) {
		return c.inner.ListMessages(ctx, chatID, limit)
	})
}

func (c *CachedClient) GetContactDetails(ctx context.Context, chatID ID) (ContactDetails, error) {
	return load(c, fmt.Sprintf("contact:%s", chatID), func() (ContactDetails, error) {
		return c.inner.GetContactDetails(ctx, chatID)
	})
}

func (c *CachedClient) ListSidebarUsers(ctx context.Context, limit int) ([]SidebarUser, error) {
	return load(c, fmt.Sprintf("users:%d", limit), func() ([]SidebarUser, error) {
		return c.inner.ListSidebarUsers(ctx, limit)
	})
}

func (c *CachedClient) ListSidebarChannels(ctx context.Context, limit int) ([]SidebarChannel, error) {
	return load(c, fmt.Sprintf("channels:%d", limit), func() ([]SidebarChannel, error) {
		return c.inner.ListSidebarChannels(ctx, limit)
	})
}
