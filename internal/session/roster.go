package session

import (
	"context"
	"log/slog"

	"github.com/zhubert/boxpad/internal/errors"
)

// roster is a collapsible sidebar list that is fetched once per session.
type roster[T any] struct {
	expanded bool
	loading  bool
	loaded   bool
	data     T
	err      error
	seq      uint64
}

// needsFetch reports whether expanding should hit the directory.
func (r *roster[T]) needsFetch() bool {
	return r.expanded && !r.loaded && !r.loading
}

func applyRoster[T any](r *roster[T], seq uint64, data T, err error, log *slog.Logger) bool {
	if seq != r.seq {
		return false
	}
	r.loading = false
	if err != nil {
		var zero T
		r.data = zero
		r.err = err
		r.loaded = false
		log.Warn("sidebar list failed", "error", err)
		return true
	}
	r.data = data
	r.err = nil
	r.loaded = true
	return true
}

// ToggleUsers expands or collapses the sidebar users section. The first
// expansion, and the first after a failure, returns the roster fetch.
func (c *Coordinator) ToggleUsers() []Fetch {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.users.expanded = !c.users.expanded
	if !c.users.needsFetch() {
		return nil
	}

	seq := c.nextSeqLocked()
	c.users.seq = seq
	c.users.loading = true
	c.users.err = nil

	client, limit := c.client, c.limits.SidebarUsers
	return []Fetch{{
		Section: SectionUsers,
		seq:     seq,
		call: func(ctx context.Context) Result {
			users, err := client.ListSidebarUsers(ctx, limit)
			if err != nil {
				return Result{Err: errors.RosterFetchFailed("users", err)}
			}
			return Result{Users: users}
		},
	}}
}

// ToggleChannels expands or collapses the sidebar channels section, with the
// same fetch rules as ToggleUsers.
func (c *Coordinator) ToggleChannels() []Fetch {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.channels.expanded = !c.channels.expanded
	if !c.channels.needsFetch() {
		return nil
	}

	seq := c.nextSeqLocked()
	c.channels.seq = seq
	c.channels.loading = true
	c.channels.err = nil

	client, limit := c.client, c.limits.Channels
	return []Fetch{{
		Section: SectionChannels,
		seq:     seq,
		call: func(ctx context.Context) Result {
			channels, err := client.ListSidebarChannels(ctx, limit)
			if err != nil {
				return Result{Err: errors.RosterFetchFailed("channels", err)}
			}
			return Result{Channels: channels}
		},
	}}
}
