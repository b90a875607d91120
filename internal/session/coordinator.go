package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/zhubert/boxpad/internal/config"
	"github.com/zhubert/boxpad/internal/directory"
	"github.com/zhubert/boxpad/internal/errors"
	"github.com/zhubert/boxpad/internal/logger"
)

// Result is the outcome of one Fetch. Exactly one of the data fields is set,
// matching Section, unless Err is non-nil.
type Result struct {
	Section Section
	ChatID  directory.ID
	Seq     uint64

	Chats    []directory.ChatSummary
	Messages []directory.Message
	Details  directory.ContactDetails
	Users    []directory.SidebarUser
	Channels []directory.SidebarChannel

	Err error
}

// Fetch is a deferred directory call issued by the coordinator. Run it on
// any goroutine and hand the Result to Apply.
type Fetch struct {
	Section Section
	ChatID  directory.ID

	seq  uint64
	call func(ctx context.Context) Result
}

// Run performs the directory call.
func (f Fetch) Run(ctx context.Context) Result {
	r := f.call(ctx)
	r.Section = f.Section
	r.ChatID = f.ChatID
	r.Seq = f.seq
	return r
}

// panel holds data that belongs to one chat.
type panel[T any] struct {
	chatID  directory.ID
	data    T
	loading bool
	err     error
	seq     uint64
}

// failedFor reports whether the panel's last load for id ended in an error.
func (p *panel[T]) failedFor(id directory.ID) bool {
	return p.chatID == id && p.err != nil && !p.loading
}

// Options configures a Coordinator.
type Options struct {
	Limits config.Limits
}

// DefaultOptions uses the fixed dashboard limits.
func DefaultOptions() Options {
	return Options{Limits: config.Default().GetLimits()}
}

// Coordinator owns the session state of one dashboard mount. It is safe for
// concurrent use.
type Coordinator struct {
	mu     sync.Mutex
	id     string
	client directory.Client
	limits config.Limits
	log    *slog.Logger

	mode     ViewMode
	filter   MenuFilter
	selected directory.ID
	seq      uint64

	chats        []directory.ChatSummary
	chatsLoading bool
	chatsLoaded  bool
	chatsErr     error
	chatsSeq     uint64

	messages panel[[]directory.Message]
	details  panel[directory.ContactDetails]

	users    roster[[]directory.SidebarUser]
	channels roster[[]directory.SidebarChannel]
}

// New creates a coordinator for client. Zero limits fall back to the defaults.
func New(client directory.Client, opts Options) *Coordinator {
	defaults := DefaultOptions().Limits
	if opts.Limits.Chats <= 0 {
		opts.Limits.Chats = defaults.Chats
	}
	if opts.Limits.Messages <= 0 {
		opts.Limits.Messages = defaults.Messages
	}
	if opts.Limits.SidebarUsers <= 0 {
		opts.Limits.SidebarUsers = defaults.SidebarUsers
	}
	if opts.Limits.Channels <= 0 {
		opts.Limits.Channels = defaults.Channels
	}

	id := uuid.New().String()
	return &Coordinator{
		id:     id,
		client: client,
		limits: opts.Limits,
		log:    logger.WithSession(id).With("component", "session"),
	}
}

// ID returns the session id used to correlate log lines.
func (c *Coordinator) ID() string {
	return c.id
}

// Mount resets the session and returns the chat listing fetch.
func (c *Coordinator) Mount() []Fetch {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = ViewNone
	c.filter = FilterMyInbox
	c.selected = ""
	c.chats = nil
	c.chatsLoaded = false
	c.messages = panel[[]directory.Message]{}
	c.details = panel[directory.ContactDetails]{}
	c.users = roster[[]directory.SidebarUser]{}
	c.channels = roster[[]directory.SidebarChannel]{}

	c.log.Info("session mounted", "chatLimit", c.limits.Chats)
	return []Fetch{c.fetchChatsLocked()}
}

// RetryChats re-issues the chat listing after it failed. It returns nothing
// while the listing is loading or already loaded.
func (c *Coordinator) RetryChats() []Fetch {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.chatsLoading || c.chatsErr == nil {
		return nil
	}
	c.log.Info("retrying chat list")
	return []Fetch{c.fetchChatsLocked()}
}

func (c *Coordinator) nextSeqLocked() uint64 {
	c.seq++
	return c.seq
}

func (c *Coordinator) fetchChatsLocked() Fetch {
	seq := c.nextSeqLocked()
	c.chatsSeq = seq
	c.chatsLoading = true
	c.chatsErr = nil

	client, limit := c.client, c.limits.Chats
	return Fetch{
		Section: SectionChats,
		seq:     seq,
		call: func(ctx context.Context) Result {
			chats, err := client.ListChats(ctx, limit)
			if err != nil {
				return Result{Err: errors.ChatListUnavailable(err)}
			}
			return Result{Chats: chats}
		},
	}
}

func (c *Coordinator) fetchMessagesLocked(id directory.ID) Fetch {
	seq := c.nextSeqLocked()
	c.messages.seq = seq
	c.messages.loading = true
	c.messages.err = nil

	client, limit := c.client, c.limits.Messages
	return Fetch{
		Section: SectionMessages,
		ChatID:  id,
		seq:     seq,
		call: func(ctx context.Context) Result {
			messages, err := client.ListMessages(ctx, id, limit)
			if err != nil {
				return Result{Err: errors.DetailFetchFailed("messages", string(id), err)}
			}
			return Result{Messages: messages}
		},
	}
}

func (c *Coordinator) fetchDetailsLocked(id directory.ID) Fetch {
	seq := c.nextSeqLocked()
	c.details.seq = seq
	c.details.loading = true
	c.details.err = nil

	client := c.client
	return Fetch{
		Section: SectionDetails,
		ChatID:  id,
		seq:     seq,
		call: func(ctx context.Context) Result {
			details, err := client.GetContactDetails(ctx, id)
			if err != nil {
				return Result{Err: errors.DetailFetchFailed("contact details", string(id), err)}
			}
			return Result{Details: details}
		},
	}
}

func (c *Coordinator) indexOfLocked(id directory.ID) int {
	for i, chat := range c.chats {
		if chat.ID == id {
			return i
		}
	}
	return -1
}

// SelectChat makes id the selected chat and switches to the chat view. When
// the selection changes it returns the messages and contact details fetches
// for id. Re-selecting the current chat only refetches panels that failed.
func (c *Coordinator) SelectChat(id directory.ID) ([]Fetch, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectLocked(id)
}

func (c *Coordinator) selectLocked(id directory.ID) ([]Fetch, error) {
	if !c.chatsLoaded {
		return nil, errors.NoChatList()
	}
	if c.indexOfLocked(id) < 0 {
		return nil, errors.ChatNotFound(string(id))
	}

	c.mode = Transition(c.mode, EventSelectChat)

	if id == c.selected {
		var fetches []Fetch
		if c.messages.failedFor(id) {
			fetches = append(fetches, c.fetchMessagesLocked(id))
		}
		if c.details.failedFor(id) {
			fetches = append(fetches, c.fetchDetailsLocked(id))
		}
		if len(fetches) > 0 {
			c.log.Debug("reloading failed panels", "chat", id, "fetches", len(fetches))
		}
		return fetches, nil
	}

	return c.changeSelectionLocked(id), nil
}

// changeSelectionLocked switches the selection without touching the view mode.
func (c *Coordinator) changeSelectionLocked(id directory.ID) []Fetch {
	c.log.Debug("selection changed", "from", c.selected, "to", id)
	c.selected = id
	return []Fetch{c.fetchMessagesLocked(id), c.fetchDetailsLocked(id)}
}

// SelectNext selects the chat after the current one.
func (c *Coordinator) SelectNext() ([]Fetch, error) {
	return c.selectRelative(1)
}

// SelectPrevious selects the chat before the current one.
func (c *Coordinator) SelectPrevious() ([]Fetch, error) {
	return c.selectRelative(-1)
}

func (c *Coordinator) selectRelative(delta int) ([]Fetch, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.chatsLoaded {
		return nil, errors.NoChatList()
	}
	if len(c.chats) == 0 {
		return nil, nil
	}
	idx := c.indexOfLocked(c.selected)
	switch {
	case idx < 0:
		idx = 0
	default:
		idx = max(0, min(len(c.chats)-1, idx+delta))
	}
	return c.selectLocked(c.chats[idx].ID)
}

// SelectedChat returns the summary of the selected chat.
func (c *Coordinator) SelectedChat() (directory.ChatSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOfLocked(c.selected); i >= 0 {
		return c.chats[i], true
	}
	return directory.ChatSummary{}, false
}

// OpenChatList switches to the chat list view.
func (c *Coordinator) OpenChatList() {
	c.transition(EventOpenList)
}

// BackToList returns from the chat view to the chat list.
func (c *Coordinator) BackToList() {
	c.transition(EventBackToList)
}

// BackToNone closes the chat list.
func (c *Coordinator) BackToNone() {
	c.transition(EventBackToNone)
}

func (c *Coordinator) transition(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := Transition(c.mode, ev)
	if next != c.mode {
		c.log.Debug("view mode changed", "event", ev, "from", c.mode, "to", next)
	}
	c.mode = next
}

// SetMenuFilter records the active inbox menu entry.
func (c *Coordinator) SetMenuFilter(f MenuFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = f
}

// Apply commits r if it still answers the latest request for its section.
// It reports whether r was committed and returns any follow-up fetches.
func (c *Coordinator) Apply(r Result) (bool, []Fetch) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch r.Section {
	case SectionChats:
		return c.applyChatsLocked(r)
	case SectionMessages:
		if !c.currentLocked(r, c.messages.seq) {
			return false, nil
		}
		c.messages.loading = false
		c.messages.chatID = r.ChatID
		c.messages.data = r.Messages
		c.messages.err = r.Err
		if r.Err != nil {
			c.messages.data = nil
			c.log.Warn("messages failed", "chat", r.ChatID, "error", r.Err)
		}
		return true, nil
	case SectionDetails:
		if !c.currentLocked(r, c.details.seq) {
			return false, nil
		}
		c.details.loading = false
		c.details.chatID = r.ChatID
		c.details.data = r.Details
		c.details.err = r.Err
		if r.Err != nil {
			c.details.data = directory.ContactDetails{}
			c.log.Warn("contact details failed", "chat", r.ChatID, "error", r.Err)
		}
		return true, nil
	case SectionUsers:
		return applyRoster(&c.users, r.Seq, r.Users, r.Err, c.log.With("list", "users")), nil
	case SectionChannels:
		return applyRoster(&c.channels, r.Seq, r.Channels, r.Err, c.log.With("list", "channels")), nil
	}
	return false, nil
}

// currentLocked reports whether a chat panel result is still wanted.
func (c *Coordinator) currentLocked(r Result, latest uint64) bool {
	if r.ChatID != c.selected || r.Seq != latest {
		c.log.Debug("discarding stale result", "section", r.Section, "chat", r.ChatID, "selected", c.selected)
		return false
	}
	return true
}

func (c *Coordinator) applyChatsLocked(r Result) (bool, []Fetch) {
	if r.Seq != c.chatsSeq {
		return false, nil
	}
	c.chatsLoading = false

	if r.Err != nil {
		c.chats = nil
		c.chatsLoaded = false
		c.chatsErr = r.Err
		c.log.Error("chat list unavailable", "error", r.Err)
		return true, nil
	}

	c.chats = r.Chats
	c.chatsLoaded = true
	c.chatsErr = nil
	c.log.Info("chat list loaded", "count", len(r.Chats))

	if len(c.chats) == 0 || c.indexOfLocked(c.selected) >= 0 {
		return true, nil
	}
	return true, c.changeSelectionLocked(c.chats[0].ID)
}
