package directory

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/zhubert/boxpad/internal/errors"
)

// Operation names used for failure injection and call counting on Fixture.
const (
	OpListChats           = "ListChats"
	OpListMessages        = "ListMessages"
	OpGetContactDetails   = "GetContactDetails"
	OpListSidebarUsers    = "ListSidebarUsers"
	OpListSidebarChannels = "ListSidebarChannels"
)

// Fixture is an in-memory directory with deterministic records. It backs
// demo mode and tests, and goes through the same mapping as HTTPClient.
type Fixture struct {
	mu       sync.Mutex
	users    []wireUser
	comments map[int][]wireComment
	posts    []wirePost
	delay    time.Duration
	failures map[string]error
	calls    map[string]int
}

var fixtureUsers = []struct {
	name, username, company, catchPhrase, website string
}{
	{"Leanne Graham", "Bret", "Romaguera-Crona", "Multi-layered client-server neural-net", "hildegard.org"},
	{"Ervin Howell", "Antonette", "Deckow-Crist", "Proactive didactic contingency", "anastasia.net"},
	{"Clementine Bauch", "Samantha", "Romaguera-Jacobson", "Face to face bifurcated interface", "ramiro.info"},
	{"Patricia Lebsack", "Karianne", "Robel-Corkery", "Multi-tiered zero tolerance productivity", "kale.biz"},
	{"Chelsey Dietrich", "Kamren", "Keebler LLC", "User-centric fault-tolerant solution", "demarco.info"},
	{"Dennis Schulist", "Leopoldo_Corkery", "Considine-Lockman", "Synchronised bottom-line interface", "ola.org"},
	{"Kurtis Weissnat", "Elwyn.Skiles", "Johns Group", "Configurable multimedia task-force", "elvis.io"},
	{"Nicholas Runolfsdottir", "Maxime_Nienow", "Abernathy Group", "Implemented secondary concept", "jacynthe.com"},
	{"Glenna Reichert", "Delphine", "Yost and Sons", "Switchable contextually-based project", "conrad.com"},
	{"Clementina DuBuque", "Moriah.Stanton", "Hoeger LLC", "Centralized empowering task-force", "ambrose.net"},
}

var fixtureBodies = []string{
	"Thanks for getting back to me so quickly, the invoice looks right now.",
	"Happy to help! Let me know if anything else comes up with the account.",
	"Could we move the onboarding call to Thursday afternoon instead?",
	"Thursday works. I've sent a new invite for 3pm, see you then.",
	"One more thing: the export still shows the old billing address.",
	"Good catch. I've updated it on our side, it should sync within the hour.",
}

var fixtureTitles = []string{
	"sunt aut facere repellat provident",
	"qui est esse",
	"ea molestias quasi exercitationem repellat",
	"eum et est occaecati",
	"nesciunt quas odio",
	"dolorem eum magni eos aperiam",
	"magnam facilis autem",
	"dolorem dolore est ipsam",
	"nesciunt iure omnis dolorem tempora",
	"optio molestias id quia eum",
}

// NewFixture returns a fixture populated with ten users, six comments per
// user and ten posts.
func NewFixture() *Fixture {
	f := &Fixture{
		comments: make(map[int][]wireComment),
		failures: make(map[string]error),
		calls:    make(map[string]int),
	}
	for i, u := range fixtureUsers {
		id := i + 1
		f.users = append(f.users, wireUser{
			ID:       id,
			Name:     u.name,
			Username: u.username,
			Email:    fmt.Sprintf("%s@%s", u.username, u.website),
			Phone:    fmt.Sprintf("1-770-736-80%02d", id),
			Website:  u.website,
			Company:  wireCompany{Name: u.company, CatchPhrase: u.catchPhrase},
		})
		for j, body := range fixtureBodies {
			f.comments[id] = append(f.comments[id], wireComment{
				ID:     (id-1)*len(fixtureBodies) + j + 1,
				PostID: id,
				Body:   body,
			})
		}
	}
	for i, title := range fixtureTitles {
		f.posts = append(f.posts, wirePost{ID: i + 1, UserID: i/2 + 1, Title: title})
	}
	return f
}

// SetDelay makes every call wait d (or until ctx is done) before answering.
func (f *Fixture) SetDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delay = d
}

// Fail makes every call of op return err until cleared with a nil err.
func (f *Fixture) Fail(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.failures, op)
		return
	}
	f.failures[op] = err
}

// Calls returns how many times op has been invoked.
func (f *Fixture) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

// begin records the call and returns the injected failure for op, if any.
func (f *Fixture) begin(ctx context.Context, op string) error {
	f.mu.Lock()
	f.calls[op]++
	delay := f.delay
	failure := f.failures[op]
	f.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return errors.DirectoryRequestFailed(op, ctx.Err())
		case <-timer.C:
		}
	}
	return failure
}

func (f *Fixture) ListChats(ctx context.Context, limit int) ([]ChatSummary, error) {
	if err := f.begin(ctx, OpListChats); err != nil {
		return nil, err
	}
	return mapChats(f.users, limit), nil
}

func (f *Fixture) ListMessages(ctx context.Context, chatID ID, limit int) ([]Message, error) {
	if err := f.begin(ctx, OpListMessages); err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(string(chatID))
	if err != nil {
		// Unknown subjects yield an empty listing, as the comments endpoint does
		return []Message{}, nil
	}
	return mapMessages(f.comments[n], limit), nil
}

func (f *Fixture) GetContactDetails(ctx context.Context, chatID ID) (ContactDetails, error) {
	if err := f.begin(ctx, OpGetContactDetails); err != nil {
		return ContactDetails{}, err
	}
	for _, u := range f.users {
		if idOf(u.ID) == chatID {
			return mapContact(u), nil
		}
	}
	return ContactDetails{}, errors.DirectoryBadStatus("/users/"+string(chatID), 404)
}

func (f *Fixture) ListSidebarUsers(ctx context.Context, limit int) ([]SidebarUser, error) {
	if err := f.begin(ctx, OpListSidebarUsers); err != nil {
		return nil, err
	}
	return mapSidebarUsers(f.users, limit), nil
}

func (f *Fixture) ListSidebarChannels(ctx context.Context, limit int) ([]SidebarChannel, error) {
	if err := f.begin(ctx, OpListSidebarChannels); err != nil {
		return nil, err
	}
	return mapChannels(f.posts, limit), nil
}
