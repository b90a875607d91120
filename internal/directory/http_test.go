package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zhubert/boxpad/internal/errors"
)

var (
	_ Client = (*HTTPClient)(nil)
	_ Client = (*CachedClient)(nil)
	_ Client = (*Fixture)(nil)
)

func testUsers(n int) []map[string]any {
	users := make([]map[string]any, n)
	for i := range users {
		id := i + 1
		users[i] = map[string]any{
			"id":       id,
			"name":     fmt.Sprintf("User%d Last%d", id, id),
			"username": fmt.Sprintf("user%d", id),
			"email":    fmt.Sprintf("user%d@example.com", id),
			"phone":    fmt.Sprintf("555-010%d", id),
			"website":  fmt.Sprintf("site%d.org", id),
			"address":  map[string]any{"city": "Gwenborough"},
			"company": map[string]any{
				"name":        fmt.Sprintf("Company %d", id),
				"catchPhrase": fmt.Sprintf("Catchphrase %d", id),
			},
		}
	}
	return users
}

// newDirectoryServer serves a JSONPlaceholder-shaped API and records paths.
func newDirectoryServer(t *testing.T, users int) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.String())
		writeJSON(w, testUsers(users))
	})
	mux.HandleFunc("/users/", func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.String())
		var id int
		if _, err := fmt.Sscanf(r.URL.Path, "/users/%d", &id); err != nil || id < 1 || id > users {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("{}"))
			return
		}
		writeJSON(w, testUsers(users)[id-1])
	})
	mux.HandleFunc("/comments", func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.String())
		var postID int
		_, _ = fmt.Sscanf(r.URL.Query().Get("postId"), "%d", &postID)
		comments := make([]map[string]any, 8)
		for i := range comments {
			comments[i] = map[string]any{
				"id":     i + 1,
				"postId": postID,
				"body":   fmt.Sprintf("comment %d on %d", i, postID),
			}
		}
		writeJSON(w, comments)
	})
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.String())
		var limit int
		_, _ = fmt.Sscanf(r.URL.Query().Get("_limit"), "%d", &limit)
		posts := make([]map[string]any, limit)
		for i := range posts {
			posts[i] = map[string]any{"id": i + 1, "userId": 1, "title": "alpha beta gamma delta"}
		}
		writeJSON(w, posts)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &paths
}

func TestHTTPClient_ListChats(t *testing.T) {
	server, paths := newDirectoryServer(t, 10)
	client := NewHTTPClientWithClient(server.Client(), server.URL+"/")

	chats, err := client.ListChats(context.Background(), 8)
	require.NoError(t, err)
	require.Len(t, chats, 8)
	require.Equal(t, []string{"/users"}, *paths)

	first := chats[0]
	require.Equal(t, ID("1"), first.ID)
	require.Equal(t, "User1 Last1", first.DisplayName)
	require.Equal(t, "Catchphrase 1", first.PreviewText)
	require.Equal(t, "20:00", first.DisplayTime)
	require.Equal(t, "U", first.AvatarGlyph)
	require.Equal(t, Palette[0], first.AvatarColor)
	require.False(t, first.Unread)
	require.Equal(t, "user1@example.com", first.ContactEmail)
	require.Equal(t, "555-0101", first.ContactPhone)
	require.Equal(t, "user1", first.Username)

	require.Equal(t, "21:10", chats[1].DisplayTime)
	require.Equal(t, Palette[7], chats[7].AvatarColor)
}

func TestHTTPClient_ListMessages(t *testing.T) {
	server, paths := newDirectoryServer(t, 10)
	client := NewHTTPClientWithClient(server.Client(), server.URL)

	messages, err := client.ListMessages(context.Background(), "3", 6)
	require.NoError(t, err)
	require.Len(t, messages, 6)
	require.Equal(t, []string{"/comments?postId=3"}, *paths)

	require.Equal(t, SenderOther, messages[0].Sender)
	require.False(t, messages[0].IsSelf())
	require.Equal(t, SenderSelf, messages[1].Sender)
	require.True(t, messages[1].IsSelf())
	require.Equal(t, "comment 0 on 3", messages[0].Body)
	require.Equal(t, "23:00", messages[0].DisplayTime)
	require.Equal(t, "22:10", messages[1].DisplayTime)
	require.Equal(t, "23:50", messages[5].DisplayTime)
}

func TestHTTPClient_GetContactDetails(t *testing.T) {
	server, paths := newDirectoryServer(t, 10)
	client := NewHTTPClientWithClient(server.Client(), server.URL)

	details, err := client.GetContactDetails(context.Background(), "4")
	require.NoError(t, err)
	require.Equal(t, []string{"/users/4"}, *paths)
	require.Equal(t, ContactDetails{
		FirstName:   "User4",
		LastName:    "Last4",
		Email:       "user4@example.com",
		Phone:       "555-0104",
		CompanyName: "Company 4",
		Website:     "site4.org",
		Username:    "user4",
	}, details)
}

func TestHTTPClient_NotFoundIsNetworkError(t *testing.T) {
	server, _ := newDirectoryServer(t, 2)
	client := NewHTTPClientWithClient(server.Client(), server.URL)

	_, err := client.GetContactDetails(context.Background(), "99")
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.KindNetwork))
	require.Contains(t, err.Error(), "404")
}

func TestHTTPClient_SidebarLists(t *testing.T) {
	server, paths := newDirectoryServer(t, 12)
	client := NewHTTPClientWithClient(server.Client(), server.URL)

	users, err := client.ListSidebarUsers(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, users, 10)
	require.Equal(t, SidebarPalette[1], users[0].AvatarColor) // id 1 % 5
	require.Equal(t, SidebarPalette[0], users[4].AvatarColor) // id 5 % 5

	channels, err := client.ListSidebarChannels(context.Background(), 8)
	require.NoError(t, err)
	require.Len(t, channels, 8)
	require.Equal(t, "alpha beta gamma", channels[0].Title)
	require.Equal(t, ID("1"), channels[0].UserID)

	require.Equal(t, []string{"/users", "/posts?_limit=8"}, *paths)
}

func TestHTTPClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()
	client := NewHTTPClientWithClient(server.Client(), server.URL)

	chats, err := client.ListChats(context.Background(), 8)
	require.Error(t, err)
	require.Nil(t, chats)
	require.True(t, errors.Is(err, errors.KindNetwork))
}

func TestHTTPClient_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"oops": `))
	}))
	defer server.Close()
	client := NewHTTPClientWithClient(server.Client(), server.URL)

	_, err := client.ListSidebarUsers(context.Background(), 10)
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.KindInvalid))
}

func TestHTTPClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewHTTPClient(url, time.Second)
	_, err := client.ListChats(context.Background(), 8)
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.KindNetwork))
}

func TestHTTPClient_ContextCancelled(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewHTTPClientWithClient(server.Client(), server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.ListChats(ctx, 8)
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.KindNetwork))
}

func TestNewHTTPClient_Defaults(t *testing.T) {
	client := NewHTTPClient("", 0)
	require.Equal(t, DefaultBaseURL, client.BaseURL())
	require.Equal(t, defaultHTTPTimeout, client.httpClient.Timeout)
}
