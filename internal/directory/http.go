package directory

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/zhubert/boxpad/internal/errors"
	"github.com/zhubert/boxpad/internal/logger"
)

// DefaultBaseURL is the public demo directory.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

const defaultHTTPTimeout = 15 * time.Second

// HTTPClient implements Client against a JSONPlaceholder-compatible REST API:
// users, comments filtered by postId, single users and posts.
type HTTPClient struct {
	httpClient *http.Client
	baseURL    string
	log        *slog.Logger
}

// NewHTTPClient creates a directory client for baseURL with the given request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return NewHTTPClientWithClient(&http.Client{Timeout: timeout}, baseURL)
}

// NewHTTPClientWithClient creates a directory client with a custom HTTP client (for testing).
func NewHTTPClientWithClient(client *http.Client, baseURL string) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		httpClient: client,
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        logger.WithComponent("directory"),
	}
}

// BaseURL returns the service root requests are sent to.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// getJSON issues a GET for path and decodes the JSON body into out.
// Transport failures and non-2xx statuses are network-kind errors.
func (c *HTTPClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.DirectoryRequestFailed(path, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("request failed", "path", path, "error", err)
		return errors.DirectoryRequestFailed(path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("request done", "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.DirectoryBadStatus(path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.DirectoryDecodeFailed(path, err)
	}
	return nil
}

// ListChats lists directory users as chat summaries, in directory order.
func (c *HTTPClient) ListChats(ctx context.Context, limit int) ([]ChatSummary, error) {
	var users []wireUser
	if err := c.getJSON(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	return mapChats(users, limit), nil
}

// ListMessages lists the comments filed under chatID as transcript messages.
func (c *HTTPClient) ListMessages(ctx context.Context, chatID ID, limit int) ([]Message, error) {
	var comments []wireComment
	query := url.Values{"postId": []string{string(chatID)}}
	if err := c.getJSON(ctx, "/comments", query, &comments); err != nil {
		return nil, err
	}
	return mapMessages(comments, limit), nil
}

// GetContactDetails looks up the user behind chatID.
func (c *HTTPClient) GetContactDetails(ctx context.Context, chatID ID) (ContactDetails, error) {
	var user wireUser
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(string(chatID)), nil, &user); err != nil {
		return ContactDetails{}, err
	}
	return mapContact(user), nil
}

// ListSidebarUsers lists directory users for the sidebar roster.
func (c *HTTPClient) ListSidebarUsers(ctx context.Context, limit int) ([]SidebarUser, error) {
	var users []wireUser
	if err := c.getJSON(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	return mapSidebarUsers(users, limit), nil
}

// ListSidebarChannels lists posts as channels. The limit is sent to the
// server and enforced again locally.
func (c *HTTPClient) ListSidebarChannels(ctx context.Context, limit int) ([]SidebarChannel, error) {
	var posts []wirePost
	query := url.Values{"_limit": []string{strconv.Itoa(limit)}}
	if err := c.getJSON(ctx, "/posts", query, &posts); err != nil {
		return nil, err
	}
	return mapChannels(posts, limit), nil
}
