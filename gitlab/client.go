package gitlab

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andareed/siftly-snippets/logging"
)

const (
	// DefaultBaseURL is used when no instance URL is configured.
	DefaultBaseURL = "https://gitlab.com"

	// DefaultTimeout bounds every request, connect through body read.
	DefaultTimeout = 5 * time.Second

	tokenHeader = "PRIVATE-TOKEN"

	// maxResponseSize caps body reads so a misbehaving server cannot
	// exhaust memory.
	maxResponseSize int64 = 32 << 20
)

// Settings is the per-call connection configuration. It is resolved fresh
// for every operation rather than cached on the client.
type Settings struct {
	BaseURL string
	Token   string
}

// Resolve trims the settings, applies DefaultBaseURL when BaseURL is empty
// and rejects an empty token. defaulted reports whether the default URL
// was applied.
func (s Settings) Resolve() (resolved Settings, defaulted bool, err error) {
	resolved = Settings{
		BaseURL: strings.TrimRight(strings.TrimSpace(s.BaseURL), "/"),
		Token:   strings.TrimSpace(s.Token),
	}
	if resolved.BaseURL == "" {
		resolved.BaseURL = DefaultBaseURL
		defaulted = true
	}
	if resolved.Token == "" {
		return resolved, defaulted, ErrConfigMissing
	}
	return resolved, defaulted, nil
}

// Client issues authenticated read requests against the snippets API.
// It holds no connection settings of its own; see Settings.
type Client struct {
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport. The client's Timeout is left as
// given, so tests can pass httptest's client directly.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout overrides DefaultTimeout on the client's own transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient returns a Client with a DefaultTimeout-bounded transport.
func NewClient(options ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// ListSnippets fetches the snippet index in server order.
func (c *Client) ListSnippets(ctx context.Context, settings Settings) ([]Snippet, error) {
	const op = "list snippets"
	body, requestURL, err := c.get(ctx, op, settings, "/api/v4/snippets", "application/json")
	if err != nil {
		return nil, err
	}
	snippets, err := decodeSnippets(body)
	if err != nil {
		return nil, &FetchError{Op: op, URL: requestURL, Err: err}
	}
	logging.Debugf("gitlab: listed %d snippets", len(snippets))
	return snippets, nil
}

// FetchRaw fetches one snippet's content as text with every carriage
// return removed.
func (c *Client) FetchRaw(ctx context.Context, settings Settings, id SnippetID) (string, error) {
	const op = "fetch raw snippet"
	path := "/api/v4/snippets/" + url.PathEscape(id.String()) + "/raw"
	body, _, err := c.get(ctx, op, settings, path, "")
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(body), "\r", ""), nil
}

// get sends an authenticated GET and returns the body of a 2xx response.
// accept is sent as the Accept header when set.
func (c *Client) get(ctx context.Context, op string, settings Settings, path, accept string) ([]byte, string, error) {
	resolved, _, err := settings.Resolve()
	if err != nil {
		return nil, "", err
	}

	requestURL := resolved.BaseURL + path
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, requestURL, &FetchError{Op: op, URL: requestURL, Err: err}
	}
	request.Header.Set(tokenHeader, resolved.Token)
	if accept != "" {
		request.Header.Set("Accept", accept)
	}

	start := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		logging.Warnf("gitlab: GET %s failed after %s: %v", path, time.Since(start), err)
		return nil, requestURL, &FetchError{Op: op, URL: requestURL, Err: err}
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return nil, requestURL, &FetchError{Op: op, URL: requestURL, StatusCode: response.StatusCode, Err: fmt.Errorf("reading response body: %w", err)}
	}
	logging.Debugf("gitlab: GET %s -> %d in %s", path, response.StatusCode, time.Since(start))

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, requestURL, &FetchError{
			Op:         op,
			URL:        requestURL,
			StatusCode: response.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", summarizeBody(body)),
		}
	}
	return body, requestURL, nil
}

// summarizeBody keeps error messages to a single readable line.
func summarizeBody(body []byte) string {
	text := strings.TrimSpace(strings.ReplaceAll(string(body), "\n", " "))
	if text == "" {
		return "(empty body)"
	}
	if len(text) > 200 {
		return text[:200] + "..."
	}
	return text
}
