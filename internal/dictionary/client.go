package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public Free Dictionary endpoint. The looked-up word is
// appended as the final path segment.
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// DefaultTimeout bounds a single lookup.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when the API has no definitions for the word.
	ErrNotFound = errors.New("dictionary: no definitions found")
	// ErrUnavailable covers transport failures and unexpected statuses.
	ErrUnavailable = errors.New("dictionary: service unavailable")
	// ErrMalformed is returned when a 200 response is not a JSON array.
	ErrMalformed = errors.New("dictionary: malformed response")
)

// StatusError reports a non-2xx, non-404 response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("dictionary: unexpected status %d", e.Code)
}

// Is lets callers match any status failure against ErrUnavailable.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnavailable
}

// Client fetches entries from the dictionary API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption customises a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at another endpoint (tests, mirrors).
func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		if trimmed := strings.TrimRight(strings.TrimSpace(base), "/"); trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient returns a client for DefaultBaseURL unless overridden.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the endpoint the client queries.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Lookup fetches all entries for word. The entries are returned in the order
// the API sent them. A cancelled ctx yields an error wrapping
// context.Canceled.
func (c *Client) Lookup(ctx context.Context, word string) ([]Entry, error) {
	reqURL := c.baseURL + "/" + url.PathEscape(word)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dictionary: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, fmt.Errorf("dictionary: lookup %q: %w", word, context.Canceled)
		}
		return nil, fmt.Errorf("%w: lookup %q: %v", ErrUnavailable, word, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %q", ErrNotFound, word)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, fmt.Errorf("dictionary: read body: %w", context.Canceled)
		}
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	// A literal null decodes without error but is not a result list.
	if entries == nil {
		return nil, fmt.Errorf("%w: null body", ErrMalformed)
	}
	return entries, nil
}
