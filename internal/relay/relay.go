// Package relay forwards lookup payloads to the upstream email variation service.
// It performs exactly one outbound call per request and never retries.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jonathan/email-finder/internal/types"
)

// VariationsPath is the upstream endpoint that computes email variations.
const VariationsPath = "/check_email_variations"

// FallbackMessage is used when an error carries no message of its own.
const FallbackMessage = "Failed to fetch data"

// Error represents a failure talking to the upstream service.
type Error struct {
	URL        string
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client posts JSON bodies to the upstream variations endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Client for the upstream rooted at baseURL.
// The outbound client has no timeout of its own.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{
			URL:     baseURL,
			Message: "invalid upstream URL",
			Cause:   err,
		}
	}

	endpoint, err := url.JoinPath(baseURL, VariationsPath)
	if err != nil {
		return nil, &Error{
			URL:     baseURL,
			Message: "invalid upstream URL",
			Cause:   err,
		}
	}

	c := &Client{
		httpClient: &http.Client{},
		endpoint:   endpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the full upstream URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Forward posts body unchanged to the upstream and returns the raw response body.
// A non-2xx status or a body that is not valid JSON is reported as an *Error.
func (c *Client) Forward(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{
			URL:     c.endpoint,
			Message: "failed to create upstream request",
			Cause:   err,
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     c.endpoint,
			Message: "upstream request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			URL:        c.endpoint,
			Message:    "failed to read upstream response",
			StatusCode: resp.StatusCode,
			Cause:      err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			URL:        c.endpoint,
			Message:    fmt.Sprintf("upstream responded with status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	if !json.Valid(respBody) {
		return nil, &Error{
			URL:        c.endpoint,
			Message:    "upstream returned invalid JSON",
			StatusCode: resp.StatusCode,
		}
	}

	return respBody, nil
}

// Lookup sends req to the upstream and decodes the reply.
// The raw body is returned alongside so callers can validate or print it as received.
func (c *Client) Lookup(ctx context.Context, req types.LookupRequest) (*types.LookupResponse, []byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode lookup request: %w", err)
	}

	raw, err := c.Forward(ctx, body)
	if err != nil {
		return nil, nil, err
	}

	var resp types.LookupResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, raw, &Error{
			URL:     c.endpoint,
			Message: "failed to decode upstream response",
			Cause:   err,
		}
	}
	return &resp, raw, nil
}

// Message returns the text shown to callers for err, falling back to FallbackMessage.
func Message(err error) string {
	if err == nil || err.Error() == "" {
		return FallbackMessage
	}
	return err.Error()
}
