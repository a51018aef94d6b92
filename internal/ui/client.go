package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/email-finder/internal/relay"
	"github.com/jonathan/email-finder/internal/types"
)

// CheckEmailPath is the proxy endpoint the presentation layer talks to.
const CheckEmailPath = "/api/check-email"

// APIError is a non-2xx reply from the proxy endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// APIClient calls a running server's proxy endpoint over HTTP.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates an APIClient for the server at baseURL.
// A nil httpClient uses http.DefaultClient.
func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Check posts req to the proxy endpoint and decodes the relayed response.
// On a non-2xx reply the message is taken from the body's "error" field.
func (c *APIClient) Check(ctx context.Context, req types.LookupRequest) (*types.LookupResponse, error) {
	resp, _, err := c.CheckRaw(ctx, req)
	return resp, err
}

// CheckRaw is Check that also returns the relayed body exactly as received.
func (c *APIClient) CheckRaw(ctx context.Context, req types.LookupRequest) (*types.LookupResponse, []byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode lookup request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+CheckEmailPath, bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp types.ErrorResponse
		_ = json.Unmarshal(raw, &errResp)
		msg := errResp.Error
		if msg == "" {
			msg = relay.FallbackMessage
		}
		return nil, raw, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	var lookup types.LookupResponse
	if err := json.Unmarshal(raw, &lookup); err != nil {
		return nil, raw, fmt.Errorf("failed to decode response: %w", err)
	}
	return &lookup, raw, nil
}
