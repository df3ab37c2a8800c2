package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Credentials is the Basic auth credential pair for one vendor feed.
type Credentials struct {
	AppID     string
	AppSecret string
}

// Client fetches one vendor's raw item list over HTTP. It performs no
// retries; retry policy belongs to the orchestration layer.
type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      Credentials
}

// NewClient creates a feed client for the given endpoint. A zero timeout
// defaults to 30 seconds.
func NewClient(baseURL string, creds Credentials, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		creds:      creds,
	}
}

// FetchItems GETs the feed and returns the decoded "data" array as
// loosely-typed objects.
//
// Vendors disagree on payload discipline, so decoding is deliberately
// tolerant: a response that is valid JSON but not {"data": [...]} yields
// an empty list, and individual non-object elements are dropped. Only
// transport failures, non-2xx statuses, and invalid JSON are errors.
func (c *Client) FetchItems(ctx context.Context) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	req.SetBasicAuth(c.creds.AppID, c.creds.AppSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed response: %w", err)
	}

	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		if !json.Valid(body) {
			return nil, fmt.Errorf("failed to decode feed response: %w", err)
		}
		// Valid JSON, unexpected shape: treat as an empty feed.
		return []map[string]any{}, nil
	}

	items := make([]map[string]any, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		var item map[string]any
		if err := json.Unmarshal(raw, &item); err != nil || item == nil {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}
