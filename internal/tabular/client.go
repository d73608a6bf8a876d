package tabular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL    = "https://api.airtable.com/v0"
	defaultMaxRetries = 3
	defaultRetryBase  = 500 * time.Millisecond
	maxRetryDelay     = 8 * time.Second
)

// Record is one row returned by the tabular records API.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// listResponse is the subset of the API page response we care about.
type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

// RecordLister captures the ability to list every record of a table.
type RecordLister interface {
	ListRecords(ctx context.Context, table string) ([]Record, error)
}

// Client is a thin wrapper around an Airtable-style tabular REST API. Page
// requests are retried with exponential backoff up to a bounded number of
// attempts; pagination offsets are followed until the table is exhausted.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries int
	retryBase  time.Duration
}

// NewClient constructs a client with sane defaults.
func NewClient(apiKey string, opts ...func(*Client)) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: defaultMaxRetries,
		retryBase:  defaultRetryBase,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithHTTPClient overrides the internal HTTP client.
func WithHTTPClient(hc *http.Client) func(*Client) {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the default API base URL (useful for tests).
func WithBaseURL(u string) func(*Client) {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithRetry overrides the retry budget and the initial backoff delay.
func WithRetry(maxRetries int, base time.Duration) func(*Client) {
	return func(c *Client) {
		if maxRetries >= 0 {
			c.maxRetries = maxRetries
		}
		if base > 0 {
			c.retryBase = base
		}
	}
}

// ListRecords fetches every record of the given table, following pagination
// offsets until the API stops returning one.
func (c *Client) ListRecords(ctx context.Context, table string) ([]Record, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("tabular: missing API key")
	}
	if table == "" {
		return nil, fmt.Errorf("tabular: missing table name")
	}

	var records []Record
	offset := ""
	for {
		page, err := c.getPage(ctx, table, offset)
		if err != nil {
			return nil, err
		}
		records = append(records, page.Records...)
		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

// getPage fetches one page with bounded exponential backoff.
func (c *Client) getPage(ctx context.Context, table, offset string) (*listResponse, error) {
	var lastErr error
	delay := c.retryBase

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
			if delay > maxRetryDelay {
				delay = maxRetryDelay
			}
		}

		page, err := c.fetchPage(ctx, table, offset)
		if err == nil {
			return page, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("tabular: %d attempts failed: %w", c.maxRetries+1, lastErr)
}

func (c *Client) fetchPage(ctx context.Context, table, offset string) (*listResponse, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(table)
	if offset != "" {
		endpoint += "?offset=" + url.QueryEscape(offset)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("tabular: create request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tabular: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("tabular: api error %d: %s", resp.StatusCode, string(data))
	}

	var payload listResponse
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("tabular: decode response: %w", err)
	}

	return &payload, nil
}
