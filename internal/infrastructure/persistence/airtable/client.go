// Package airtable stores pokemons as rows of a remote Airtable-style table
// reached over its REST API.
package airtable

import (
	"bytes"
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

const (
	// maxResponseSize limits the response body size to prevent memory exhaustion
	maxResponseSize = 4 * 1024 * 1024
	// maxPageSize is the largest page the list endpoint returns
	maxPageSize     = 100
	defaultTimeout  = 10 * time.Second
	defaultBaseURL  = "https://api.airtable.com"
	defaultTable    = "pokemons"
	apiVersionPath  = "v0"
	contentTypeJSON = "application/json"
)

var (
	// ErrRequestFailed is returned when the API answers with an error status
	ErrRequestFailed = errors.New("airtable: request failed")
	// ErrUnavailable is returned when the API cannot be reached
	ErrUnavailable = errors.New("airtable: service unavailable")
)

// Config holds the connection settings for one table
type Config struct {
	BaseURL string
	BaseID  string
	Table   string
	APIKey  string
	Timeout time.Duration
}

// Validate checks required settings and fills defaults
func (c *Config) Validate() error {
	if c.BaseID == "" {
		return errors.New("airtable: base id is required")
	}
	if c.APIKey == "" {
		return errors.New("airtable: api key is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("airtable: invalid base url: %w", err)
	}
	if c.Table == "" {
		c.Table = defaultTable
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return nil
}

// Client talks to the records endpoint of a single table
type Client struct {
	config     Config
	endpoint   string
	httpClient *http.Client
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the configured table
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: cfg,
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + "/" + apiVersionPath + "/" +
			url.PathEscape(cfg.BaseID) + "/" + url.PathEscape(cfg.Table),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListQuery selects records from the table
type ListQuery struct {
	Formula    string
	MaxRecords int
	PageSize   int
	Offset     string
	SortField  string
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Formula != "" {
		v.Set("filterByFormula", q.Formula)
	}
	if q.MaxRecords > 0 {
		v.Set("maxRecords", fmt.Sprint(q.MaxRecords))
	}
	if q.PageSize > 0 {
		v.Set("pageSize", fmt.Sprint(min(q.PageSize, maxPageSize)))
	}
	if q.Offset != "" {
		v.Set("offset", q.Offset)
	}
	if q.SortField != "" {
		v.Set("sort[0][field]", q.SortField)
		v.Set("sort[0][direction]", "asc")
	}
	return v
}

// ListRecords returns one page of records
func (c *Client) ListRecords(ctx context.Context, q ListQuery) (*ListResponse, error) {
	body, err := c.doRequest(ctx, http.MethodGet, q.values(), nil)
	if err != nil {
		return nil, err
	}

	var resp ListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("airtable: failed to parse list response: %w", err)
	}
	return &resp, nil
}

// CreateRecord inserts one record and returns it as stored
func (c *Client) CreateRecord(ctx context.Context, fields Fields) (*Record, error) {
	payload, err := json.Marshal(CreateRequest{Records: []NewRecord{{Fields: fields}}})
	if err != nil {
		return nil, fmt.Errorf("airtable: failed to marshal request: %w", err)
	}

	body, err := c.doRequest(ctx, http.MethodPost, nil, payload)
	if err != nil {
		return nil, err
	}

	var resp CreateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("airtable: failed to parse create response: %w", err)
	}
	if len(resp.Records) != 1 {
		return nil, fmt.Errorf("airtable: expected 1 created record, got %d", len(resp.Records))
	}
	return &resp.Records[0], nil
}

// Ping lists at most one record to check reachability and credentials
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.ListRecords(ctx, ListQuery{MaxRecords: 1})
	return err
}

func (c *Client) doRequest(ctx context.Context, method string, query url.Values, payload []byte) ([]byte, error) {
	target := c.endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("airtable: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Accept", contentTypeJSON)
	if payload != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("airtable: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Type != "" {
			return nil, fmt.Errorf("%w: HTTP %d %s: %s", ErrRequestFailed, resp.StatusCode, apiErr.Error.Type, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("%w: HTTP %d", ErrRequestFailed, resp.StatusCode)
	}

	return body, nil
}
