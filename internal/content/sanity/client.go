package sanity

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
)

// maxGETURLLength is the longest query URL sent as GET; longer queries are
// POSTed as JSON instead.
const maxGETURLLength = 11264

const maxResponseBytes = 16 << 20

// ErrMalformedResponse marks a response body that is not a query envelope.
var ErrMalformedResponse = errors.New("malformed content response")

// Querier runs read-only GROQ queries and returns the raw result payload.
type Querier interface {
	Query(ctx context.Context, query string, params map[string]any) (json.RawMessage, error)
}

// ResponseError is a non-2xx answer from the query API.
type ResponseError struct {
	StatusCode  int
	Type        string
	Description string
}

// Error renders the status and API description.
func (e *ResponseError) Error() string {
	description := strings.TrimSpace(e.Description)
	if description == "" {
		description = http.StatusText(e.StatusCode)
	}
	if e.Type != "" {
		return fmt.Sprintf("content api status %d (%s): %s", e.StatusCode, e.Type, description)
	}
	return fmt.Sprintf("content api status %d: %s", e.StatusCode, description)
}

// Client is a handle on one project/dataset pair.
type Client struct {
	cfg        Config
	httpClient *http.Client
	baseURL    *url.URL
}

// ClientOption customizes a Client.
type ClientOption func(*Client) error

// WithHTTPClient replaces the HTTP client used for queries.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) error {
		if httpClient != nil {
			c.httpClient = httpClient
		}
		return nil
	}
}

// WithBaseURL points the client at a different API host.
func WithBaseURL(raw string) ClientOption {
	return func(c *Client) error {
		parsed, err := url.Parse(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("parse base url: %w", err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("base url %q must be absolute", raw)
		}
		c.baseURL = parsed
		return nil
	}
}

// NewClient validates cfg and builds a query client for it.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	host := "api.sanity.io"
	if cfg.UseCDN {
		host = "apicdn.sanity.io"
	}
	c := &Client{
		cfg:        cfg,
		httpClient: http.DefaultClient,
		baseURL:    &url.URL{Scheme: "https", Host: cfg.ProjectID + "." + host},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Config returns the normalized configuration the client was built from.
func (c *Client) Config() Config {
	return c.cfg
}

// Query runs query with params bound as $name variables.
func (c *Client) Query(ctx context.Context, query string, params map[string]any) (json.RawMessage, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is required")
	}
	req, err := c.newQueryRequest(ctx, query, params)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query content api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read content response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseResponseError(resp.StatusCode, body)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(envelope.Result) == 0 {
		return json.RawMessage("null"), nil
	}
	return envelope.Result, nil
}

func (c *Client) newQueryRequest(ctx context.Context, query string, params map[string]any) (*http.Request, error) {
	endpoint := c.baseURL.JoinPath("v"+c.cfg.APIVersion, "data", "query", c.cfg.Dataset)

	values := url.Values{}
	values.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}
	endpoint.RawQuery = values.Encode()

	if len(endpoint.String()) <= maxGETURLLength {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("build query request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	endpoint.RawQuery = ""
	payload, err := json.Marshal(struct {
		Query  string         `json:"query"`
		Params map[string]any `json:"params,omitempty"`
	}{Query: query, Params: params})
	if err != nil {
		return nil, fmt.Errorf("encode query body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build query request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func parseResponseError(statusCode int, body []byte) error {
	respErr := &ResponseError{StatusCode: statusCode}
	var payload struct {
		Error struct {
			Description string `json:"description"`
			Type        string `json:"type"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		respErr.Type = payload.Error.Type
		respErr.Description = payload.Error.Description
		if respErr.Description == "" {
			respErr.Description = payload.Message
		}
	}
	return respErr
}
