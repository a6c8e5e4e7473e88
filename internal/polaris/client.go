// Package polaris is a client for the Polaris analytics service REST API.
package polaris

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/salmonumbrella/polaris-cli/internal/debug"
	clierrors "github.com/salmonumbrella/polaris-cli/internal/errors"
)

const (
	apiDomain      = "imply.io"
	defaultTimeout = 30 * time.Second
)

// Client is a Polaris API client for one organization. It acquires an
// OAuth access token lazily and renews it once when a request comes back
// 401, retrying the request with the fresh token.
type Client struct {
	httpClient   *http.Client
	org          string
	clientID     string
	clientSecret string
	envPrefix    string
	baseURL      string
	tokenURL     string
	token        *Token
	trace        bool
	projectID    string
}

// NewClient creates a client for the given organization using OAuth
// client-credentials.
func NewClient(org, clientID, clientSecret string) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: defaultTimeout},
		org:          org,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// WithHTTPClient sets a custom HTTP client.
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

// WithDomain targets a non-production cell, e.g. "stage" resolves hosts
// under stage.imply.io.
func (c *Client) WithDomain(domain string) *Client {
	if !isBlank(domain) {
		c.envPrefix = domain + "."
	}
	return c
}

// WithBaseURL overrides the API base URL (useful for testing).
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithTokenURL overrides the OAuth token endpoint (useful for testing).
func (c *Client) WithTokenURL(tokenURL string) *Client {
	c.tokenURL = tokenURL
	return c
}

// WithTrace logs every request at debug level.
func (c *Client) WithTrace() *Client {
	c.trace = true
	return c
}

// WithDebugOutput logs full HTTP request/response traffic to w.
func (c *Client) WithDebugOutput(w io.Writer) *Client {
	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.httpClient.Transport = debug.NewTransport(base, w)
	return c
}

func (c *Client) apiBase() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return fmt.Sprintf("https://api.%s%s/v1", c.envPrefix, apiDomain)
}

// buildURL expands an endpoint's path template with escaped arguments and
// prefixes the API base.
func (c *Client) buildURL(ep Endpoint, args ...string) string {
	path := ep.Path
	if len(args) > 0 {
		quoted := make([]any, len(args))
		for i, a := range args {
			quoted[i] = url.PathEscape(a)
		}
		path = fmt.Sprintf(ep.Path, quoted...)
	}
	return c.apiBase() + path
}

// do submits a request with bearer auth. On a 401 response it renews the
// token and retries exactly once. Responses of 400+ are decoded into an
// APIError; the caller owns the body otherwise.
func (c *Client) do(ctx context.Context, ep Endpoint, args []string, query url.Values, contentType string, body []byte) (*http.Response, error) {
	if c.token == nil {
		if err := c.RenewToken(ctx); err != nil {
			return nil, err
		}
	}

	requestURL := c.buildURL(ep, args...)
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}
	if c.trace {
		slog.Debug("polaris request", "method", ep.Method, "url", requestURL)
	}

	resp, err := c.doOnce(ctx, ep.Method, requestURL, contentType, body)
	if err != nil {
		return nil, clierrors.WrapContext(ep.Method, requestURL, 0, err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		_ = resp.Body.Close()
		if err := c.RenewToken(ctx); err != nil {
			return nil, err
		}
		resp, err = c.doOnce(ctx, ep.Method, requestURL, contentType, body)
		if err != nil {
			return nil, clierrors.WrapContext(ep.Method, requestURL, 0, err)
		}
	}

	if resp.StatusCode >= 400 {
		defer func() { _ = resp.Body.Close() }()
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil {
			apiErr.Response = &errResp
		}
		return nil, apiErr
	}
	return resp, nil
}

func (c *Client) doOnce(ctx context.Context, method, requestURL, contentType string, body []byte) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != nil {
		req.Header.Set("Authorization", "Bearer "+c.token.AccessToken)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.httpClient.Do(req)
}

// getJSON performs a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, ep Endpoint, args []string, query url.Values, out any) error {
	resp, err := c.do(ctx, ep, args, query, "", nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// postJSON performs a POST with a JSON body, decoding the response into out.
func (c *Client) postJSON(ctx context.Context, ep Endpoint, args []string, body, out any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}
	resp, err := c.do(ctx, ep, args, nil, "application/json", payload)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// postRaw performs a POST with a preassembled body.
func (c *Client) postRaw(ctx context.Context, ep Endpoint, args []string, contentType string, body []byte) error {
	resp, err := c.do(ctx, ep, args, nil, contentType, body)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}

// deleteReq performs a DELETE, discarding any response body.
func (c *Client) deleteReq(ctx context.Context, ep Endpoint, args []string) error {
	resp, err := c.do(ctx, ep, args, nil, "", nil)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}
