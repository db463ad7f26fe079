// Package transport provides the HTTP client used to reach the device API.
package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/agentstation/addrename/pkg/constants"
	"github.com/agentstation/addrename/pkg/errors"
)

// Options configures a Client.
type Options struct {
	// Timeout bounds each request. Zero uses constants.DefaultHTTPTimeout.
	Timeout time.Duration
	// Insecure skips TLS certificate verification.
	Insecure bool
}

// Client performs authenticated GET requests against one base URL.
type Client struct {
	http    *http.Client
	auth    Authenticator
	baseURL *url.URL
	apiKey  string
}

// New creates a transport client for baseURL.
func New(baseURL string, auth Authenticator, opts Options) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return nil, errors.NewValidationError("host", fmt.Sprintf("invalid base URL %q", baseURL))
	}
	if auth == nil {
		auth = &NoAuth{}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	if opts.Insecure {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // operator opted in
	}

	return &Client{
		http:    &http.Client{Timeout: timeout, Transport: tr},
		auth:    auth,
		baseURL: u,
	}, nil
}

// SetAPIKey sets the key applied to every later request.
func (c *Client) SetAPIKey(key string) {
	c.apiKey = key
}

// Host returns the host the client talks to.
func (c *Client) Host() string {
	return c.baseURL.Host
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
}

// Get sends a GET to path with the given query parameters. Transport
// failures are returned as ConnectionError; HTTP status codes are left for
// the caller to interpret.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	u := *c.baseURL
	u.Path = path
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		c.auth.Apply(req, c.apiKey)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrCanceled, ctx.Err())
		}
		return nil, errors.WrapConnection(c.baseURL.Host, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapConnection(c.baseURL.Host, err)
	}
	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
