package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// API hosts. The test environment is a separate deployment with its own
// credentials.
const (
	DefaultHost    = "https://api.mod.io"
	TestHost       = "https://api.test.mod.io"
	DefaultVersion = "v1"
)

const (
	defaultLanguage = "en"
	defaultTimeout  = 30 * time.Second
)

// Client is the low-level HTTP client for the mod.io API. It owns a single
// resty client (and its connection pool) for its whole lifetime.
type Client struct {
	rc     *resty.Client
	apiKey string
	lang   string
	logger zerolog.Logger
	limits rateLimitTracker

	mu     sync.RWMutex // guards token and closed
	token  string
	closed bool
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL overrides the full base URL, including the version segment.
// Mostly useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.rc.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}
}

// WithHost selects the API host (production or test environment). The
// version segment is appended automatically.
func WithHost(host, version string) Option {
	return func(c *Client) {
		c.rc.SetBaseURL(strings.TrimRight(host, "/") + "/" + version)
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.rc.SetTimeout(timeout)
	}
}

// WithHTTPClient swaps the underlying *http.Client, keeping the configured
// base URL and timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		base := c.rc.BaseURL
		timeout := c.rc.GetClient().Timeout
		c.rc = resty.NewWithClient(hc)
		c.rc.SetBaseURL(base)
		if hc.Timeout == 0 {
			c.rc.SetTimeout(timeout)
		}
	}
}

// WithLanguage sets the Accept-Language header value for all requests.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.lang = lang
	}
}

// WithAccessToken installs an OAuth2 access token for bearer authentication.
func WithAccessToken(token string) Option {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

// WithLogger sets the logger used for per-request debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates an API client. At least one of the API key or an access token
// (via WithAccessToken) must be supplied.
func New(apiKey string, opts ...Option) (*Client, error) {
	c := &Client{
		rc:     resty.New(),
		apiKey: strings.TrimSpace(apiKey),
		lang:   defaultLanguage,
		logger: zerolog.Nop(),
	}
	c.rc.SetBaseURL(DefaultHost + "/" + DefaultVersion)
	c.rc.SetTimeout(defaultTimeout)

	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" && c.token == "" {
		return nil, ErrMissingCredentials
	}

	return c, nil
}

// SetAccessToken replaces the access token used for bearer authentication.
// Safe to call while requests are in flight; only requests issued afterwards
// pick up the new token.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// AccessToken returns the access token currently held, or "".
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// APIKey returns the API key the client was constructed with, or "".
func (c *Client) APIKey() string {
	return c.apiKey
}

// RateLimit returns the most recent rate-limit snapshot reported by the API.
func (c *Client) RateLimit() RateLimit {
	return c.limits.snapshot()
}

// Request carries the per-call parameters for Do.
type Request struct {
	// Query parameters appended to the URL (filter grammar, pagination).
	Query url.Values
	// Form fields sent as an application/x-www-form-urlencoded body.
	Form url.Values
	// APIKeyAuth forces api_key query authentication even when an access
	// token is held. The OAuth email endpoints require this mode.
	APIKeyAuth bool
}

// Do issues a single HTTP request and decodes a JSON response body into
// result (which may be nil). No retries are performed; failures surface to
// the caller as *Error or *NetworkError.
func (c *Client) Do(ctx context.Context, method, path string, req *Request, result any) error {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return ErrClosed
	}
	token := c.token
	c.mu.RUnlock()

	if req == nil {
		req = &Request{}
	}
	if req.APIKeyAuth {
		token = ""
	}
	if token == "" && c.apiKey == "" {
		return ErrMissingAPIKey
	}

	requestID := uuid.NewString()

	r := c.rc.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("Accept-Language", c.lang).
		SetHeader("X-Request-Id", requestID)

	if token != "" {
		r.SetAuthToken(token)
	} else {
		r.SetQueryParam("api_key", c.apiKey)
	}
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if len(req.Form) > 0 {
		r.SetFormDataFromValues(req.Form)
	}
	if result != nil {
		r.SetResult(result)
	}

	resp, err := r.Execute(method, path)
	if err != nil {
		return &NetworkError{
			Err:     err,
			URL:     c.rc.BaseURL + path,
			Timeout: isTimeout(err),
		}
	}

	c.limits.update(resp.Header())

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Str("request_id", requestID).
		Msg("mod.io api request")

	if resp.IsError() {
		return parseErrorResponse(resp)
	}

	return nil
}

// Close releases pooled connections. Idempotent; any Do call after the first
// Close fails with ErrClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.rc.GetClient().CloseIdleConnections()
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}
