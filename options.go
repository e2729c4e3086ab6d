package modio

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	apiKey      string
	accessToken string
	baseURL     string
	version     string
	language    string
	test        bool
	timeout     time.Duration
	httpClient  *http.Client
	logger      zerolog.Logger
	hasLogger   bool
}

// Option configures the client.
type Option func(*clientConfig)

// WithAPIKey sets the API key used for unauthenticated (read) requests.
// Generated on the mod.io website. Optional if an access token is supplied.
func WithAPIKey(apiKey string) Option {
	return func(c *clientConfig) {
		c.apiKey = apiKey
	}
}

// WithAccessToken sets the OAuth2 access token. When present it is used for
// all requests except the OAuth email endpoints, which always use the API key.
func WithAccessToken(token string) Option {
	return func(c *clientConfig) {
		c.accessToken = token
	}
}

// WithBaseURL overrides the full API base URL, including the version segment.
// Mostly useful for tests against a fake server.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithVersion pins a specific API version. Default is "v1".
func WithVersion(version string) Option {
	return func(c *clientConfig) {
		c.version = version
	}
}

// WithTestEnvironment directs all requests at the mod.io test environment,
// which has its own accounts and API keys.
func WithTestEnvironment() Option {
	return func(c *clientConfig) {
		c.test = true
	}
}

// WithLanguage sets the Accept-Language header for localized API responses.
// Takes an ISO 639 language code. Default is "en".
func WithLanguage(lang string) Option {
	return func(c *clientConfig) {
		c.language = lang
	}
}

// WithTimeout sets the per-request timeout. A request that exceeds it fails
// with a TransportError whose Timeout field is true.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client, e.g. to configure proxies or
// connection pool limits.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger enables debug logging of every API request to the given logger.
// Without it the SDK is silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
		c.hasLogger = true
	}
}
