package modio

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/modio/modio-go/internal/api"
)

// RateLimit is a snapshot of the request quota reported by the API.
type RateLimit = api.RateLimit

// Client is the main mod.io client. It owns a single transport (and its
// connection pool) for its whole lifetime and is safe for concurrent use.
// No ordering is guaranteed between concurrently issued requests.
type Client struct {
	api *api.Client

	mu     sync.RWMutex
	closed bool
}

// New creates a new mod.io client. At least one of WithAPIKey or
// WithAccessToken must be supplied. Construction performs no network I/O;
// use TestCredentials to validate credentials eagerly.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		version:  api.DefaultVersion,
		language: "en",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.apiKey == "" && cfg.accessToken == "" {
		return nil, ErrMissingCredentials
	}

	host := api.DefaultHost
	if cfg.test {
		host = api.TestHost
	}

	apiOpts := []api.Option{
		api.WithHost(host, cfg.version),
	}
	if cfg.baseURL != "" {
		apiOpts = append(apiOpts, api.WithBaseURL(cfg.baseURL))
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.language != "" {
		apiOpts = append(apiOpts, api.WithLanguage(cfg.language))
	}
	if cfg.accessToken != "" {
		apiOpts = append(apiOpts, api.WithAccessToken(cfg.accessToken))
	}
	if cfg.hasLogger {
		apiOpts = append(apiOpts, api.WithLogger(cfg.logger))
	}
	// Applied last so the configured base URL and timeout carry over.
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}

	apiClient, err := api.New(cfg.apiKey, apiOpts...)
	if err != nil {
		return nil, wrapError(err)
	}

	return &Client{api: apiClient}, nil
}

// checkClosed returns ErrClientClosed if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// Close releases the transport's pooled connections. After Close every
// operation on the client fails with ErrClientClosed. Calling Close again
// is a no-op.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.api.Close()
}

// AccessToken returns the access token currently held by the client, or ""
// when operating with the API key only.
func (c *Client) AccessToken() string {
	return c.api.AccessToken()
}

// RateLimit returns the most recent rate-limit snapshot reported by the API.
// Zero values mean no request has completed yet.
func (c *Client) RateLimit() RateLimit {
	return c.api.RateLimit()
}

// TestCredentials issues a minimal request to verify the stored credentials.
// With an access token it fetches the authenticated user; with only an API
// key it lists games. Returns nil if the credentials are accepted.
func (c *Client) TestCredentials(ctx context.Context) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	if c.api.AccessToken() != "" {
		_, err := c.Me(ctx)
		return err
	}
	_, _, err := c.GetGames(ctx, NewFilter().Limit(1))
	return err
}

// get fetches a single resource into a model of type T.
func get[T any](ctx context.Context, c *Client, path string) (*T, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	var out T
	if err := c.api.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, wrapError(err)
	}
	return &out, nil
}

// getList fetches a paginated collection of models of type T.
func getList[T any](ctx context.Context, c *Client, path string, filter *Filter) ([]T, Pagination, error) {
	if err := c.checkClosed(); err != nil {
		return nil, Pagination{}, err
	}
	var out struct {
		Data []T `json:"data"`
		Pagination
	}
	req := &api.Request{Query: filter.values()}
	if err := c.api.Do(ctx, http.MethodGet, path, req, &out); err != nil {
		return nil, Pagination{}, wrapError(err)
	}
	return out.Data, out.Pagination, nil
}

// GetGame fetches the game with the given ID.
func (c *Client) GetGame(ctx context.Context, id int64) (*Game, error) {
	game, err := get[Game](ctx, c, fmt.Sprintf("/games/%d", id))
	if err != nil {
		return nil, err
	}
	game.client = c
	return game, nil
}

// GetGames lists games available on mod.io. The filter may be nil.
func (c *Client) GetGames(ctx context.Context, filter *Filter) ([]*Game, Pagination, error) {
	games, pg, err := getList[*Game](ctx, c, "/games", filter)
	if err != nil {
		return nil, Pagination{}, err
	}
	for _, game := range games {
		game.client = c
	}
	return games, pg, nil
}

// GetUser fetches the user with the given ID.
func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	return get[User](ctx, c, fmt.Sprintf("/users/%d", id))
}

// GetUsers lists users registered on mod.io. The filter may be nil.
func (c *Client) GetUsers(ctx context.Context, filter *Filter) ([]*User, Pagination, error) {
	return getList[*User](ctx, c, "/users", filter)
}

// Me fetches the user the access token belongs to. Requires an access token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	return get[User](ctx, c, "/me")
}

// MyGames lists the games the authenticated user added or is a team member
// of. Requires an access token.
func (c *Client) MyGames(ctx context.Context, filter *Filter) ([]*Game, Pagination, error) {
	games, pg, err := getList[*Game](ctx, c, "/me/games", filter)
	if err != nil {
		return nil, Pagination{}, err
	}
	for _, game := range games {
		game.client = c
	}
	return games, pg, nil
}

// MyMods lists the mods the authenticated user added or is a team member of.
// Requires an access token.
func (c *Client) MyMods(ctx context.Context, filter *Filter) ([]*Mod, Pagination, error) {
	mods, pg, err := getList[*Mod](ctx, c, "/me/mods", filter)
	if err != nil {
		return nil, Pagination{}, err
	}
	for _, mod := range mods {
		mod.client = c
	}
	return mods, pg, nil
}

// MySubscribed lists the mods the authenticated user is subscribed to.
// Requires an access token.
func (c *Client) MySubscribed(ctx context.Context, filter *Filter) ([]*Mod, Pagination, error) {
	mods, pg, err := getList[*Mod](ctx, c, "/me/subscribed", filter)
	if err != nil {
		return nil, Pagination{}, err
	}
	for _, mod := range mods {
		mod.client = c
	}
	return mods, pg, nil
}

// MyEvents lists events fired for the authenticated user. Requires an
// access token.
func (c *Client) MyEvents(ctx context.Context, filter *Filter) ([]Event, Pagination, error) {
	return getList[Event](ctx, c, "/me/events", filter)
}

// MyModfiles lists the files the authenticated user uploaded. Requires an
// access token.
func (c *Client) MyModfiles(ctx context.Context, filter *Filter) ([]*Modfile, Pagination, error) {
	return getList[*Modfile](ctx, c, "/me/files", filter)
}

// MyRatings lists the ratings the authenticated user submitted. Requires an
// access token.
func (c *Client) MyRatings(ctx context.Context, filter *Filter) ([]Rating, Pagination, error) {
	return getList[Rating](ctx, c, "/me/ratings", filter)
}
