package modio

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// The email authentication flow mints an OAuth2 access token in two steps:
// EmailRequest asks the API to send a short-lived security code to an email
// address, EmailExchange trades that code for a token. The challenge state
// lives entirely upstream; the SDK holds nothing between the two calls, and
// re-requesting a code invalidates any previously issued one.
//
// Both endpoints authenticate with the API key, never with a bearer token,
// so the client must have been constructed with WithAPIKey.

// EmailRequest asks the API to email a one-time security code to the given
// address. Malformed addresses and rate limits surface as *APIError.
func (c *Client) EmailRequest(ctx context.Context, email string) (*Message, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	resp, err := c.api.EmailRequest(ctx, email)
	if err != nil {
		return nil, wrapError(err)
	}
	return &Message{Code: resp.Code, Message: resp.Message}, nil
}

// EmailExchange trades a security code received by email for an OAuth2
// access token. On success the token is installed on the client, so
// subsequent requests authenticate with it, and returned to the caller.
// The SDK never persists it; use SaveAccessToken for that.
//
// Whether the code matches an outstanding challenge, has expired or was
// already used is decided upstream; such failures surface as *APIError.
func (c *Client) EmailExchange(ctx context.Context, code string) (string, error) {
	if err := c.checkClosed(); err != nil {
		return "", err
	}
	if strings.TrimSpace(code) == "" {
		return "", ErrMissingCode
	}

	resp, err := c.api.EmailExchange(ctx, code)
	if err != nil {
		return "", wrapError(err)
	}

	c.api.SetAccessToken(resp.AccessToken)
	return resp.AccessToken, nil
}

// SteamAuth requests an access token on behalf of a Steam user. The ticket
// is the user's encrypted app ticket from Steamworks; the game's secret app
// ticket key must have been supplied to mod.io beforehand. The returned
// token is installed on the client, like EmailExchange.
func (c *Client) SteamAuth(ctx context.Context, ticket string) (string, error) {
	if err := c.checkClosed(); err != nil {
		return "", err
	}
	if strings.TrimSpace(ticket) == "" {
		return "", fmt.Errorf("steam app ticket is required")
	}

	resp, err := c.api.SteamAuth(ctx, ticket)
	if err != nil {
		return "", wrapError(err)
	}

	c.api.SetAccessToken(resp.AccessToken)
	return resp.AccessToken, nil
}

// SaveAccessToken writes an access token to a file with 0600 permissions,
// for reuse across sessions via LoadAccessToken and WithAccessToken.
func SaveAccessToken(path, token string) error {
	if token == "" {
		return fmt.Errorf("access token is empty")
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// LoadAccessToken reads a token previously written by SaveAccessToken.
func LoadAccessToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", path)
	}
	return token, nil
}
