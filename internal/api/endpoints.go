package api

import (
	"context"
	"net/http"
	"net/url"
)

// The OAuth email endpoints always authenticate with the api_key query
// parameter, never with a bearer token, because they exist to mint tokens.

// EmailRequest asks the API to send a one-time security code to the given
// address.
func (c *Client) EmailRequest(ctx context.Context, email string) (*MessageResponse, error) {
	form := url.Values{}
	form.Set("email", email)

	var result MessageResponse
	req := &Request{Form: form, APIKeyAuth: true}
	if err := c.Do(ctx, http.MethodPost, "/oauth/emailrequest", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// EmailExchange trades a security code received by email for an access token.
// The token is returned but not installed; callers decide whether to adopt it.
func (c *Client) EmailExchange(ctx context.Context, code string) (*AccessTokenResponse, error) {
	form := url.Values{}
	form.Set("security_code", code)

	var result AccessTokenResponse
	req := &Request{Form: form, APIKeyAuth: true}
	if err := c.Do(ctx, http.MethodPost, "/oauth/emailexchange", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SteamAuth trades an encrypted Steam app ticket for an access token.
func (c *Client) SteamAuth(ctx context.Context, ticket string) (*AccessTokenResponse, error) {
	form := url.Values{}
	form.Set("appdata", ticket)

	var result AccessTokenResponse
	req := &Request{Form: form, APIKeyAuth: true}
	if err := c.Do(ctx, http.MethodPost, "/external/steamauth", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
