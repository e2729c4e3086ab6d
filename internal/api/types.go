package api

// MessageResponse is the generic status body returned by write endpoints.
type MessageResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AccessTokenResponse is the body of a successful token exchange.
type AccessTokenResponse struct {
	Code        int    `json:"code"`
	AccessToken string `json:"access_token"`
}
