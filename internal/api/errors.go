package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Sentinel errors for client misuse.
var (
	// ErrClosed is returned by Do after Close has been called.
	ErrClosed = errors.New("api client is closed")

	// ErrMissingCredentials is returned by New when neither an API key nor
	// an access token is supplied.
	ErrMissingCredentials = errors.New("an api key or access token is required")

	// ErrMissingAPIKey is returned when an operation requires api_key
	// authentication but the client holds no API key.
	ErrMissingAPIKey = errors.New("operation requires an api key")
)

// Error represents a mod.io API error response.
type Error struct {
	StatusCode int
	ErrorRef   int
	Message    string
	// Errors carries per-field validation messages on 422 responses.
	Errors map[string]string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("mod.io: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("mod.io: API error %d", e.StatusCode)
}

// NetworkError represents a request that never produced an HTTP response.
type NetworkError struct {
	Err     error
	URL     string
	Timeout bool
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request to %s timed out: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// errorEnvelope is the mod.io error body:
//
//	{"error": {"code": 404, "error_ref": 14000, "message": "...", "errors": {...}}}
type errorEnvelope struct {
	Error struct {
		Code     int               `json:"code"`
		ErrorRef int               `json:"error_ref"`
		Message  string            `json:"message"`
		Errors   map[string]string `json:"errors"`
	} `json:"error"`
}

func parseErrorResponse(resp *resty.Response) error {
	body := resp.Body()

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return &Error{
			StatusCode: resp.StatusCode(),
			ErrorRef:   envelope.Error.ErrorRef,
			Message:    envelope.Error.Message,
			Errors:     envelope.Error.Errors,
		}
	}

	return &Error{
		StatusCode: resp.StatusCode(),
		Message:    strings.TrimSpace(string(body)),
	}
}
