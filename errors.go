package modio

import (
	"errors"
	"fmt"

	"github.com/modio/modio-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingCredentials is returned by New when neither an API key nor
	// an access token is supplied.
	ErrMissingCredentials = errors.New("an api key or access token is required")

	// ErrMissingAPIKey is returned when an operation needs api_key
	// authentication (the OAuth email flow) but the client has no API key.
	ErrMissingAPIKey = errors.New("operation requires an api key")

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrMissingCode is returned by EmailExchange when the security code is empty.
	ErrMissingCode = errors.New("security code is required")

	// ErrBadRequest is returned when the API rejects the request as malformed.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized is returned when the API key or access token is
	// invalid, expired, or the security code did not match a challenge.
	ErrUnauthorized = errors.New("invalid or expired credentials")

	// ErrForbidden is returned when the credentials lack permission for the
	// requested resource.
	ErrForbidden = errors.New("access forbidden")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrGone is returned when the requested resource used to exist but was deleted.
	ErrGone = errors.New("resource deleted")

	// ErrUnprocessable is returned when the request was well-formed but
	// failed validation. The APIError carries per-field messages.
	ErrUnprocessable = errors.New("request validation failed")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// ModioError is implemented by all SDK errors.
type ModioError interface {
	error
	ModioError() // marker method
}

// APIError represents an error response from the mod.io API.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// ErrorRef is the mod.io-specific error reference code, more precise
	// than the HTTP status.
	ErrorRef int
	// Message is the human-readable message from the API.
	Message string
	// Errors carries per-field validation messages on 422 responses.
	Errors map[string]string
}

func (e *APIError) Error() string {
	if e.ErrorRef != 0 {
		return fmt.Sprintf("API error %d (ref %d): %s", e.StatusCode, e.ErrorRef, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// ModioError implements the ModioError interface.
func (e *APIError) ModioError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 400:
		return target == ErrBadRequest
	case 401:
		return target == ErrUnauthorized
	case 403:
		return target == ErrForbidden
	case 404:
		return target == ErrNotFound
	case 410:
		return target == ErrGone
	case 422:
		return target == ErrUnprocessable
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// TransportError represents a network-level failure: the request never
// produced an HTTP response. These are the only errors where a caller retry
// may make sense; the SDK itself never retries.
type TransportError struct {
	Err error
	URL string
	// Timeout reports whether the failure was a timeout or deadline expiry.
	Timeout bool
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("transport error: request timed out: %v", e.Err)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ModioError implements the ModioError interface.
func (e *TransportError) ModioError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			ErrorRef:   apiErr.ErrorRef,
			Message:    apiErr.Message,
			Errors:     apiErr.Errors,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &TransportError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Timeout: netErr.Timeout,
		}
	}

	switch {
	case errors.Is(err, api.ErrClosed):
		return ErrClientClosed
	case errors.Is(err, api.ErrMissingAPIKey):
		return ErrMissingAPIKey
	case errors.Is(err, api.ErrMissingCredentials):
		return ErrMissingCredentials
	}

	return err
}
