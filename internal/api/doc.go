// Package api provides the HTTP client used to talk to the mod.io REST API.
// It handles credential injection (api_key query parameter or OAuth2 bearer
// token), request/response serialization, rate-limit header tracking and the
// translation of error responses into typed errors.
//
// Requests are issued exactly once; the package performs no retries. Callers
// decide how to react to *Error and *NetworkError failures.
package api
