package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithBaseURL(srv.URL)}, opts...)
	client, err := New("test-key", opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client, srv
}

func jsonResponse(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New("")
	if !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("New(\"\") error = %v, want ErrMissingCredentials", err)
	}

	if _, err := New("", WithAccessToken("tok")); err != nil {
		t.Errorf("New with token only should succeed, got %v", err)
	}
}

func TestDo_APIKeyQueryParameter(t *testing.T) {
	var gotKey, gotAuth, gotRequestID string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		jsonResponse(w, 200, `{}`)
	})

	if err := client.Do(context.Background(), "GET", "/games", nil, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("api_key = %q, want %q", gotKey, "test-key")
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("X-Request-Id header missing")
	}
}

func TestDo_BearerToken(t *testing.T) {
	var gotKey, gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		gotAuth = r.Header.Get("Authorization")
		jsonResponse(w, 200, `{}`)
	}, WithAccessToken("tok_abc"))

	if err := client.Do(context.Background(), "GET", "/me", nil, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if gotAuth != "Bearer tok_abc" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok_abc")
	}
	if gotKey != "" {
		t.Errorf("api_key = %q, want empty when bearer token is held", gotKey)
	}
}

func TestDo_APIKeyAuthOverridesToken(t *testing.T) {
	var gotKey, gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		gotAuth = r.Header.Get("Authorization")
		jsonResponse(w, 200, `{}`)
	}, WithAccessToken("tok_abc"))

	req := &Request{APIKeyAuth: true}
	if err := client.Do(context.Background(), "POST", "/oauth/emailrequest", req, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("api_key = %q, want %q", gotKey, "test-key")
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty in api-key mode", gotAuth)
	}
}

func TestDo_DecodesResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, 200, `{"id": 345, "name": "Foo"}`)
	})

	var result struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := client.Do(context.Background(), "GET", "/games/345", nil, &result); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if result.ID != 345 || result.Name != "Foo" {
		t.Errorf("result = %+v, want id=345 name=Foo", result)
	}
}

func TestDo_ParsesErrorEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, 404, `{"error": {"code": 404, "error_ref": 14000, "message": "Game not found", "errors": {"id": "unknown id"}}}`)
	})

	err := client.Do(context.Background(), "GET", "/games/999", nil, nil)

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Do() error = %v, want *Error", err)
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.ErrorRef != 14000 {
		t.Errorf("ErrorRef = %d, want 14000", apiErr.ErrorRef)
	}
	if apiErr.Message != "Game not found" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Game not found")
	}
	if apiErr.Errors["id"] != "unknown id" {
		t.Errorf("Errors = %v, want id entry", apiErr.Errors)
	}
}

func TestDo_NonJSONErrorBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(502)
		w.Write([]byte("bad gateway"))
	})

	err := client.Do(context.Background(), "GET", "/games", nil, nil)

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Do() error = %v, want *Error", err)
	}
	if apiErr.StatusCode != 502 {
		t.Errorf("StatusCode = %d, want 502", apiErr.StatusCode)
	}
	if apiErr.Message != "bad gateway" {
		t.Errorf("Message = %q, want raw body", apiErr.Message)
	}
}

func TestDo_TracksRateLimitHeaders(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Limit", "120")
		w.Header().Set("X-RateLimit-Remaining", "115")
		w.Header().Set("X-Ratelimit-RetryAfter", "0")
		jsonResponse(w, 200, `{}`)
	})

	if err := client.Do(context.Background(), "GET", "/games", nil, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}

	limits := client.RateLimit()
	if limits.Limit != 120 {
		t.Errorf("Limit = %d, want 120", limits.Limit)
	}
	if limits.Remaining != 115 {
		t.Errorf("Remaining = %d, want 115", limits.Remaining)
	}
	if limits.RetryAfter != 0 {
		t.Errorf("RetryAfter = %v, want 0", limits.RetryAfter)
	}
}

func TestDo_Timeout(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		jsonResponse(w, 200, `{}`)
	}, WithTimeout(20*time.Millisecond))

	err := client.Do(context.Background(), "GET", "/games", nil, nil)

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("Do() error = %v, want *NetworkError", err)
	}
	if !netErr.Timeout {
		t.Error("NetworkError.Timeout = false, want true")
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		jsonResponse(w, 200, `{}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := client.Do(ctx, "GET", "/games", nil, nil)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("Do() error = %v, want *NetworkError", err)
	}

	// The pool must still be usable after a cancelled request.
	if err := client.Close(); err != nil {
		t.Errorf("Close() after cancellation error = %v", err)
	}
}

func TestClose_Idempotent(t *testing.T) {
	client, err := New("test-key")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := client.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := client.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestDo_AfterClose(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, 200, `{}`)
	})

	if err := client.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	err := client.Do(context.Background(), "GET", "/games", nil, nil)
	if !errors.Is(err, ErrClosed) {
		t.Errorf("Do() after Close error = %v, want ErrClosed", err)
	}
}

func TestSetAccessToken_ReplacesAuthMode(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		jsonResponse(w, 200, `{}`)
	})

	client.SetAccessToken("tok_new")
	if err := client.Do(context.Background(), "GET", "/me", nil, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if gotAuth != "Bearer tok_new" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok_new")
	}
}

func TestEmailExchange_SendsFormFields(t *testing.T) {
	var gotForm url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotForm = r.PostForm
		jsonResponse(w, 200, `{"code": 200, "access_token": "tok_abc"}`)
	})

	resp, err := client.EmailExchange(context.Background(), "12345")
	if err != nil {
		t.Fatalf("EmailExchange() error = %v", err)
	}
	if resp.AccessToken != "tok_abc" {
		t.Errorf("AccessToken = %q, want %q", resp.AccessToken, "tok_abc")
	}
	if gotForm.Get("security_code") != "12345" {
		t.Errorf("security_code = %q, want %q", gotForm.Get("security_code"), "12345")
	}
}
