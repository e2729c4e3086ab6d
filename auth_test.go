package modio

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func TestEmailFlow_EndToEnd(t *testing.T) {
	var requestedEmail string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/emailrequest":
			r.ParseForm()
			requestedEmail = r.PostForm.Get("email")
			if r.URL.Query().Get("api_key") != "test-key" {
				t.Error("emailrequest missing api_key parameter")
			}
			jsonResponse(w, 200, `{"code": 200, "message": "Enter the 5-digit code sent to your email"}`)
		case "/oauth/emailexchange":
			r.ParseForm()
			if code := r.PostForm.Get("security_code"); code != "123456" {
				jsonResponse(w, 401, `{"error": {"code": 401, "message": "Invalid security code"}}`)
				return
			}
			jsonResponse(w, 200, `{"code": 200, "access_token": "tok_abc"}`)
		case "/me":
			if r.Header.Get("Authorization") != "Bearer tok_abc" {
				t.Errorf("Authorization = %q, want exchanged token", r.Header.Get("Authorization"))
			}
			jsonResponse(w, 200, `{"id": 1, "username": "necro"}`)
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			jsonResponse(w, 404, `{"error": {"code": 404, "message": "not found"}}`)
		}
	})

	ctx := context.Background()

	msg, err := client.EmailRequest(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("EmailRequest() error = %v", err)
	}
	if requestedEmail != "user@example.com" {
		t.Errorf("requested email = %q, want user@example.com", requestedEmail)
	}
	if msg.Code != 200 {
		t.Errorf("message code = %d, want 200", msg.Code)
	}

	token, err := client.EmailExchange(ctx, "123456")
	if err != nil {
		t.Fatalf("EmailExchange() error = %v", err)
	}
	if token != "tok_abc" {
		t.Errorf("token = %q, want tok_abc", token)
	}
	if client.AccessToken() != "tok_abc" {
		t.Errorf("AccessToken() = %q, want the exchanged token installed", client.AccessToken())
	}

	// Subsequent requests authenticate with the new token.
	user, err := client.Me(ctx)
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if user.Username != "necro" {
		t.Errorf("Username = %q, want necro", user.Username)
	}
}

func TestEmailExchange_EmptyCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for an empty code")
	})

	_, err := client.EmailExchange(context.Background(), "  ")
	if !errors.Is(err, ErrMissingCode) {
		t.Errorf("EmailExchange() error = %v, want ErrMissingCode", err)
	}
}

func TestEmailExchange_CodeNeverIssued(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, 401, `{"error": {"code": 401, "message": "Invalid security code"}}`)
	})

	_, err := client.EmailExchange(context.Background(), "00000")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("EmailExchange() error = %v, want ErrUnauthorized", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("EmailExchange() error = %T, want *APIError", err)
	}
	if apiErr.Message != "Invalid security code" {
		t.Errorf("Message = %q, want upstream message", apiErr.Message)
	}
	if client.AccessToken() != "" {
		t.Error("failed exchange must not install a token")
	}
}

func TestEmailRequest_UsesAPIKeyDespiteToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("Authorization = %q, want none on the oauth endpoints", r.Header.Get("Authorization"))
		}
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Error("emailrequest missing api_key parameter")
		}
		jsonResponse(w, 200, `{"code": 200, "message": "ok"}`)
	}, WithAccessToken("tok_existing"))

	if _, err := client.EmailRequest(context.Background(), "user@example.com"); err != nil {
		t.Fatalf("EmailRequest() error = %v", err)
	}
}

func TestEmailRequest_WithoutAPIKey(t *testing.T) {
	// Fails locally before any request is issued, so no server is needed.
	client, err := New(WithAccessToken("tok_only"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	_, err = client.EmailRequest(context.Background(), "user@example.com")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("EmailRequest() error = %v, want ErrMissingAPIKey", err)
	}
}

func TestSaveLoadAccessToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	if err := SaveAccessToken(path, "tok_abc"); err != nil {
		t.Fatalf("SaveAccessToken() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file mode = %o, want 0600", perm)
	}

	token, err := LoadAccessToken(path)
	if err != nil {
		t.Fatalf("LoadAccessToken() error = %v", err)
	}
	if token != "tok_abc" {
		t.Errorf("token = %q, want tok_abc", token)
	}
}

func TestSaveAccessToken_Empty(t *testing.T) {
	if err := SaveAccessToken(filepath.Join(t.TempDir(), "token"), ""); err == nil {
		t.Error("SaveAccessToken(\"\") should return an error")
	}
}

func TestLoadAccessToken_Missing(t *testing.T) {
	if _, err := LoadAccessToken(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("LoadAccessToken on a missing file should return an error")
	}
}
