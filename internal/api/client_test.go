package api

import (
	"context"
	"errors"
	"testing"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/backendtest"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/model"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/session"
)

// signedInClient registers an account on the fake backend and signs the
// client in, returning the client, the store and the backend userID.
func signedInClient(t *testing.T, srv *backendtest.Server) (*Client, *session.Memory, string) {
	t.Helper()
	userID := srv.Register("Test User", "user@example.com", "secret123")
	store := session.NewMemory()
	client := New(srv.URL(), store)
	if _, err := client.SignIn(context.Background(), "user@example.com", "secret123"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	return client, store, userID
}

func TestSignInPersistsSessionWithDecodedUserID(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()

	_, store, userID := signedInClient(t, srv)

	s, ok, err := store.Load()
	if err != nil || !ok {
		t.Fatalf("expected stored session, got ok=%v err=%v", ok, err)
	}
	if s.UserID != userID {
		t.Fatalf("stored userId %q, want %q", s.UserID, userID)
	}
	if s.Token == "" {
		t.Fatal("stored session has no token")
	}
}

func TestSignInSurfacesServerMessage(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()
	srv.Register("Test User", "user@example.com", "secret123")

	client := New(srv.URL(), session.NewMemory())
	_, err := client.SignIn(context.Background(), "user@example.com", "wrong")
	if !IsKind(err, KindServerError) {
		t.Fatalf("expected server_error, got %v", err)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Message != "Email or password is wrong" {
		t.Fatalf("expected the server message to surface, got %v", err)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()

	client := New(srv.URL(), session.NewMemory())
	ctx := context.Background()
	if err := client.SignUp(ctx, "A", "dup@example.com", "pw123456"); err != nil {
		t.Fatalf("first sign-up: %v", err)
	}
	err := client.SignUp(ctx, "B", "dup@example.com", "pw123456")
	if !IsKind(err, KindServerError) {
		t.Fatalf("expected server_error on duplicate email, got %v", err)
	}
}

func TestAuthenticatedCallWithoutSessionDoesNoNetworkIO(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()

	client := New(srv.URL(), session.NewMemory())
	_, err := client.FetchProfile(context.Background())
	if !IsKind(err, KindNotAuthenticated) {
		t.Fatalf("expected not_authenticated, got %v", err)
	}
	if n := srv.Requests(); n != 0 {
		t.Fatalf("expected zero transport calls, got %d", n)
	}
}

func TestRejectedTokenClearsSessionAndReportsExpiry(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()

	store := session.NewMemory()
	if err := store.Save(model.Session{Token: "stale-token", UserID: "user-1"}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	client := New(srv.URL(), store)

	_, err := client.FetchProfile(context.Background())
	if !IsKind(err, KindSessionExpired) {
		t.Fatalf("expected session_expired, got %v", err)
	}
	if _, ok, _ := store.Load(); ok {
		t.Fatal("expected the rejected session to be cleared")
	}
}

func TestNetworkFailureIsTyped(t *testing.T) {
	t.Parallel()

	store := session.NewMemory()
	_ = store.Save(model.Session{Token: "t", UserID: "u"})
	client := New("http://127.0.0.1:1", store)

	_, err := client.FetchDailyEntry(context.Background(), "2025-01-06")
	if !IsKind(err, KindNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()

	client, store, _ := signedInClient(t, srv)
	if err := client.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok, _ := store.Load(); ok {
		t.Fatal("expected no session after logout")
	}
	if _, err := client.FetchProfile(context.Background()); !IsKind(err, KindNotAuthenticated) {
		t.Fatalf("expected not_authenticated after logout, got %v", err)
	}
}
