package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/model"
)

// SignUp registers a new account. Unauthenticated; any 2xx is success.
func (c *Client) SignUp(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return invalidRequest("name, email and password are required")
	}
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/sign-up", "", body, nil)
}

// SignIn exchanges credentials for a signed token, extracts the userId
// from the token payload locally, persists the resulting session and
// returns it.
func (c *Client) SignIn(ctx context.Context, email, password string) (model.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return model.Session{}, invalidRequest("email and password are required")
	}

	var resp struct {
		Token string `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-in", "", body, &resp); err != nil {
		return model.Session{}, err
	}
	if resp.Token == "" {
		return model.Session{}, malformedResponse("token")
	}

	userID, tokenErr := userIDFromToken(resp.Token)
	if tokenErr != nil {
		return model.Session{}, tokenErr
	}

	s := model.Session{Token: resp.Token, UserID: userID}
	if err := c.Sessions.Save(s); err != nil {
		return model.Session{}, &Error{Kind: KindNotAuthenticated, Message: "cannot persist session", Err: err}
	}
	return s, nil
}

// Logout clears the persisted session. Purely local; the backend keeps no
// server-side session state.
func (c *Client) Logout() error {
	if err := c.Sessions.Clear(); err != nil {
		return &Error{Kind: KindNotAuthenticated, Message: "cannot clear session", Err: err}
	}
	return nil
}
