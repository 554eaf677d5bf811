package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/model"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/session"
)

// DefaultBaseURL is the production backend. The source app hard-coded two
// different hosts across its screens; here one injected URL covers every
// endpoint.
const DefaultBaseURL = "https://nutri-fit-back-576739684905.europe-west1.run.app"

const defaultTimeout = 15 * time.Second

// Client is the single point of contact with the NutriFit backend. It
// owns request construction, the auth-token header, response decoding and
// the typed error taxonomy. The only mutable state it touches is the
// injected session store; everything else is read-only after New, so
// calls are safe to issue concurrently.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Sessions   session.Store
}

func New(baseURL string, sessions session.Store) *Client {
	return &Client{BaseURL: baseURL, Sessions: sessions}
}

// requireSession loads the stored credentials. Absence is a precondition
// failure raised before any network I/O.
func (c *Client) requireSession() (model.Session, error) {
	s, ok, err := c.Sessions.Load()
	if err != nil {
		return model.Session{}, &Error{Kind: KindNotAuthenticated, Message: "cannot read session store", Err: err}
	}
	if !ok || !s.Valid() {
		return model.Session{}, &Error{Kind: KindNotAuthenticated, Message: "no stored session"}
	}
	return s, nil
}

// do issues exactly one request and decodes the response into out when
// out is non-nil. token, when set, is attached as the backend's custom
// auth-token header; a 401/403 on an authenticated request clears the
// session store and comes back as KindSessionExpired.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return invalidRequest("encode request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, base+path, reader)
	if err != nil {
		return invalidRequest("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("auth-token", token)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("%s %s", method, path), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "read response body", Err: err}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return &Error{Kind: KindMalformedResponse, Message: "invalid JSON body", Status: resp.StatusCode, Err: err}
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if token != "" {
			// The server rejected credentials we believed in; drop them
			// so the application can force re-authentication.
			_ = c.Sessions.Clear()
			return &Error{Kind: KindSessionExpired, Message: serverMessage(data), Status: resp.StatusCode}
		}
		return &Error{Kind: KindServerError, Message: serverMessage(data), Status: resp.StatusCode}
	case resp.StatusCode == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Message: serverMessage(data), Status: resp.StatusCode}
	default:
		return &Error{Kind: KindServerError, Message: serverMessage(data), Status: resp.StatusCode}
	}
}

// serverMessage pulls the message field several endpoints wrap their
// errors in, falling back to a trimmed body snippet.
func serverMessage(data []byte) string {
	var wrapped struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Message != "" {
		return wrapped.Message
	}
	s := strings.TrimSpace(string(data))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
