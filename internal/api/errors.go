package api

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the client can return. Callers branch on
// the kind, never on error strings.
type Kind string

const (
	// KindNotAuthenticated: no valid local session before an
	// authenticated call; raised without touching the network.
	KindNotAuthenticated Kind = "not_authenticated"
	// KindSessionExpired: the server rejected the stored credentials
	// mid-use. The client clears the session before returning this, so
	// the application must force re-authentication.
	KindSessionExpired Kind = "session_expired"
	// KindInvalidRequest: malformed local input, caught before building
	// the request.
	KindInvalidRequest Kind = "invalid_request"
	// KindNotFound: the server is authoritative and says the resource
	// does not exist (unknown barcode, already-deleted meal).
	KindNotFound Kind = "not_found"
	// KindMalformedResponse: the response shape violates the
	// required-field contract; Field names the missing field.
	KindMalformedResponse Kind = "malformed_response"
	// KindMalformedToken: the sign-in token cannot be decoded.
	KindMalformedToken Kind = "malformed_token"
	// KindNetwork: transport-level failure, no HTTP response.
	KindNetwork Kind = "network"
	// KindServerError: any other non-2xx response.
	KindServerError Kind = "server_error"
)

// Error is the single error type surfaced by the client.
type Error struct {
	Kind    Kind
	Message string
	Field   string // set for malformed_response
	Status  int    // HTTP status, when a response was received
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: missing field %q", e.Kind, e.Field)
	case e.Message != "" && e.Status != 0:
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.Status, e.Message)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a client Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

func malformedResponse(field string) *Error {
	return &Error{Kind: KindMalformedResponse, Field: field}
}

func invalidRequest(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf(format, args...)}
}
