package api

import (
	"github.com/golang-jwt/jwt/v5"
)

// userIDFromToken extracts the userId claim from a signed token without
// verifying the signature; verification is the backend's job, the client
// only needs the payload. Pure function, no I/O.
func userIDFromToken(token string) (string, *Error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", &Error{Kind: KindMalformedToken, Message: "cannot decode token payload", Err: err}
	}
	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return "", &Error{Kind: KindMalformedToken, Message: "token payload has no userId"}
	}
	return userID, nil
}
