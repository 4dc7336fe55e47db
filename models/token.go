package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed JWT bound to a username.
//
// The username travels in the "sub" claim. Username is populated after a
// successful parse so callers do not need to re-read the claims.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form handed out to clients.
	SignedString string `json:"-"`

	// Username is the subject extracted from a parsed token.
	Username string `json:"-"`
}

// GetUsername returns the subject claim of the token.
func (t *Token) GetUsername() (string, error) {
	username, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting username from token: %w", err)
	}
	if username == "" {
		return "", errors.New("token subject is empty")
	}

	return username, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
