package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a parsed or freshly signed session key.
//
// Session keys are HS256 JWTs whose "sub" claim names the owner of the
// datastore collections the key gives access to. Outside the server the key
// is opaque: clients only ever forward SignedString as the authKey.
type Token struct {
	// Token is the underlying JWT token. Excluded from JSON serialization
	// because only the compact string form is meaningful outside the server.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard claim set (sub, exp, iat, iss).
	jwt.RegisteredClaims

	// SignedString is the compact JWS form of the token.
	SignedString string `json:"-"`

	// OwnerID is the cached "sub" claim.
	OwnerID string `json:"-"`
}

// GetOwnerID returns the "sub" claim of the token.
func (t *Token) GetOwnerID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting owner from token: %w", err)
	}
	if sub == "" {
		return "", errors.New("empty subject in token")
	}
	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
