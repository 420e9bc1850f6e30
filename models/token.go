package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a JWT bearer token together with the parsed claims the
// application cares about.
//
// SignedString is the compact header.payload.signature form sent in the
// Authorization header. UserID caches the "sub" claim as an int64 so that
// callers do not repeat the string conversion on every access.
type Token struct {
	*jwt.Token `json:"-"`

	// Standard claim set (sub, exp, iat, iss) per RFC 7519.
	jwt.RegisteredClaims

	SignedString string `json:"-"`

	// UserID is the account identifier carried in the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64 user identifier.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("reading token subject: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token subject is not a user ID: %w", err)
	}

	return userID, nil
}

// String returns the compact serialized token.
func (t *Token) String() string {
	return t.SignedString
}
