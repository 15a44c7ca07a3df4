// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credential is the opaque bearer token issued by POST /v1/login.
//
// The client never validates the token; it is attached to every
// authenticated request until the user logs out or the server answers 401.
type Credential struct {
	Token string
}

// NewCredential wraps a raw token, trimming surrounding whitespace.
func NewCredential(token string) Credential {
	return Credential{Token: strings.TrimSpace(token)}
}

// Empty reports whether no token is held.
func (c Credential) Empty() bool {
	return c.Token == ""
}

// BearerHeader returns the Authorization header value for the token.
func (c Credential) BearerHeader() string {
	return "Bearer " + c.Token
}

// ExpiresAt reads the "exp" claim when the token happens to be a JWT.
//
// The signature is NOT verified: the result is informational and is only
// displayed to the user. ok is false for opaque tokens or tokens without exp.
func (c Credential) ExpiresAt() (t time.Time, ok bool) {
	if c.Empty() {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.Token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}
