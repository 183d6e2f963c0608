package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the client can read from a JWT bearer token without
// verifying it. It is for display only; the server remains the authority.
type TokenInfo struct {
	Subject   string
	Issuer    string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry that has passed.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// InspectToken decodes the registered claims of a JWT. ok is false for
// opaque tokens.
func InspectToken(token string) (info TokenInfo, ok bool) {
	if token == "" {
		return TokenInfo{}, false
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenInfo{}, false
	}

	info.Subject = claims.Subject
	info.Issuer = claims.Issuer
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, true
}
