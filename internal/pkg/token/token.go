// Package token peeks inside session tokens for display purposes. The
// gateway treats its token as opaque for every authorization decision; this
// exists only so the session endpoint can show when a restored token will
// expire. Nothing here validates a signature.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt returns the exp claim of a JWT-shaped token. ok is false when the
// token is not a JWT or carries no expiry, both normal for an opaque token.
func ExpiresAt(raw string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
