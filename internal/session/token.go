package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DecodeExpiry reads the exp claim of a JWT without verifying its signature.
// The client does not hold the signing secret; it only needs the timestamp to
// skip a profile call for a token that is already dead. A zero time with a nil
// error means the token carries no expiry claim.
func DecodeExpiry(token string) (time.Time, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("decode token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}
