package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/okhotnikov/libman/internal/session"
)

func TestDecodeExpiryReadsClaim(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token := signToken(t, exp)

	got, err := session.DecodeExpiry(token)
	require.NoError(t, err)
	require.True(t, got.Equal(exp))
}

func TestDecodeExpiryWithoutClaim(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": 1}).
		SignedString([]byte("whatever"))
	require.NoError(t, err)

	got, err := session.DecodeExpiry(signed)
	require.NoError(t, err)
	require.True(t, got.IsZero())
}

func TestDecodeExpiryMalformedToken(t *testing.T) {
	_, err := session.DecodeExpiry("not-a-jwt")
	require.Error(t, err)

	_, err = session.DecodeExpiry("")
	require.Error(t, err)
}
