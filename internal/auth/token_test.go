package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	tok, err := NewSessionToken("secret", 42, "jane@example.com", "user", 7)
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Token)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), tok.Exp, 5*time.Second)

	claims, err := VerifySessionToken("secret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestVerifySessionToken_Malformed(t *testing.T) {
	_, err := VerifySessionToken("secret", "invalid.token.string")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	tok, _ := NewSessionToken("secret1", 1, "a@b.c", "user", 7)
	_, err := VerifySessionToken("secret2", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifySessionToken_Expired(t *testing.T) {
	// A negative TTL produces a token that is already past its expiry.
	tok, err := NewSessionToken("secret", 1, "a@b.c", "user", -1)
	require.NoError(t, err)

	_, err = VerifySessionToken("secret", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifySessionToken_RejectsNonHMAC(t *testing.T) {
	// An unsigned token must never verify, even with a matching payload.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": 1, "email": "a@b.c", "role": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifySessionToken("secret", raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetToken_RoundTrip(t *testing.T) {
	raw, err := NewResetToken("secret", 7, 60)
	require.NoError(t, err)

	uid, err := VerifyResetToken("secret", raw)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), uid)
}

func TestVerifyResetToken_Expired(t *testing.T) {
	raw, err := NewResetToken("secret", 7, -1)
	require.NoError(t, err)

	_, err = VerifyResetToken("secret", raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyResetToken_Forged(t *testing.T) {
	raw, _ := NewResetToken("secret", 7, 60)
	_, err := VerifyResetToken("othersecret", raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
