package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("secret", 24*time.Hour)

	token, err := svc.GenerateToken("65f1c0ffee", "ana@example.com", "Ana")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "65f1c0ffee", claims.ID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret", time.Hour).GenerateToken("1", "a@b.c", "A")
	require.NoError(t, err)

	_, err = NewTokenService("other", time.Hour).ValidateToken(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.GenerateToken("1", "a@b.c", "A")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsNoneAlg(t *testing.T) {
	claims := Claims{ID: "1", RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("secret", time.Hour).ValidateToken(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := NewTokenService("secret", time.Hour).ValidateToken("not-a-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}
