package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/teashop-server/internal/model"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret")

	tok, expiresAt, err := j.Generate("admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultTTL), expiresAt, 5*time.Second)

	got, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", got)
}

func TestJWT_ThreePartHS256(t *testing.T) {
	j := NewJWT("secret")

	tok, _, err := j.Generate("admin")
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(tok, &jwt.RegisteredClaims{})
	require.NoError(t, err)
	assert.Equal(t, "HS256", parsed.Method.Alg())

	claims := parsed.Claims.(*jwt.RegisteredClaims)
	assert.Equal(t, "admin", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, DefaultTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWT_Expired(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	j := NewJWT("secret", WithClock(clock.Now))

	tok, _, err := j.Generate("admin")
	require.NoError(t, err)

	clock.t = clock.t.Add(DefaultTTL - time.Second)
	_, err = j.Parse(tok)
	require.NoError(t, err)

	// now == exp is already expired
	clock.t = clock.t.Add(time.Second)
	_, err = j.Parse(tok)
	require.ErrorIs(t, err, model.ErrTokenExpired)

	clock.t = clock.t.Add(24 * time.Hour)
	_, err = j.Parse(tok)
	require.ErrorIs(t, err, model.ErrTokenExpired)
	assert.NotErrorIs(t, err, model.ErrTokenMalformed)
}

func TestJWT_CustomTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	j := NewJWT("secret", WithClock(clock.Now), WithTTL(time.Minute))

	tok, expiresAt, err := j.Generate("admin")
	require.NoError(t, err)
	assert.Equal(t, clock.t.Add(time.Minute), expiresAt)

	clock.t = clock.t.Add(2 * time.Minute)
	_, err = j.Parse(tok)
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestJWT_Malformed(t *testing.T) {
	j := NewJWT("secret")

	otherSecret, _, err := NewJWT("different-secret").Generate("admin")
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "admin",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "garbage token", token: "not-a-jwt-token"},
		{name: "three garbage segments", token: "header.payload.signature"},
		{name: "wrong secret", token: otherSecret},
		{name: "none algorithm", token: noneAlg},
		{name: "missing subject", token: noSubject},
		{name: "missing expiry", token: noExpiry},
		{name: "other hmac algorithm", token: hs512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := j.Parse(tt.token)
			require.ErrorIs(t, err, model.ErrTokenMalformed)
			assert.NotErrorIs(t, err, model.ErrTokenExpired)
		})
	}
}

func TestJWT_WrongSecretAndExpired_IsMalformed(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	issuer := NewJWT("different-secret", WithClock(clock.Now))
	verifier := NewJWT("secret", WithClock(clock.Now))

	tok, _, err := issuer.Generate("admin")
	require.NoError(t, err)

	clock.t = clock.t.Add(time.Hour)
	_, err = verifier.Parse(tok)
	require.ErrorIs(t, err, model.ErrTokenMalformed)
}
