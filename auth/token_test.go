package auth

import (
	"strings"
	"testing"
	"time"

	"SecureEHealth/role"
	"SecureEHealth/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestTokens(t *testing.T, secret string, clock *fakeClock) *TokenService {
	t.Helper()
	svc, err := NewTokenService(secret, DefaultTokenTTL, WithClock(clock.Now))
	require.NoError(t, err)
	return svc
}

func TestIssueValidateRoundTrip(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	svc := newTestTokens(t, "secret-a", clock)

	for _, r := range role.All {
		tok, err := svc.Issue(Identity{AccountID: "65f0c0ffee", Role: r, Name: "Alice"})
		require.NoError(t, err)

		claims, err := svc.Validate(tok)
		require.NoError(t, err)
		assert.Equal(t, r, claims.Role)
		assert.Equal(t, "65f0c0ffee", claims.UserID)
		assert.Equal(t, "Alice", claims.Name)
		assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
		assert.Equal(t, 480*time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	}
}

func TestValidateExpired(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	svc := newTestTokens(t, "secret-a", clock)

	tok, err := svc.Issue(Identity{AccountID: "id", Role: role.Patient, Name: "P"})
	require.NoError(t, err)

	clock.t = clock.t.Add(479 * time.Minute)
	_, err = svc.Validate(tok)
	require.NoError(t, err)

	clock.t = clock.t.Add(2 * time.Minute)
	_, err = svc.Validate(tok)
	assert.Equal(t, util.ExpiredToken, util.KindOf(err))
}

func TestValidateWrongSecret(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	tok, err := newTestTokens(t, "secret-a", clock).Issue(Identity{AccountID: "id", Role: role.Doctor, Name: "D"})
	require.NoError(t, err)

	_, err = newTestTokens(t, "secret-b", clock).Validate(tok)
	assert.Equal(t, util.InvalidToken, util.KindOf(err))
}

func TestValidateMalformed(t *testing.T) {
	svc := newTestTokens(t, "secret-a", &fakeClock{t: time.Now()})
	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := svc.Validate(raw)
		assert.Equal(t, util.MalformedToken, util.KindOf(err), "token %q", raw)
	}
}

func TestValidateTamperedPayload(t *testing.T) {
	svc := newTestTokens(t, "secret-a", &fakeClock{t: time.Now()})
	tok, err := svc.Issue(Identity{AccountID: "id", Role: role.Patient, Name: "P"})
	require.NoError(t, err)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "id", Role: role.SystemAdmin, Name: "P",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("attacker"))
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	forgedParts := strings.Split(forged, ".")
	spliced := parts[0] + "." + forgedParts[1] + "." + parts[2]

	_, err = svc.Validate(spliced)
	assert.Equal(t, util.InvalidToken, util.KindOf(err))
}

func TestValidateRejectsNoneAlg(t *testing.T) {
	svc := newTestTokens(t, "secret-a", &fakeClock{t: time.Now()})
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: "id", Role: role.SystemAdmin, Name: "x",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(unsigned)
	assert.Equal(t, util.InvalidToken, util.KindOf(err))
}

func TestValidateMissingClaims(t *testing.T) {
	svc := newTestTokens(t, "secret-a", &fakeClock{t: time.Now()})
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name": "x",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret-a"))
	require.NoError(t, err)

	_, err = svc.Validate(tok)
	assert.Equal(t, util.MalformedToken, util.KindOf(err))
}

func TestNewTokenServiceRejectsBadConfig(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	assert.Error(t, err)
	_, err = NewTokenService("s", 0)
	assert.Error(t, err)
}
