package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/jobtracker-be/internal/apperr"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", "jobtracker", time.Hour)
	want := Identity{UserID: "user-123", Name: "alice"}

	tok, err := tm.Issue(want)
	require.NoError(t, err)

	got, err := tm.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVerify_ExpiredOncePastExpiration(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	tm := NewTokenManager("secret", "jobtracker", 30*24*time.Hour)
	tm.now = func() time.Time { return clock }

	tok, err := tm.Issue(Identity{UserID: "u1", Name: "bob"})
	require.NoError(t, err)

	clock = issuedAt.Add(30*24*time.Hour - time.Minute)
	_, err = tm.Verify(tok)
	require.NoError(t, err, "token must be valid just before expiry")

	clock = issuedAt.Add(30*24*time.Hour + time.Second)
	_, err = tm.Verify(tok)
	assert.ErrorIs(t, err, apperr.ErrExpiredToken)
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("right-secret", "", time.Hour).Issue(Identity{UserID: "u2"})
	require.NoError(t, err)

	_, err = NewTokenManager("wrong-secret", "", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestVerify_WrongIssuer(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("k", "someone-else", time.Hour).Issue(Identity{UserID: "u3"})
	require.NoError(t, err)

	_, err = NewTokenManager("k", "jobtracker", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("k", "", time.Hour)
	for _, raw := range []string{"", "not.a.jwt", strings.Repeat("a", 40)} {
		_, err := tm.Verify(raw)
		assert.ErrorIs(t, err, apperr.ErrInvalidToken, "input %q", raw)
	}
}

func TestVerify_RejectsUnsignedAlgorithm(t *testing.T) {
	t.Parallel()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           "intruder",
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("k", "", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestVerify_RequiresUserID(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("k", "", time.Hour).Issue(Identity{})
	require.NoError(t, err)

	_, err = NewTokenManager("k", "", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestIdentityContext(t *testing.T) {
	t.Parallel()

	_, ok := IdentityFrom(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), Identity{UserID: "u1", Name: "n"})
	id, ok := IdentityFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, "u1", id.UserID)
}
