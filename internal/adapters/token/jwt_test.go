package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

func TestJWTIssuer_RoundTrip(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Hour)
	userID := uuid.New()

	signed, err := issuer.Issue(userID)
	require.NoError(t, err)

	got, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTIssuer_ExpiresAfterOneHour(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", 0)
	issuedAt := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issuedAt }

	signed, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(signed, &claims)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())

	issuer.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, err = issuer.Verify(signed)
	assert.NoError(t, err)

	issuer.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestJWTIssuer_RejectsForeignTokens(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Hour)

	other := NewJWTIssuer("another-secret", time.Hour)
	forged, err := other.Issue(uuid.New())
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: uuid.NewString(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"wrong secret": forged,
		"alg none":     unsigned,
		"non-uuid sub": badSubject,
		"missing exp":  noExpiry,
		"garbage":      "not.a.jwt",
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.Verify(tok)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}
