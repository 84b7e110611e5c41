package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notekeep/adapters/services"
	domain "notekeep/internal/notekeep/domain/services"
)

const testSecret = "test-secret-key"

func TestJWTIssueAndParse(t *testing.T) {
	svc := services.NewJWT(testSecret, 0)
	ctx := context.Background()

	token, sess, err := svc.Issue(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, sess)
	assert.Equal(t, "alice@example.com", sess.Email)
	assert.NotEmpty(t, sess.TokenID)

	parsed, err := svc.Parse(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, sess.Email, parsed.Email)
	assert.Equal(t, sess.TokenID, parsed.TokenID)
}

func TestJWTTokenIDsUnique(t *testing.T) {
	svc := services.NewJWT(testSecret, 0)
	ctx := context.Background()

	_, first, err := svc.Issue(ctx, "alice@example.com")
	require.NoError(t, err)
	_, second, err := svc.Issue(ctx, "alice@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first.TokenID, second.TokenID)
}

func TestJWTParseRejectsGarbage(t *testing.T) {
	svc := services.NewJWT(testSecret, 0)

	_, err := svc.Parse(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidSessionToken)
}

func TestJWTParseRejectsWrongKey(t *testing.T) {
	issuer := services.NewJWT(testSecret, 0)
	verifier := services.NewJWT("another-secret", 0)
	ctx := context.Background()

	token, _, err := issuer.Issue(ctx, "alice@example.com")
	require.NoError(t, err)

	_, err = verifier.Parse(ctx, token)
	assert.ErrorIs(t, err, domain.ErrInvalidSessionToken)
}

func TestJWTParseRejectsUnsignedAlgorithm(t *testing.T) {
	svc := services.NewJWT(testSecret, 0)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		ID:      "token-id",
		Subject: "alice@example.com",
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Parse(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrInvalidSessionToken)
}

func TestJWTParseRejectsExpired(t *testing.T) {
	svc := services.NewJWT(testSecret, -time.Hour)
	ctx := context.Background()

	token, _, err := svc.Issue(ctx, "alice@example.com")
	require.NoError(t, err)

	_, err = svc.Parse(ctx, token)
	assert.ErrorIs(t, err, domain.ErrInvalidSessionToken)
}

func TestJWTIssueEmptySecret(t *testing.T) {
	svc := services.NewJWT("", 0)

	_, _, err := svc.Issue(context.Background(), "alice@example.com")
	assert.ErrorIs(t, err, domain.ErrTokenIssueFailed)
}
