package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"notekeep/internal/notekeep/adapters/services"
	domain "notekeep/internal/notekeep/domain/services"
)

func TestBcryptHashAndVerify(t *testing.T) {
	svc := services.NewBcrypt(bcrypt.MinCost)
	ctx := context.Background()

	hash, err := svc.Hash(ctx, "password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	valid, err := svc.Verify(ctx, "password123", hash)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = svc.Verify(ctx, "wrong", hash)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestBcryptEmptyInputs(t *testing.T) {
	svc := services.NewBcrypt(bcrypt.MinCost)
	ctx := context.Background()

	_, err := svc.Hash(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)

	_, err = svc.Verify(ctx, "", "hash")
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)

	_, err = svc.Verify(ctx, "password", "")
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestBcryptHashesDiffer(t *testing.T) {
	svc := services.NewBcrypt(bcrypt.MinCost)
	ctx := context.Background()

	first, err := svc.Hash(ctx, "password123")
	require.NoError(t, err)
	second, err := svc.Hash(ctx, "password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
