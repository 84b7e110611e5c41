package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notekeep/domain/services"
)

func TestSessionRepositoryStoreAndFind(t *testing.T) {
	factory, _ := newTestFactory(t)
	sessionRepo := factory.SessionRepository()
	ctx := context.Background()

	require.NoError(t, sessionRepo.Store(ctx, "token-1", "alice@example.com"))

	email, err := sessionRepo.Find(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestSessionRepositoryRevoke(t *testing.T) {
	factory, _ := newTestFactory(t)
	sessionRepo := factory.SessionRepository()
	ctx := context.Background()

	require.NoError(t, sessionRepo.Store(ctx, "token-1", "alice@example.com"))
	require.NoError(t, sessionRepo.Revoke(ctx, "token-1"))

	_, err := sessionRepo.Find(ctx, "token-1")
	assert.ErrorIs(t, err, services.ErrSessionNotFound)

	// Повторный отзыв не является ошибкой.
	require.NoError(t, sessionRepo.Revoke(ctx, "token-1"))
}

func TestSessionRepositoryFindUnknown(t *testing.T) {
	factory, _ := newTestFactory(t)
	sessionRepo := factory.SessionRepository()

	_, err := sessionRepo.Find(context.Background(), "ghost")
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
}
