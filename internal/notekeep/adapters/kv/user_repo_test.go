package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notekeep/domain/entities"
)

func TestUserRepositoryCreateAndFind(t *testing.T) {
	factory, _ := newTestFactory(t)
	userRepo := factory.UserRepository()
	ctx := context.Background()

	user := &entities.User{
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: "hash",
	}

	require.NoError(t, userRepo.Create(ctx, user))

	found, err := userRepo.FindByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)
	assert.Equal(t, user.Name, found.Name)
	assert.Equal(t, user.PasswordHash, found.PasswordHash)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	factory, _ := newTestFactory(t)
	userRepo := factory.UserRepository()
	ctx := context.Background()

	user := &entities.User{Email: "alice@example.com", Name: "Alice", PasswordHash: "hash"}
	require.NoError(t, userRepo.Create(ctx, user))

	err := userRepo.Create(ctx, &entities.User{Email: "alice@example.com", Name: "Other", PasswordHash: "x"})
	assert.ErrorIs(t, err, entities.ErrUserAlreadyExists)
}

func TestUserRepositoryFindUnknown(t *testing.T) {
	factory, _ := newTestFactory(t)
	userRepo := factory.UserRepository()

	_, err := userRepo.FindByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestUserRepositoryMalformedBlobRecovers(t *testing.T) {
	factory, mr := newTestFactory(t)
	userRepo := factory.UserRepository()
	ctx := context.Background()

	// Поврежденный блоб трактуется как пустая коллекция.
	require.NoError(t, mr.Set("users", "{not json"))

	_, err := userRepo.FindByEmail(ctx, "alice@example.com")
	assert.ErrorIs(t, err, entities.ErrUserNotFound)

	require.NoError(t, userRepo.Create(ctx, &entities.User{
		Email: "alice@example.com", Name: "Alice", PasswordHash: "hash",
	}))

	found, err := userRepo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)
}
