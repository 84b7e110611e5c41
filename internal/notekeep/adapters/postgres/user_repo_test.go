package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notekeep/adapters/postgres"
	"notekeep/internal/notekeep/domain/entities"
)

func TestUserRepositoryCreate(t *testing.T) {
	ctx := context.Background()

	inputUser := &entities.User{
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: "hashed_password",
	}
	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Success - user created", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Email, inputUser.Name, inputUser.PasswordHash).
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

		userRepo := postgres.NewUserRepository(mock)

		require.NoError(t, userRepo.Create(ctx, inputUser))
		assert.Equal(t, createdAt, inputUser.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error - duplicate email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Email, inputUser.Name, inputUser.PasswordHash).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		userRepo := postgres.NewUserRepository(mock)

		err = userRepo.Create(ctx, inputUser)
		assert.ErrorIs(t, err, entities.ErrUserAlreadyExists)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error - database failure", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Email, inputUser.Name, inputUser.PasswordHash).
			WillReturnError(errors.New("connection refused"))

		userRepo := postgres.NewUserRepository(mock)

		err = userRepo.Create(ctx, inputUser)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error creating user")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Success - user found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT email, name, password_hash, created_at").
			WithArgs("alice@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"email", "name", "password_hash", "created_at"}).
				AddRow("alice@example.com", "Alice", "hashed", createdAt))

		userRepo := postgres.NewUserRepository(mock)

		user, err := userRepo.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, createdAt, user.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error - user not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT email, name, password_hash, created_at").
			WithArgs("ghost@example.com").
			WillReturnError(pgx.ErrNoRows)

		userRepo := postgres.NewUserRepository(mock)

		user, err := userRepo.FindByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, user)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
