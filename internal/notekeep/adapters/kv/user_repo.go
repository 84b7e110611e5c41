package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"notekeep/internal/notekeep/domain/entities"
	"notekeep/pkg/kv"
	"notekeep/pkg/logger"
)

// UserRepository хранит пользователей словарем email -> запись под ключом users.
type UserRepository struct {
	store *kv.Store
}

// Create добавляет нового пользователя. Уникальность email проверяется
// внутри транзакции мутации, гонка двух регистраций исключена.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	err := r.store.Mutate(ctx, keyUsers, func(old []byte, _ bool) ([]byte, error) {
		users := map[string]*entities.User{}
		decodeOrEmpty(ctx, old, &users, keyUsers)

		if _, exists := users[user.Email]; exists {
			return nil, entities.ErrUserAlreadyExists
		}

		if user.CreatedAt.IsZero() {
			user.CreatedAt = time.Now().UTC()
		}
		users[user.Email] = user

		return json.Marshal(users)
	})
	if err != nil {
		log.Debug(ctx, "failed to create user", zap.Error(err))
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

// FindByEmail находит пользователя по email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmail"))

	raw, _, err := r.store.Get(ctx, keyUsers)
	if err != nil {
		log.Error(ctx, "error reading users", zap.Error(err))
		return nil, fmt.Errorf("reading users: %w", err)
	}

	users := map[string]*entities.User{}
	decodeOrEmpty(ctx, raw, &users, keyUsers)

	user, ok := users[email]
	if !ok {
		log.Debug(ctx, "user not found", zap.String("email", email))
		return nil, entities.ErrUserNotFound
	}
	return user, nil
}
