// Package repositories определяет порты хранения данных приложения.
package repositories

import (
	"context"

	"notekeep/internal/notekeep/domain/entities"
)

// UserRepository определяет операции над записями пользователей.
// Email - уникальный ключ; попытка повторной регистрации возвращает
// entities.ErrUserAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error

	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
