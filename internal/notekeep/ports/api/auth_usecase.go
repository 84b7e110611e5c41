// Package api определяет входные порты бизнес-логики приложения.
package api

import (
	"context"

	"notekeep/internal/notekeep/domain/entities"
	"notekeep/internal/notekeep/domain/services"
)

// AuthUseCase определяет операции учетных записей и сессий.
type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (*services.IssuedSession, error)

	Login(ctx context.Context, email, password string) (*services.IssuedSession, error)

	Logout(ctx context.Context, token string) error

	// Authenticate разбирает токен и проверяет, что сессия не отозвана.
	Authenticate(ctx context.Context, token string) (*services.Session, error)

	// Lookup возвращает запись пользователя по email.
	Lookup(ctx context.Context, email string) (*entities.User, error)
}
