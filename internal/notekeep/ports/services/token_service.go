package services

import (
	"context"

	domain "notekeep/internal/notekeep/domain/services"
)

// TokenService выпускает и разбирает подписанные токены сессий.
type TokenService interface {
	// Issue выпускает токен для email и возвращает его вместе с описанием сессии.
	Issue(ctx context.Context, email string) (string, *domain.Session, error)

	// Parse проверяет подпись токена и возвращает описание сессии.
	// Наличие сессии в хранилище Parse не проверяет.
	Parse(ctx context.Context, token string) (*domain.Session, error)
}
