package repositories

import "context"

// SessionRepository хранит активные сессии по идентификатору токена.
// Отозванная или несуществующая сессия при поиске возвращает
// services.ErrSessionNotFound.
type SessionRepository interface {
	Store(ctx context.Context, tokenID, email string) error

	Find(ctx context.Context, tokenID string) (string, error)

	Revoke(ctx context.Context, tokenID string) error
}
