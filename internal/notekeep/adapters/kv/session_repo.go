package kv

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"notekeep/internal/notekeep/domain/services"
	"notekeep/pkg/kv"
	"notekeep/pkg/logger"
)

// SessionRepository хранит активные сессии скалярными значениями
// session:<id> -> email. Сессии живут без срока; отзыв удаляет ключ.
type SessionRepository struct {
	store *kv.Store
}

func sessionKey(tokenID string) string {
	return keySessionPrefix + tokenID
}

// Store сохраняет сессию.
func (r *SessionRepository) Store(ctx context.Context, tokenID, email string) error {
	log := logger.Log(ctx).With(zap.String("repository", "session"), zap.String("method", "Store"))

	if err := r.store.Set(ctx, sessionKey(tokenID), []byte(email), 0); err != nil {
		log.Error(ctx, "failed to store session", zap.Error(err))
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

// Find возвращает email сессии или services.ErrSessionNotFound.
func (r *SessionRepository) Find(ctx context.Context, tokenID string) (string, error) {
	log := logger.Log(ctx).With(zap.String("repository", "session"), zap.String("method", "Find"))

	raw, found, err := r.store.Get(ctx, sessionKey(tokenID))
	if err != nil {
		log.Error(ctx, "failed to find session", zap.Error(err))
		return "", fmt.Errorf("finding session: %w", err)
	}
	if !found {
		log.Debug(ctx, "session not found")
		return "", services.ErrSessionNotFound
	}
	return string(raw), nil
}

// Revoke удаляет сессию. Отзыв несуществующей сессии не является ошибкой.
func (r *SessionRepository) Revoke(ctx context.Context, tokenID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "session"), zap.String("method", "Revoke"))

	if err := r.store.Delete(ctx, sessionKey(tokenID)); err != nil {
		log.Error(ctx, "failed to revoke session", zap.Error(err))
		return fmt.Errorf("revoking session: %w", err)
	}
	return nil
}
