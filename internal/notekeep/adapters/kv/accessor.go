// Package kv реализует репозитории приложения поверх хранилища JSON-блобов.
//
// Раскладка ключей: users - словарь email -> запись пользователя; notes -
// единый массив заметок всех пользователей; tags_<email> - массив тегов
// владельца; session:<id> - email активной сессии.
package kv

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"notekeep/pkg/kv"
	"notekeep/pkg/logger"
)

// Ключи хранилища.
const (
	keyUsers         = "users"
	keyNotes         = "notes"
	keyTagsPrefix    = "tags_"
	keySessionPrefix = "session:"
)

const msgMalformedData = "stored data is malformed, falling back to empty"

// decodeOrEmpty разбирает сохраненный блоб в dest. Поврежденные данные не
// являются фатальными: dest остается пустым значением, инцидент логируется.
func decodeOrEmpty(ctx context.Context, raw []byte, dest any, key string) {
	if len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Log(ctx).Warn(ctx, msgMalformedData, zap.String("key", key), zap.Error(err))
	}
}

// RepositoryFactory создает репозитории поверх одного хранилища.
type RepositoryFactory struct {
	store *kv.Store
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(store *kv.Store) *RepositoryFactory {
	return &RepositoryFactory{store: store}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() *UserRepository {
	return &UserRepository{store: f.store}
}

// NoteRepository возвращает репозиторий заметок.
func (f *RepositoryFactory) NoteRepository() *NoteRepository {
	return &NoteRepository{store: f.store}
}

// TagRepository возвращает репозиторий тегов.
func (f *RepositoryFactory) TagRepository() *TagRepository {
	return &TagRepository{store: f.store}
}

// SessionRepository возвращает репозиторий сессий.
func (f *RepositoryFactory) SessionRepository() *SessionRepository {
	return &SessionRepository{store: f.store}
}
