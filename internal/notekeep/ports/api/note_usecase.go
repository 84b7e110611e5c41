package api

import (
	"context"

	"notekeep/internal/notekeep/domain/entities"
	"notekeep/internal/notekeep/domain/services"
)

// NoteUseCase определяет операции над заметками от имени сессии.
type NoteUseCase interface {
	Create(ctx context.Context, sess *services.Session, draft entities.NoteDraft) (*entities.Note, error)

	Get(ctx context.Context, sess *services.Session, id string) (*entities.Note, error)

	// List возвращает видимые заметки сессии, отфильтрованные по критериям.
	List(ctx context.Context, sess *services.Session, criteria entities.FilterCriteria) ([]*entities.Note, error)

	Update(ctx context.Context, sess *services.Session, id string, patch entities.NotePatch) (*entities.Note, error)

	// Delete удаляет заметку владельца либо исключает участника из списка доступа.
	Delete(ctx context.Context, sess *services.Session, id string) error

	// ValidateShareTarget проверяет адресата перед добавлением в список доступа.
	ValidateShareTarget(ctx context.Context, sess *services.Session, current []string, target string) error
}
