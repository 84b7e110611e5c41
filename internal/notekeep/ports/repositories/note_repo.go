package repositories

import (
	"context"

	"notekeep/internal/notekeep/domain/entities"
)

// NoteRepository определяет операции над единой коллекцией заметок.
// Каждая мутация атомарна: реализация обязана исключать потерю
// конкурентных изменений (транзакция либо оптимистичный повтор).
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) error

	GetByID(ctx context.Context, id string) (*entities.Note, error)

	// ListVisible возвращает заметки, где email - владелец или входит в SharedWith.
	ListVisible(ctx context.Context, email string) ([]*entities.Note, error)

	Update(ctx context.Context, note *entities.Note) error

	Delete(ctx context.Context, id string) error
}
