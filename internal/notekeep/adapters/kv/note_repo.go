package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"notekeep/internal/notekeep/domain/entities"
	"notekeep/pkg/kv"
	"notekeep/pkg/logger"
)

// NoteRepository хранит единый массив заметок всех пользователей под ключом
// notes. Каждая мутация выполняется в оптимистичной транзакции хранилища,
// поэтому конкурентные изменения коллекции не теряются.
type NoteRepository struct {
	store *kv.Store
}

// Create добавляет заметку в конец коллекции.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))

	err := r.store.Mutate(ctx, keyNotes, func(old []byte, _ bool) ([]byte, error) {
		notes := []*entities.Note{}
		decodeOrEmpty(ctx, old, &notes, keyNotes)

		notes = append(notes, note)
		return json.Marshal(notes)
	})
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return fmt.Errorf("creating note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", note.ID))
	return nil
}

// GetByID находит заметку по идентификатору.
func (r *NoteRepository) GetByID(ctx context.Context, id string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "GetByID"))

	notes, err := r.readAll(ctx)
	if err != nil {
		log.Error(ctx, "failed to read notes", zap.Error(err))
		return nil, err
	}

	for _, note := range notes {
		if note.ID == id {
			return note, nil
		}
	}

	log.Debug(ctx, "note not found", zap.String("noteID", id))
	return nil, entities.ErrNoteNotFound
}

// ListVisible возвращает заметки, где email - владелец или входит в SharedWith.
// Порядок коллекции сохраняется.
func (r *NoteRepository) ListVisible(ctx context.Context, email string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "ListVisible"))

	notes, err := r.readAll(ctx)
	if err != nil {
		log.Error(ctx, "failed to read notes", zap.Error(err))
		return nil, err
	}

	visible := make([]*entities.Note, 0, len(notes))
	for _, note := range notes {
		if note.VisibleTo(email) {
			visible = append(visible, note)
		}
	}
	return visible, nil
}

// Update замещает заметку с тем же идентификатором.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))

	err := r.store.Mutate(ctx, keyNotes, func(old []byte, _ bool) ([]byte, error) {
		notes := []*entities.Note{}
		decodeOrEmpty(ctx, old, &notes, keyNotes)

		for i, existing := range notes {
			if existing.ID == note.ID {
				notes[i] = note
				return json.Marshal(notes)
			}
		}
		return nil, entities.ErrNoteNotFound
	})
	if err != nil {
		log.Debug(ctx, "failed to update note", zap.Error(err), zap.String("noteID", note.ID))
		return fmt.Errorf("updating note: %w", err)
	}

	return nil
}

// Delete удаляет заметку из коллекции.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))

	err := r.store.Mutate(ctx, keyNotes, func(old []byte, _ bool) ([]byte, error) {
		notes := []*entities.Note{}
		decodeOrEmpty(ctx, old, &notes, keyNotes)

		for i, existing := range notes {
			if existing.ID == id {
				notes = append(notes[:i], notes[i+1:]...)
				return json.Marshal(notes)
			}
		}
		return nil, entities.ErrNoteNotFound
	})
	if err != nil {
		log.Debug(ctx, "failed to delete note", zap.Error(err), zap.String("noteID", id))
		return fmt.Errorf("deleting note: %w", err)
	}

	return nil
}

// readAll читает всю коллекцию заметок. Поврежденный блоб дает пустую коллекцию.
func (r *NoteRepository) readAll(ctx context.Context) ([]*entities.Note, error) {
	raw, _, err := r.store.Get(ctx, keyNotes)
	if err != nil {
		return nil, fmt.Errorf("reading notes: %w", err)
	}

	notes := []*entities.Note{}
	decodeOrEmpty(ctx, raw, &notes, keyNotes)
	return notes, nil
}
