package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"notekeep/internal/notekeep/domain/entities"
	"notekeep/pkg/logger"
)

// NoteRepository реализует repositories.NoteRepository для PostgreSQL.
// Каждая мутация - одиночный оператор и потому атомарна: конкурентные
// изменения разных заметок не затирают друг друга, в отличие от
// полной перезаписи коллекции.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) *NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))
	log.Debug(ctx, "creating note", zap.String("owner", note.Owner))

	_, err := r.pool.Exec(ctx,
		`INSERT INTO notes (id, title, content, tag, background_url, owner_email, created_at, shared_with)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		note.ID, note.Title, note.Content, note.Tag, note.BackgroundURL,
		note.Owner, note.CreatedAt, note.SharedWith,
	)
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", note.ID))
	return nil
}

// GetByID получает заметку по идентификатору.
func (r *NoteRepository) GetByID(ctx context.Context, id string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "GetByID"))

	var note entities.Note
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, content, tag, background_url, owner_email, created_at, shared_with
         FROM notes
         WHERE id = $1`,
		id,
	).Scan(&note.ID, &note.Title, &note.Content, &note.Tag, &note.BackgroundURL,
		&note.Owner, &note.CreatedAt, &note.SharedWith)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", id))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// ListVisible возвращает заметки, где email - владелец или входит в shared_with,
// в порядке создания.
func (r *NoteRepository) ListVisible(ctx context.Context, email string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "ListVisible"))
	log.Debug(ctx, "listing visible notes", zap.String("email", email))

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, content, tag, background_url, owner_email, created_at, shared_with
         FROM notes
         WHERE owner_email = $1 OR $1 = ANY(shared_with)
         ORDER BY created_at`,
		email,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.Tag, &note.BackgroundURL,
			&note.Owner, &note.CreatedAt, &note.SharedWith)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// Update обновляет существующую заметку.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", note.ID))

	result, err := r.pool.Exec(ctx,
		`UPDATE notes
         SET title = $2, content = $3, tag = $4, background_url = $5, shared_with = $6
         WHERE id = $1`,
		note.ID, note.Title, note.Content, note.Tag, note.BackgroundURL, note.SharedWith,
	)
	if err != nil {
		log.Error(ctx, "failed to update note", zap.Error(err))
		return fmt.Errorf("failed to update note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found for update", zap.String("noteID", note.ID))
		return entities.ErrNoteNotFound
	}

	return nil
}

// Delete удаляет заметку.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", id))

	result, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found for deletion", zap.String("noteID", id))
		return entities.ErrNoteNotFound
	}

	return nil
}
