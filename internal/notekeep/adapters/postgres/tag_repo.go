package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"notekeep/internal/notekeep/domain/entities"
	"notekeep/pkg/logger"
)

// TagRepository реализует repositories.TagRepository для PostgreSQL.
// Порядок вставки задается монотонной колонкой position.
type TagRepository struct {
	pool PgxPoolInterface
}

// NewTagRepository создает новый репозиторий тегов.
func NewTagRepository(pool PgxPoolInterface) *TagRepository {
	return &TagRepository{pool: pool}
}

// List возвращает теги владельца в порядке вставки. Цвета вне палитры
// чинятся при чтении; починка записывается в одной транзакции.
func (r *TagRepository) List(ctx context.Context, owner string) ([]*entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "List"), zap.String("owner", owner))

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, color
         FROM tags
         WHERE owner_email = $1
         ORDER BY position`,
		owner,
	)
	if err != nil {
		log.Error(ctx, "failed to list tags", zap.Error(err))
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	tags := make([]*entities.Tag, 0)
	repaired := make([]*entities.Tag, 0)
	for rows.Next() {
		var tag entities.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Color); err != nil {
			log.Error(ctx, "failed to scan tag", zap.Error(err))
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		if tag.RepairColor() {
			log.Debug(ctx, "tag color repaired", zap.String("tagID", tag.ID))
			repaired = append(repaired, &tag)
		}
		tags = append(tags, &tag)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if len(repaired) > 0 {
		if err := r.persistColors(ctx, owner, repaired); err != nil {
			log.Error(ctx, "failed to persist repaired colors", zap.Error(err))
			return nil, err
		}
	}

	return tags, nil
}

// persistColors записывает починенные цвета одной транзакцией.
func (r *TagRepository) persistColors(ctx context.Context, owner string, tags []*entities.Tag) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, tag := range tags {
		_, err := tx.Exec(ctx,
			`UPDATE tags SET color = $3 WHERE owner_email = $1 AND id = $2`,
			owner, tag.ID, tag.Color,
		)
		if err != nil {
			return fmt.Errorf("updating tag color: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Add добавляет тег в конец списка владельца.
func (r *TagRepository) Add(ctx context.Context, owner string, tag *entities.Tag) error {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "Add"), zap.String("owner", owner))

	_, err := r.pool.Exec(ctx,
		`INSERT INTO tags (owner_email, id, name, color) VALUES ($1, $2, $3, $4)`,
		owner, tag.ID, tag.Name, tag.Color,
	)
	if err != nil {
		log.Error(ctx, "failed to add tag", zap.Error(err))
		return fmt.Errorf("failed to add tag: %w", err)
	}

	return nil
}

// Rename обновляет имя тега.
func (r *TagRepository) Rename(ctx context.Context, owner, id, name string) error {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "Rename"), zap.String("owner", owner))

	result, err := r.pool.Exec(ctx,
		`UPDATE tags SET name = $3 WHERE owner_email = $1 AND id = $2`,
		owner, id, name,
	)
	if err != nil {
		log.Error(ctx, "failed to rename tag", zap.Error(err))
		return fmt.Errorf("failed to rename tag: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "tag not found for rename", zap.String("tagID", id))
		return entities.ErrTagNotFound
	}

	return nil
}

// Remove удаляет тег.
func (r *TagRepository) Remove(ctx context.Context, owner, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "Remove"), zap.String("owner", owner))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM tags WHERE owner_email = $1 AND id = $2`,
		owner, id,
	)
	if err != nil {
		log.Error(ctx, "failed to remove tag", zap.Error(err))
		return fmt.Errorf("failed to remove tag: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "tag not found for removal", zap.String("tagID", id))
		return entities.ErrTagNotFound
	}

	return nil
}
