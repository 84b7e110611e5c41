package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"notekeep/internal/notekeep/domain/entities"
	"notekeep/internal/notekeep/ports/api"
	"notekeep/internal/notekeep/ports/repositories"
	"notekeep/pkg/logger"
)

const (
	methodTagList   = "TagList"
	methodTagAdd    = "TagAdd"
	methodTagRename = "TagRename"
	methodTagRemove = "TagRemove"

	msgTagCreated       = "tag created"
	msgTagRenamed       = "tag renamed"
	msgTagRemoved       = "tag removed"
	msgTagRenameSkipped = "tag rename skipped: empty name"

	msgErrListTags  = "failed to list tags"
	msgErrAddTag    = "failed to add tag"
	msgErrRenameTag = "failed to rename tag"
	msgErrRemoveTag = "failed to remove tag"

	errCtxListingTags = "listing tags"
	errCtxAddingTag   = "adding tag"
	errCtxRenamingTag = "renaming tag"
	errCtxRemovingTag = "removing tag"
)

// TagUseCaseImpl реализует интерфейс api.TagUseCase.
type TagUseCaseImpl struct {
	tagRepo repositories.TagRepository
}

// NewTagUseCase создает новый экземпляр сервиса тегов.
func NewTagUseCase(tagRepo repositories.TagRepository) api.TagUseCase {
	return &TagUseCaseImpl{tagRepo: tagRepo}
}

// List возвращает теги владельца в порядке вставки.
func (t *TagUseCaseImpl) List(ctx context.Context, owner string) ([]*entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("method", methodTagList), zap.String("owner", owner))

	tags, err := t.tagRepo.List(ctx, owner)
	if err != nil {
		log.Error(ctx, msgErrListTags, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingTags, err)
	}
	return tags, nil
}

// Add создает тег с пустым именем и случайным цветом палитры.
// Заполнить имя пользователь должен следующим действием.
func (t *TagUseCaseImpl) Add(ctx context.Context, owner string) (*entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("method", methodTagAdd), zap.String("owner", owner))

	tag := &entities.Tag{
		ID:    uuid.New().String(),
		Name:  "",
		Color: entities.RandomPaletteColor(),
	}

	if err := t.tagRepo.Add(ctx, owner, tag); err != nil {
		log.Error(ctx, msgErrAddTag, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxAddingTag, err)
	}

	log.Info(ctx, msgTagCreated, zap.String("tagID", tag.ID))
	return tag, nil
}

// Rename переименовывает тег. Пустое после обрезки пробелов имя игнорируется.
func (t *TagUseCaseImpl) Rename(ctx context.Context, owner, id, name string) error {
	log := logger.Log(ctx).With(zap.String("method", methodTagRename), zap.String("owner", owner), zap.String("tagID", id))

	if strings.TrimSpace(name) == "" {
		log.Debug(ctx, msgTagRenameSkipped)
		return nil
	}

	if err := t.tagRepo.Rename(ctx, owner, id, name); err != nil {
		log.Error(ctx, msgErrRenameTag, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRenamingTag, err)
	}

	log.Info(ctx, msgTagRenamed)
	return nil
}

// Remove удаляет тег. Заметки, ссылающиеся на его имя, не меняются:
// имя тега на заметке - денормализованная метка без ссылочной целостности.
func (t *TagUseCaseImpl) Remove(ctx context.Context, owner, id string) error {
	log := logger.Log(ctx).With(zap.String("method", methodTagRemove), zap.String("owner", owner), zap.String("tagID", id))

	if err := t.tagRepo.Remove(ctx, owner, id); err != nil {
		log.Error(ctx, msgErrRemoveTag, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRemovingTag, err)
	}

	log.Info(ctx, msgTagRemoved)
	return nil
}
