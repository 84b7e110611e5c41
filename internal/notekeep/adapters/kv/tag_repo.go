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

// TagRepository хранит теги каждого владельца отдельным массивом под ключом
// tags_<email>. Список переписывается целиком при каждой мутации, порядок
// вставки сохраняется.
type TagRepository struct {
	store *kv.Store
}

func tagsKey(owner string) string {
	return keyTagsPrefix + owner
}

// List возвращает теги владельца. Цвета вне палитры лениво чинятся при
// чтении, починка сохраняется; id и имя при этом не меняются.
func (r *TagRepository) List(ctx context.Context, owner string) ([]*entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "List"), zap.String("owner", owner))

	var tags []*entities.Tag
	err := r.store.Mutate(ctx, tagsKey(owner), func(old []byte, found bool) ([]byte, error) {
		tags = []*entities.Tag{}
		decodeOrEmpty(ctx, old, &tags, tagsKey(owner))

		repaired := false
		for _, tag := range tags {
			if tag.RepairColor() {
				log.Debug(ctx, "tag color repaired", zap.String("tagID", tag.ID))
				repaired = true
			}
		}
		if !found || !repaired {
			return nil, kv.ErrNoChange
		}
		return json.Marshal(tags)
	})
	if err != nil {
		log.Error(ctx, "failed to list tags", zap.Error(err))
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	return tags, nil
}

// Add добавляет тег в конец списка владельца.
func (r *TagRepository) Add(ctx context.Context, owner string, tag *entities.Tag) error {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "Add"), zap.String("owner", owner))

	err := r.store.Mutate(ctx, tagsKey(owner), func(old []byte, _ bool) ([]byte, error) {
		tags := []*entities.Tag{}
		decodeOrEmpty(ctx, old, &tags, tagsKey(owner))

		tags = append(tags, tag)
		return json.Marshal(tags)
	})
	if err != nil {
		log.Error(ctx, "failed to add tag", zap.Error(err))
		return fmt.Errorf("adding tag: %w", err)
	}

	return nil
}

// Rename обновляет имя тега по идентификатору.
func (r *TagRepository) Rename(ctx context.Context, owner, id, name string) error {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "Rename"), zap.String("owner", owner))

	err := r.store.Mutate(ctx, tagsKey(owner), func(old []byte, _ bool) ([]byte, error) {
		tags := []*entities.Tag{}
		decodeOrEmpty(ctx, old, &tags, tagsKey(owner))

		for _, tag := range tags {
			if tag.ID == id {
				tag.Name = name
				return json.Marshal(tags)
			}
		}
		return nil, entities.ErrTagNotFound
	})
	if err != nil {
		log.Debug(ctx, "failed to rename tag", zap.Error(err), zap.String("tagID", id))
		return fmt.Errorf("renaming tag: %w", err)
	}

	return nil
}

// Remove удаляет тег по идентификатору.
func (r *TagRepository) Remove(ctx context.Context, owner, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "Remove"), zap.String("owner", owner))

	err := r.store.Mutate(ctx, tagsKey(owner), func(old []byte, _ bool) ([]byte, error) {
		tags := []*entities.Tag{}
		decodeOrEmpty(ctx, old, &tags, tagsKey(owner))

		for i, tag := range tags {
			if tag.ID == id {
				tags = append(tags[:i], tags[i+1:]...)
				return json.Marshal(tags)
			}
		}
		return nil, entities.ErrTagNotFound
	})
	if err != nil {
		log.Debug(ctx, "failed to remove tag", zap.Error(err), zap.String("tagID", id))
		return fmt.Errorf("removing tag: %w", err)
	}

	return nil
}
