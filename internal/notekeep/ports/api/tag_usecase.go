package api

import (
	"context"

	"notekeep/internal/notekeep/domain/entities"
)

// TagUseCase определяет операции над тегами владельца.
type TagUseCase interface {
	List(ctx context.Context, owner string) ([]*entities.Tag, error)

	// Add создает тег с пустым именем и случайным цветом палитры.
	Add(ctx context.Context, owner string) (*entities.Tag, error)

	Rename(ctx context.Context, owner, id, name string) error

	Remove(ctx context.Context, owner, id string) error
}
