package repositories

import (
	"context"

	"notekeep/internal/notekeep/domain/entities"
)

// TagRepository определяет операции над тегами одного владельца.
// Список сохраняет порядок вставки. List обязан лениво чинить цвета,
// не входящие в палитру, и сохранять результат починки.
type TagRepository interface {
	List(ctx context.Context, owner string) ([]*entities.Tag, error)

	Add(ctx context.Context, owner string, tag *entities.Tag) error

	Rename(ctx context.Context, owner, id, name string) error

	Remove(ctx context.Context, owner, id string) error
}
