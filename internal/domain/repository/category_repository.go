package repository

import (
	"context"

	"github.com/jhoicas/menu-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	// List devuelve todas las categorías ordenadas por nombre.
	List(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
}
