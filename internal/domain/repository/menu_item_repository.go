package repository

import (
	"context"

	"github.com/jhoicas/menu-api/internal/domain/entity"
)

// MenuItemFilter filtros del listado. CategoryID nil = todas las categorías.
type MenuItemFilter struct {
	CategoryID *int64
}

// MenuItemRepository define el puerto de persistencia para MenuItem (DIP).
//
// Update y Delete devuelven las filas afectadas: 0 no es error (id inexistente).
type MenuItemRepository interface {
	// List ordena por nombre de categoría y luego por nombre del ítem, con CategoryName del JOIN.
	List(ctx context.Context, filter MenuItemFilter) ([]*entity.MenuItem, error)
	// Create asigna item.ID. Devuelve domain.ErrInvalidCategory si la FK falla.
	Create(ctx context.Context, item *entity.MenuItem) error
	Update(ctx context.Context, item *entity.MenuItem) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
