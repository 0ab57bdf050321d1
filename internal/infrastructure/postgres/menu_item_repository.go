package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo implementación del puerto MenuItemRepository sobre PostgreSQL (usable con pool o tx).
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador de persistencia para ítems del menú.
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

const menuItemSelect = `
	SELECT m.id, m.name, m.description, m.price, m.category_id, m.image_url, m.is_available, c.name
	FROM menu_items m
	JOIN categories c ON c.id = m.category_id`

// List devuelve los ítems con el nombre de su categoría, ordenados por categoría y nombre.
func (r *MenuItemRepo) List(ctx context.Context, filter repository.MenuItemFilter) ([]*entity.MenuItem, error) {
	query := menuItemSelect
	var args []any
	if filter.CategoryID != nil {
		query += ` WHERE m.category_id = $1`
		args = append(args, *filter.CategoryID)
	}
	query += ` ORDER BY c.name, m.name`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.MenuItem, 0)
	for rows.Next() {
		var m entity.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.CategoryID, &m.ImageURL, &m.IsAvailable, &m.CategoryName); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Create inserta el ítem y asigna item.ID. Una FK inválida se traduce a domain.ErrInvalidCategory.
func (r *MenuItemRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (name, description, price, category_id, image_url, is_available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		item.Name, item.Description, item.Price, item.CategoryID, item.ImageURL, item.IsAvailable,
	).Scan(&item.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidCategory
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// Update sobrescribe todas las columnas editables. Devuelve filas afectadas (0 si el id no existe).
func (r *MenuItemRepo) Update(ctx context.Context, item *entity.MenuItem) (int64, error) {
	query := `
		UPDATE menu_items
		SET name = $2, description = $3, price = $4, category_id = $5, image_url = $6, is_available = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.Price, item.CategoryID, item.ImageURL, item.IsAvailable,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrInvalidCategory
		}
		return 0, fmt.Errorf("update menu item: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina físicamente el ítem. Devuelve filas afectadas (0 si el id no existe).
func (r *MenuItemRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete menu item: %w", err)
	}
	return tag.RowsAffected(), nil
}
