package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo implementación del puerto MenuItemRepository sobre SQLite.
type MenuItemRepo struct {
	db *gorm.DB
}

// NewMenuItemRepository construye el adaptador de persistencia para ítems del menú.
func NewMenuItemRepository(db *gorm.DB) *MenuItemRepo {
	return &MenuItemRepo{db: db}
}

// List devuelve los ítems con el nombre de su categoría, ordenados por categoría y nombre.
func (r *MenuItemRepo) List(ctx context.Context, filter repository.MenuItemFilter) ([]*entity.MenuItem, error) {
	q := r.db.WithContext(ctx).
		Table("menu_items AS m").
		Select("m.id, m.name, m.description, m.price, m.category_id, m.image_url, m.is_available, c.name AS category_name").
		Joins("JOIN categories c ON c.id = m.category_id")
	if filter.CategoryID != nil {
		q = q.Where("m.category_id = ?", *filter.CategoryID)
	}
	var rows []menuItemRow
	if err := q.Order("c.name, m.name").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	list := make([]*entity.MenuItem, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}

// Create inserta el ítem y asigna item.ID. Una FK inválida se traduce a domain.ErrInvalidCategory.
func (r *MenuItemRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	m := menuItemModel{
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		CategoryID:  item.CategoryID,
		ImageURL:    item.ImageURL,
		IsAvailable: item.IsAvailable,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidCategory
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	item.ID = m.ID
	return nil
}

// Update sobrescribe todas las columnas editables (map: incluye valores cero). Devuelve filas afectadas.
func (r *MenuItemRepo) Update(ctx context.Context, item *entity.MenuItem) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&menuItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"name":         item.Name,
			"description":  item.Description,
			"price":        item.Price,
			"category_id":  item.CategoryID,
			"image_url":    item.ImageURL,
			"is_available": item.IsAvailable,
		})
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return 0, domain.ErrInvalidCategory
		}
		return 0, fmt.Errorf("update menu item: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Delete elimina físicamente el ítem. Devuelve filas afectadas (0 si el id no existe).
func (r *MenuItemRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&menuItemModel{}, id)
	if res.Error != nil {
		return 0, fmt.Errorf("delete menu item: %w", res.Error)
	}
	return res.RowsAffected, nil
}
