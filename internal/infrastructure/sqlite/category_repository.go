package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre SQLite.
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository construye el adaptador. db puede ser una transacción.
func NewCategoryRepository(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// List devuelve todas las categorías ordenadas por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var models []categoryModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	list := make([]*entity.Category, 0, len(models))
	for _, m := range models {
		list = append(list, &entity.Category{ID: m.ID, Name: m.Name})
	}
	return list, nil
}

// Create persiste una categoría y asigna category.ID.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	m := categoryModel{Name: category.Name}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	category.ID = m.ID
	return nil
}
