package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de conteo para el panel admin.
type StatsRepo struct {
	db *gorm.DB
}

// NewStatsRepository construye el repositorio de estadísticas.
func NewStatsRepository(db *gorm.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// GetMenuStats ejecuta tres COUNT independientes: total, disponibles y categorías.
func (r *StatsRepo) GetMenuStats(ctx context.Context) (*entity.MenuStats, error) {
	var s entity.MenuStats
	db := r.db.WithContext(ctx)
	if err := db.Model(&menuItemModel{}).Count(&s.TotalItems).Error; err != nil {
		return nil, fmt.Errorf("count menu items: %w", err)
	}
	if err := db.Model(&menuItemModel{}).Where("is_available = ?", true).Count(&s.AvailableItems).Error; err != nil {
		return nil, fmt.Errorf("count available items: %w", err)
	}
	if err := db.Model(&categoryModel{}).Count(&s.Categories).Error; err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	return &s, nil
}
