package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de conteo para el panel admin.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el repositorio de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// GetMenuStats ejecuta tres COUNT independientes (sin transacción): total, disponibles y categorías.
func (r *StatsRepo) GetMenuStats(ctx context.Context) (*entity.MenuStats, error) {
	var s entity.MenuStats
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&s.TotalItems); err != nil {
		return nil, fmt.Errorf("count menu items: %w", err)
	}
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items WHERE is_available = TRUE`).Scan(&s.AvailableItems); err != nil {
		return nil, fmt.Errorf("count available items: %w", err)
	}
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&s.Categories); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	return &s, nil
}
