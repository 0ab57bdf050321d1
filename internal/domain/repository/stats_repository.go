package repository

import (
	"context"

	"github.com/jhoicas/menu-api/internal/domain/entity"
)

// StatsRepository consultas de agregación de solo lectura para el panel admin.
type StatsRepository interface {
	GetMenuStats(ctx context.Context) (*entity.MenuStats, error)
}
