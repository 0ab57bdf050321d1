package usecase

import (
	"context"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

// StatsUseCase contadores del panel admin.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Get devuelve total de ítems, ítems disponibles y número de categorías.
func (uc *StatsUseCase) Get(ctx context.Context) (*dto.StatsResponse, error) {
	s, err := uc.repo.GetMenuStats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalItems:     s.TotalItems,
		AvailableItems: s.AvailableItems,
		Categories:     s.Categories,
	}, nil
}
