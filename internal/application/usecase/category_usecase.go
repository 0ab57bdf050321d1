package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

// CategoryUseCase lectura de categorías (la API no las modifica).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// Create crea una categoría (uso exclusivo del seeder).
func (uc *CategoryUseCase) Create(ctx context.Context, name string) (*dto.CategoryResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Category{Name: name}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}, nil
}
