package usecase

import (
	"context"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

// MenuUseCase casos de uso CRUD para ítems del menú.
type MenuUseCase struct {
	repo         repository.MenuItemRepository
	imageBaseURL string
}

// NewMenuUseCase construye el caso de uso. imageBaseURL es el prefijo de las URLs de imagen.
func NewMenuUseCase(repo repository.MenuItemRepository, imageBaseURL string) *MenuUseCase {
	return &MenuUseCase{repo: repo, imageBaseURL: imageBaseURL}
}

// List lista ítems (opcionalmente de una categoría) ordenados por categoría y nombre.
func (uc *MenuUseCase) List(ctx context.Context, categoryID *int64) ([]dto.MenuItemResponse, error) {
	list, err := uc.repo.List(ctx, repository.MenuItemFilter{CategoryID: categoryID})
	if err != nil {
		return nil, err
	}
	out := make([]dto.MenuItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, toMenuItemResponse(it))
	}
	return out, nil
}

// Create inserta un ítem. Solo exige presencia de name, price y category_id.
func (uc *MenuUseCase) Create(ctx context.Context, in dto.CreateMenuItemRequest) (*dto.CreateMenuItemResponse, error) {
	if in.Name == nil || in.Price == nil || in.CategoryID == nil {
		return nil, domain.ErrInvalidInput
	}
	item := uc.fromInput(in.MenuItemInput)
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return &dto.CreateMenuItemResponse{
		Success: true,
		ID:      item.ID,
		Message: "Menu item added successfully",
	}, nil
}

// Update sobrescribe todas las columnas del ítem con id. Un id inexistente no es error:
// la respuesta lleva Affected = 0.
func (uc *MenuUseCase) Update(ctx context.Context, in dto.UpdateMenuItemRequest) (*dto.MutationResponse, error) {
	if in.ID == nil {
		return nil, domain.ErrInvalidInput
	}
	item := uc.fromInput(in.MenuItemInput)
	item.ID = *in.ID
	affected, err := uc.repo.Update(ctx, item)
	if err != nil {
		return nil, err
	}
	return &dto.MutationResponse{
		Success:  true,
		Message:  "Menu item updated successfully",
		Affected: affected,
	}, nil
}

// Delete borra físicamente el ítem. Un id inexistente no es error.
func (uc *MenuUseCase) Delete(ctx context.Context, id int64) (*dto.MutationResponse, error) {
	affected, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.MutationResponse{
		Success:  true,
		Message:  "Menu item deleted successfully",
		Affected: affected,
	}, nil
}

// fromInput aplica los valores por defecto de una escritura completa:
// description "", is_available true, imagen nil si no se envía.
func (uc *MenuUseCase) fromInput(in dto.MenuItemInput) *entity.MenuItem {
	item := &entity.MenuItem{
		IsAvailable: true,
		ImageURL:    ImageURL(uc.imageBaseURL, in.ImageRef()),
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.CategoryID != nil {
		item.CategoryID = *in.CategoryID
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	return item
}

func toMenuItemResponse(it *entity.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Description:  it.Description,
		Price:        it.Price,
		CategoryID:   it.CategoryID,
		ImageURL:     it.ImageURL,
		IsAvailable:  it.IsAvailable,
		CategoryName: it.CategoryName,
	}
}
