package dto

import "github.com/shopspring/decimal"

// MenuItemInput campos comunes de alta y edición. Los punteros distinguen "ausente" de "vacío".
// Image es el nombre alternativo aceptado para ImageURL.
type MenuItemInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *int64           `json:"category_id"`
	ImageURL    *string          `json:"image_url"`
	Image       *string          `json:"image"`
	IsAvailable *bool            `json:"is_available"`
}

// ImageRef devuelve la referencia de imagen enviada por el cliente (image_url, si no image).
func (in MenuItemInput) ImageRef() string {
	if in.ImageURL != nil && *in.ImageURL != "" {
		return *in.ImageURL
	}
	if in.Image != nil {
		return *in.Image
	}
	return ""
}

// CreateMenuItemRequest entrada para crear un ítem.
type CreateMenuItemRequest struct {
	MenuItemInput
}

// UpdateMenuItemRequest entrada para sobrescribir un ítem completo.
type UpdateMenuItemRequest struct {
	ID *int64 `json:"id"`
	MenuItemInput
}

// DeleteMenuItemRequest entrada para borrar un ítem.
type DeleteMenuItemRequest struct {
	ID *int64 `json:"id"`
}

// MenuItemResponse salida de un ítem con el nombre de su categoría.
type MenuItemResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   int64           `json:"category_id"`
	ImageURL     *string         `json:"image_url"`
	IsAvailable  bool            `json:"is_available"`
	CategoryName string          `json:"category_name"`
}

// CreateMenuItemResponse salida del alta.
type CreateMenuItemResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// MutationResponse salida de edición y borrado. Affected = 0 cuando el id no existe.
type MutationResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Affected int64  `json:"affected"`
}
