package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menu-api/internal/application/usecase"
)

// CategoryHandler lectura de categorías.
type CategoryHandler struct {
	uc    *usecase.CategoryUseCase
	dbErr dbErrorResponder
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, dbErr dbErrorResponder) *CategoryHandler {
	return &CategoryHandler{uc: uc, dbErr: dbErr}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.dbErr.read(c, err)
	}
	return c.JSON(list)
}
