package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/application/usecase"
	"github.com/jhoicas/menu-api/internal/domain"
)

// MenuHandler CRUD de ítems del menú. El listado es público; las escrituras requieren RequireAdmin.
type MenuHandler struct {
	uc    *usecase.MenuUseCase
	dbErr dbErrorResponder
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *usecase.MenuUseCase, dbErr dbErrorResponder) *MenuHandler {
	return &MenuHandler{uc: uc, dbErr: dbErr}
}

// List godoc
// @Summary      Listar ítems del menú
// @Description  Ordenados por nombre de categoría y nombre del ítem. category_id vacío o 0 = sin filtro.
// @Tags         menu
// @Produce      json
// @Param        category_id  query  int  false  "Filtrar por categoría"
// @Success      200  {array}   dto.MenuItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	var categoryID *int64
	if raw := c.Query("category_id"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, dto.CodeValidation, "category_id must be an integer")
		}
		if n != 0 {
			categoryID = &n
		}
	}
	list, err := h.uc.List(c.UserContext(), categoryID)
	if err != nil {
		return h.dbErr.read(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear ítem del menú
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body  dto.CreateMenuItemRequest  true  "name, price, category_id obligatorios"
// @Success      201   {object}  dto.CreateMenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/menu [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, dto.CodeInvalidBody, msgInvalidBody)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return errorJSON(c, fiber.StatusBadRequest, dto.CodeValidation, "Name, price, and category_id are required")
		}
		return h.writeError(c, err)
	}
	h.dbErr.log.Info().Int64("item_id", out.ID).Str("admin", GetUsername(c)).Msg("ítem creado")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Sobrescribir ítem del menú
// @Description  Reemplaza todas las columnas. Un id inexistente responde success con affected=0.
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body  dto.UpdateMenuItemRequest  true  "id obligatorio"
// @Success      200   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/menu [put]
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, dto.CodeInvalidBody, msgInvalidBody)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return errorJSON(c, fiber.StatusBadRequest, dto.CodeValidation, "ID is required")
		}
		return h.writeError(c, err)
	}
	h.dbErr.log.Info().Int64("item_id", *in.ID).Int64("affected", out.Affected).Str("admin", GetUsername(c)).Msg("ítem actualizado")
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar ítem del menú
// @Description  Borrado físico. Un id inexistente responde success con affected=0.
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body  dto.DeleteMenuItemRequest  true  "id"
// @Success      200   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/menu [delete]
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteMenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, dto.CodeInvalidBody, msgInvalidBody)
	}
	if in.ID == nil {
		return errorJSON(c, fiber.StatusBadRequest, dto.CodeValidation, "ID is required")
	}
	out, err := h.uc.Delete(c.UserContext(), *in.ID)
	if err != nil {
		return h.writeError(c, err)
	}
	h.dbErr.log.Info().Int64("item_id", *in.ID).Int64("affected", out.Affected).Str("admin", GetUsername(c)).Msg("ítem borrado")
	return c.JSON(out)
}

func (h *MenuHandler) writeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidCategory) {
		return errorJSON(c, fiber.StatusBadRequest, dto.CodeInvalidCategory, "Category does not exist")
	}
	return h.dbErr.write(c, err)
}
