package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menu-api/internal/application/usecase"
)

// StatsHandler contadores del panel admin.
type StatsHandler struct {
	uc    *usecase.StatsUseCase
	dbErr dbErrorResponder
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase, dbErr dbErrorResponder) *StatsHandler {
	return &StatsHandler{uc: uc, dbErr: dbErr}
}

// Get godoc
// @Summary      Estadísticas del menú
// @Tags         stats
// @Produce      json
// @Security     SessionCookie
// @Success      200  {object}  dto.StatsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats [get]
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return h.dbErr.read(c, err)
	}
	return c.JSON(out)
}
