package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/application/export"
	"github.com/jhoicas/menu-api/pkg/logger"
)

// HeaderContentSHA256 digest hex del cuerpo canónico del feed XML.
const HeaderContentSHA256 = "X-Content-SHA256"

// ExportHandler descargas públicas del menú (solo ítems disponibles).
type ExportHandler struct {
	uc  *export.UseCase
	log *logger.Logger
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase, log *logger.Logger) *ExportHandler {
	return &ExportHandler{uc: uc, log: log}
}

// MenuPDF godoc
// @Summary      Carta imprimible en PDF
// @Tags         export
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/export/menu.pdf [get]
func (h *ExportHandler) MenuPDF(c *fiber.Ctx) error {
	body, filename, err := h.uc.PDF(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("exportar menú en PDF")
		return errorJSON(c, fiber.StatusInternalServerError, dto.CodeInternal, "Export failed")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(body)
}

// MenuXML godoc
// @Summary      Feed XML canónico del menú
// @Tags         export
// @Produce      application/xml
// @Success      200  {string}  string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/export/menu.xml [get]
func (h *ExportHandler) MenuXML(c *fiber.Ctx) error {
	body, digest, err := h.uc.Feed(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("exportar feed XML")
		return errorJSON(c, fiber.StatusInternalServerError, dto.CodeInternal, "Export failed")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(HeaderContentSHA256, digest)
	return c.Send(body)
}
