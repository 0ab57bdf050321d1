package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/pkg/logger"
)

// Mensajes de error expuestos a los clientes. Son parte del contrato de la API.
const (
	msgInvalidBody      = "Invalid request body"
	msgUnauthorized     = "Unauthorized"
	msgMethodNotAllowed = "Method not allowed"
	msgNotFound         = "Not found"
	msgDatabaseError    = "Database error"
	msgInternal         = "Internal server error"
)

func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: message, Code: code})
}

// dbErrorResponder responde 500 ante fallos del almacenamiento. En escrituras agrega el detalle
// del driver salvo que hideDetail (APP_ENV=production) esté activo.
type dbErrorResponder struct {
	log        *logger.Logger
	hideDetail bool
}

// read fallo en una consulta: nunca expone el detalle.
func (r dbErrorResponder) read(c *fiber.Ctx, err error) error {
	r.log.Error().Err(err).Str("path", c.Path()).Msg("error de base de datos en lectura")
	return errorJSON(c, fiber.StatusInternalServerError, dto.CodeInternal, msgDatabaseError)
}

// write fallo en una escritura: "Database error: <detalle>" fuera de producción.
func (r dbErrorResponder) write(c *fiber.Ctx, err error) error {
	r.log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error de base de datos en escritura")
	if r.hideDetail {
		return errorJSON(c, fiber.StatusInternalServerError, dto.CodeInternal, msgDatabaseError)
	}
	return errorJSON(c, fiber.StatusInternalServerError, dto.CodeInternal, msgDatabaseError+": "+err.Error())
}

// methodNotAllowed se registra con All() después de las rutas válidas de un path.
func methodNotAllowed(allowed ...string) fiber.Handler {
	allow := strings.Join(allowed, ", ")
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAllow, allow)
		return errorJSON(c, fiber.StatusMethodNotAllowed, dto.CodeMethodNotAllowed, msgMethodNotAllowed)
	}
}

// ErrorHandler handler global de Fiber: rutas inexistentes, errores de Fiber y panics recuperados se devuelven como JSON.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound:
				return errorJSON(c, fe.Code, dto.CodeNotFound, msgNotFound)
			case fiber.StatusMethodNotAllowed:
				return errorJSON(c, fe.Code, dto.CodeMethodNotAllowed, msgMethodNotAllowed)
			case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
				return errorJSON(c, fiber.StatusBadRequest, dto.CodeInvalidBody, msgInvalidBody)
			}
			if fe.Code < fiber.StatusInternalServerError {
				return errorJSON(c, fe.Code, "", fe.Message)
			}
		}
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
		return errorJSON(c, fiber.StatusInternalServerError, dto.CodeInternal, msgInternal)
	}
}
