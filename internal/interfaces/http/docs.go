package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/pkg/logger"
)

// DocsConfig ubicación del documento Swagger en disco para la UI.
type DocsConfig struct {
	FilePath string // ej: ./docs/swagger.json
	Path     string // ruta de la UI, ej: docs
	Title    string
}

// RegisterDocs expone el documento registrado en swag en /openapi.json y, si el archivo
// existe en disco, la UI de Swagger en /<Path>. swagger.New hace panic sin archivo.
func RegisterDocs(app *fiber.App, cfg DocsConfig, log *logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			log.Error().Err(err).Msg("leer documento swagger")
			return errorJSON(c, fiber.StatusInternalServerError, dto.CodeInternal, msgInternal)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	if cfg.FilePath == "" {
		return
	}
	if _, err := os.Stat(cfg.FilePath); err != nil {
		log.Warn().Str("file", cfg.FilePath).Msg("swagger UI deshabilitada: documento no encontrado")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.FilePath,
		Path:     cfg.Path,
		Title:    cfg.Title,
	}))
}
