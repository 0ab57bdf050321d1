package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menu-api/internal/application/auth"
	"github.com/jhoicas/menu-api/internal/application/export"
	"github.com/jhoicas/menu-api/internal/application/usecase"
	"github.com/jhoicas/menu-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CategoryUC *usecase.CategoryUseCase
	MenuUC     *usecase.MenuUseCase
	StatsUC    *usecase.StatsUseCase
	ExportUC   *export.UseCase
	JWTSecret  string
	Session    SessionCookie
	// HideErrorDetail oculta el texto del driver en los 500 de escritura (APP_ENV=production).
	HideErrorDetail bool
	Logger          *logger.Logger
}

// Router registra las rutas de la API. Cada path termina con un All() que responde 405
// a los métodos no soportados.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")
	dbErr := dbErrorResponder{log: log, hideDetail: deps.HideErrorDetail}
	requireAdmin := RequireAdmin(deps.JWTSecret, deps.Session.Name)

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session, dbErr)
	api.Post("/auth", authHandler.Login)
	api.All("/auth", methodNotAllowed(fiber.MethodPost))
	api.Post("/auth/logout", authHandler.Logout)
	api.All("/auth/logout", methodNotAllowed(fiber.MethodPost))

	// Categorías (público, solo lectura)
	categoryHandler := NewCategoryHandler(deps.CategoryUC, dbErr)
	api.Get("/categories", categoryHandler.List)
	api.All("/categories", methodNotAllowed(fiber.MethodGet))

	// Menú: lectura pública, escrituras admin
	menuHandler := NewMenuHandler(deps.MenuUC, dbErr)
	api.Get("/menu", menuHandler.List)
	api.Post("/menu", requireAdmin, menuHandler.Create)
	api.Put("/menu", requireAdmin, menuHandler.Update)
	api.Delete("/menu", requireAdmin, menuHandler.Delete)
	api.All("/menu", methodNotAllowed(fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete))

	// Estadísticas (admin)
	statsHandler := NewStatsHandler(deps.StatsUC, dbErr)
	api.Get("/stats", requireAdmin, statsHandler.Get)
	api.All("/stats", methodNotAllowed(fiber.MethodGet))

	// Exportaciones (público)
	if deps.ExportUC != nil {
		exportHandler := NewExportHandler(deps.ExportUC, log)
		api.Get("/export/menu.pdf", exportHandler.MenuPDF)
		api.All("/export/menu.pdf", methodNotAllowed(fiber.MethodGet))
		api.Get("/export/menu.xml", exportHandler.MenuXML)
		api.All("/export/menu.xml", methodNotAllowed(fiber.MethodGet))
	}
}
