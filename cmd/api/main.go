package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	_ "github.com/jhoicas/menu-api/docs"
	"github.com/jhoicas/menu-api/internal/application/auth"
	"github.com/jhoicas/menu-api/internal/application/export"
	"github.com/jhoicas/menu-api/internal/application/usecase"
	"github.com/jhoicas/menu-api/internal/infrastructure/feed"
	infrapdf "github.com/jhoicas/menu-api/internal/infrastructure/pdf"
	"github.com/jhoicas/menu-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/menu-api/internal/interfaces/http"
	"github.com/jhoicas/menu-api/pkg/config"
	"github.com/jhoicas/menu-api/pkg/logger"
	"github.com/jhoicas/menu-api/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacenamiento")
	}
	defer repos.Close() //nolint: errcheck

	formatter, err := money.NewFormatter(cfg.Menu.Currency, cfg.Menu.CurrencySymbol)
	if err != nil {
		log.Fatal().Err(err).Msg("moneda del menú")
	}

	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	categoryUC := usecase.NewCategoryUseCase(repos.Categories)
	menuUC := usecase.NewMenuUseCase(repos.MenuItems, cfg.Menu.ImageBaseURL)
	statsUC := usecase.NewStatsUseCase(repos.Stats)

	// Exportaciones: carta en PDF y feed XML canónico
	exportUC := export.NewUseCase(
		repos.MenuItems, formatter, cfg.Menu.Title,
		infrapdf.NewMarotoMenuGenerator(), feed.NewXMLFeedBuilder(),
	)

	app := httpRouter.NewApp(cfg.App.Name, log)

	// Swagger UI en local: http://localhost:<port>/docs
	httpRouter.RegisterDocs(app, httpRouter.DocsConfig{
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Menu API",
	}, log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "db": repos.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: categoryUC,
		MenuUC:     menuUC,
		StatsUC:    statsUC,
		ExportUC:   exportUC,
		JWTSecret:  cfg.JWT.Secret,
		Session: httpRouter.SessionCookie{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.Secure,
		},
		HideErrorDetail: cfg.App.IsProduction(),
		Logger:          log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
