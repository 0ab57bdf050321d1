// seed crea fuera de banda los administradores y las categorías del menú.
//
// Uso:
//
//	go run ./cmd/seed admin -u admin -p 's3cr3t'
//	go run ./cmd/seed categories mains drinks "thai curries"
//
// Usa la misma selección de almacenamiento que la API (DB_DRIVER, DATABASE_URL, DB_SQLITE_PATH...).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhoicas/menu-api/internal/application/auth"
	"github.com/jhoicas/menu-api/internal/application/seed"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/infrastructure/storage"
	"github.com/jhoicas/menu-api/pkg/config"
	"github.com/jhoicas/menu-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// openFunc abre el almacenamiento; reemplazable en tests.
type openFunc func(ctx context.Context) (*storage.Repositories, *logger.Logger, error)

func openFromEnv(ctx context.Context) (*storage.Repositories, *logger.Logger, error) {
	cfg, err := config.LoadStorage()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})
	repos, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		return nil, nil, fmt.Errorf("abrir almacenamiento: %w", err)
	}
	return repos, log, nil
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(openFromEnv)
}

func newRootCmdWith(open openFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Carga administradores y categorías del menú",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	cmd.AddCommand(newAdminCmd(open), newCategoriesCmd(open))
	return cmd
}

func newAdminCmd(open openFunc) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Crear un administrador (contraseña con bcrypt)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repos, log, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer repos.Close() //nolint: errcheck

			// el seeder no emite tokens: JWTConfig vacío
			uc := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{})
			user, err := uc.RegisterAdmin(cmd.Context(), username, password)
			if errors.Is(err, domain.ErrDuplicate) {
				return fmt.Errorf("el usuario %q ya existe", username)
			}
			if err != nil {
				return err
			}
			log.Info().Int64("id", user.ID).Str("username", user.Username).Msg("administrador creado")
			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (id %d)\n", user.Username, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Usuario")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Contraseña")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newCategoriesCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "categories NAME...",
		Short: "Crear categorías (title case, se omiten las existentes)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repos, log, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer repos.Close() //nolint: errcheck

			res, err := seed.Categories(cmd.Context(), repos.Tx, args)
			if err != nil {
				return err
			}
			log.Info().Strs("created", res.Created).Strs("skipped", res.Skipped).Msg("categorías sembradas")
			for _, name := range res.Created {
				fmt.Fprintf(cmd.OutOrStdout(), "created  %s\n", name)
			}
			for _, name := range res.Skipped {
				fmt.Fprintf(cmd.OutOrStdout(), "skipped  %s\n", name)
			}
			return nil
		},
	}
}
