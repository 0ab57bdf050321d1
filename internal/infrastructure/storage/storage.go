// Package storage elige el almacenamiento (PostgreSQL o SQLite) según DB_DRIVER y entrega los repositorios ya cableados.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/menu-api/internal/domain/repository"
	"github.com/jhoicas/menu-api/internal/infrastructure/postgres"
	"github.com/jhoicas/menu-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/menu-api/pkg/config"
	"github.com/jhoicas/menu-api/pkg/logger"
)

// Repositories puertos de persistencia listos para inyectar en los casos de uso.
type Repositories struct {
	Driver     string
	Users      repository.UserRepository
	Categories repository.CategoryRepository
	MenuItems  repository.MenuItemRepository
	Stats      repository.StatsRepository
	Tx         repository.TxRunner

	closeFn func() error
}

// Close libera el pool o la conexión subyacente.
func (r *Repositories) Close() error {
	if r.closeFn == nil {
		return nil
	}
	return r.closeFn()
}

// Open conecta al driver configurado y aplica el esquema si cfg.AutoMigrate.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Repositories, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("storage")
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return openSQLite(cfg, log)
	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Repositories, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Strs("migrations", applied).Msg("migraciones aplicadas")
	}
	return &Repositories{
		Driver:     config.DriverPostgres,
		Users:      postgres.NewUserRepository(pool),
		Categories: postgres.NewCategoryRepository(pool),
		MenuItems:  postgres.NewMenuItemRepository(pool),
		Stats:      postgres.NewStatsRepository(pool),
		Tx:         postgres.NewTxRunner(pool),
		closeFn: func() error {
			pool.Close()
			return nil
		},
	}, nil
}

func openSQLite(cfg config.DBConfig, log *logger.Logger) (*Repositories, error) {
	db, err := sqlite.Open(cfg.SQLitePath, log)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := sqlite.Migrate(db); err != nil {
			_ = sqlite.Close(db)
			return nil, err
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("esquema sqlite al día")
	}
	return &Repositories{
		Driver:     config.DriverSQLite,
		Users:      sqlite.NewUserRepository(db),
		Categories: sqlite.NewCategoryRepository(db),
		MenuItems:  sqlite.NewMenuItemRepository(db),
		Stats:      sqlite.NewStatsRepository(db),
		Tx:         sqlite.NewTxRunner(db),
		closeFn:    func() error { return sqlite.Close(db) },
	}, nil
}
