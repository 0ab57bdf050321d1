package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// Migraciones embebidas en el binario: funcionan sin depender del directorio de trabajo.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica los archivos migrations/*.sql en orden lexicográfico. Cada archivo debe ser idempotente.
func Migrate(ctx context.Context, q Querier) ([]string, error) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		sqlBytes, err := migrationsFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := q.Exec(ctx, string(sqlBytes)); err != nil {
			return nil, fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return names, nil
}
