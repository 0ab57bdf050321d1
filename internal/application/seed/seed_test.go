package seed_test

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-api/internal/application/seed"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/menu-api/internal/infrastructure/storage"
	"github.com/jhoicas/menu-api/pkg/config"
)

func openRepos(t *testing.T) *storage.Repositories {
	t.Helper()
	repos, err := storage.Open(context.Background(), config.DBConfig{Driver: config.DriverSQLite, SQLitePath: sqlite.MemoryPath, AutoMigrate: true}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Thai Curries", seed.NormalizeName("  thai   CURRIES "))
	assert.Equal(t, "Drinks", seed.NormalizeName("drinks"))
	assert.Equal(t, "", seed.NormalizeName("   "))
}

func TestCategories_CreaYOmiteExistentes(t *testing.T) {
	repos := openRepos(t)
	ctx := context.Background()
	require.NoError(t, repos.Categories.Create(ctx, &entity.Category{Name: "Mains"}))

	res, err := seed.Categories(ctx, repos.Tx, []string{"drinks", "MAINS", "desserts", "Drinks"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Drinks", "Desserts"}, res.Created)
	assert.Equal(t, []string{"Mains", "Drinks"}, res.Skipped)

	list, err := repos.Categories.List(ctx)
	require.NoError(t, err)
	names := lo.Map(list, func(c *entity.Category, _ int) string { return c.Name })
	assert.Equal(t, []string{"Desserts", "Drinks", "Mains"}, names)
}

func TestCategories_SinNombres(t *testing.T) {
	repos := openRepos(t)

	_, err := seed.Categories(context.Background(), repos.Tx, []string{" ", ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
