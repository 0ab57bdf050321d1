package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
	"github.com/jhoicas/menu-api/internal/infrastructure/sqlite"
)

// RepositorySuite ejercita los cuatro repositorios contra una base SQLite en memoria nueva por test.
type RepositorySuite struct {
	suite.Suite
	ctx context.Context
	db  *gorm.DB

	users      *sqlite.UserRepo
	categories *sqlite.CategoryRepo
	items      *sqlite.MenuItemRepo
	stats      *sqlite.StatsRepo

	mains, drinks int64
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	db, err := sqlite.Open(sqlite.MemoryPath, nil)
	s.Require().NoError(err)
	s.Require().NoError(sqlite.Migrate(db))
	s.db = db

	s.users = sqlite.NewUserRepository(db)
	s.categories = sqlite.NewCategoryRepository(db)
	s.items = sqlite.NewMenuItemRepository(db)
	s.stats = sqlite.NewStatsRepository(db)

	mains := &entity.Category{Name: "Mains"}
	drinks := &entity.Category{Name: "Drinks"}
	s.Require().NoError(s.categories.Create(s.ctx, mains))
	s.Require().NoError(s.categories.Create(s.ctx, drinks))
	s.mains, s.drinks = mains.ID, drinks.ID
}

func (s *RepositorySuite) TearDownTest() {
	_ = sqlite.Close(s.db)
}

func (s *RepositorySuite) create(name string, categoryID int64, price string, available bool) int64 {
	item := &entity.MenuItem{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		CategoryID:  categoryID,
		IsAvailable: available,
	}
	s.Require().NoError(s.items.Create(s.ctx, item))
	s.Require().NotZero(item.ID)
	return item.ID
}

// ---------------------------------------------------------------------------
// Usuarios
// ---------------------------------------------------------------------------

func (s *RepositorySuite) TestUsers_CrearYBuscar() {
	u := &entity.User{Username: "admin", PasswordHash: "$2a$10$hash"}
	s.Require().NoError(s.users.Create(s.ctx, u))
	s.NotZero(u.ID)

	got, err := s.users.FindByUsername(s.ctx, "admin")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(u.ID, got.ID)
	s.Equal("$2a$10$hash", got.PasswordHash)
}

func (s *RepositorySuite) TestUsers_InexistenteDevuelveNil() {
	got, err := s.users.FindByUsername(s.ctx, "nadie")
	s.NoError(err)
	s.Nil(got)
}

func (s *RepositorySuite) TestUsers_UsernameDuplicado() {
	s.Require().NoError(s.users.Create(s.ctx, &entity.User{Username: "admin", PasswordHash: "x"}))
	err := s.users.Create(s.ctx, &entity.User{Username: "admin", PasswordHash: "y"})
	s.ErrorIs(err, domain.ErrDuplicate)
}

// ---------------------------------------------------------------------------
// Categorías
// ---------------------------------------------------------------------------

func (s *RepositorySuite) TestCategories_OrdenadasPorNombre() {
	list, err := s.categories.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Drinks", list[0].Name)
	s.Equal("Mains", list[1].Name)
}

// ---------------------------------------------------------------------------
// Ítems del menú
// ---------------------------------------------------------------------------

func (s *RepositorySuite) TestItems_CrearYListarConCategoria() {
	img := "http://localhost/rms/img/padthai.jpg"
	item := &entity.MenuItem{
		Name:        "Pad Thai",
		Description: "Rice noodles",
		Price:       decimal.RequireFromString("15.50"),
		CategoryID:  s.mains,
		ImageURL:    &img,
		IsAvailable: true,
	}
	s.Require().NoError(s.items.Create(s.ctx, item))

	list, err := s.items.List(s.ctx, repository.MenuItemFilter{})
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	got := list[0]
	s.Equal(item.ID, got.ID)
	s.Equal("Pad Thai", got.Name)
	s.Equal("Rice noodles", got.Description)
	s.True(got.Price.Equal(decimal.RequireFromString("15.5")), "precio %s", got.Price)
	s.Equal("15.50", got.Price.StringFixed(2))
	s.Equal("Mains", got.CategoryName)
	s.Require().NotNil(got.ImageURL)
	s.Equal(img, *got.ImageURL)
	s.True(got.IsAvailable)
}

func (s *RepositorySuite) TestItems_NoDisponibleSePersisteFalse() {
	id := s.create("Old Soup", s.mains, "5", false)

	list, err := s.items.List(s.ctx, repository.MenuItemFilter{})
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(id, list[0].ID)
	s.False(list[0].IsAvailable)
	s.Nil(list[0].ImageURL)
}

func (s *RepositorySuite) TestItems_CategoriaInexistente() {
	err := s.items.Create(s.ctx, &entity.MenuItem{Name: "X", Price: decimal.NewFromInt(1), CategoryID: 999, IsAvailable: true})
	s.ErrorIs(err, domain.ErrInvalidCategory)
}

func (s *RepositorySuite) TestItems_FiltroYOrden() {
	s.create("Green Curry", s.mains, "16", true)
	s.create("Lemonade", s.drinks, "4", true)
	s.create("Basil Chicken", s.mains, "17", true)
	s.create("Iced Coffee", s.drinks, "5", true)

	all, err := s.items.List(s.ctx, repository.MenuItemFilter{})
	s.Require().NoError(err)
	names := make([]string, 0, len(all))
	for _, it := range all {
		names = append(names, it.Name)
	}
	s.Equal([]string{"Iced Coffee", "Lemonade", "Basil Chicken", "Green Curry"}, names)

	drinks, err := s.items.List(s.ctx, repository.MenuItemFilter{CategoryID: &s.drinks})
	s.Require().NoError(err)
	s.Len(drinks, 2)
	for _, it := range drinks {
		s.Equal(s.drinks, it.CategoryID)
	}
}

func (s *RepositorySuite) TestItems_UpdateSobrescribeTodo() {
	img := "http://localhost/rms/img/a.jpg"
	item := &entity.MenuItem{Name: "A", Description: "desc", Price: decimal.NewFromInt(3), CategoryID: s.mains, ImageURL: &img, IsAvailable: true}
	s.Require().NoError(s.items.Create(s.ctx, item))

	affected, err := s.items.Update(s.ctx, &entity.MenuItem{
		ID: item.ID, Name: "B", Price: decimal.NewFromInt(4), CategoryID: s.drinks, IsAvailable: false,
	})
	s.Require().NoError(err)
	s.Equal(int64(1), affected)

	list, err := s.items.List(s.ctx, repository.MenuItemFilter{})
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	got := list[0]
	s.Equal("B", got.Name)
	s.Equal("", got.Description)
	s.Nil(got.ImageURL)
	s.False(got.IsAvailable)
	s.Equal("Drinks", got.CategoryName)
}

func (s *RepositorySuite) TestItems_UpdateIdInexistente() {
	affected, err := s.items.Update(s.ctx, &entity.MenuItem{ID: 42, Name: "X", Price: decimal.NewFromInt(1), CategoryID: s.mains})
	s.NoError(err)
	s.Zero(affected)
}

func (s *RepositorySuite) TestItems_UpdateCategoriaInexistente() {
	id := s.create("A", s.mains, "1", true)
	_, err := s.items.Update(s.ctx, &entity.MenuItem{ID: id, Name: "A", Price: decimal.NewFromInt(1), CategoryID: 999})
	s.ErrorIs(err, domain.ErrInvalidCategory)
}

func (s *RepositorySuite) TestItems_Delete() {
	id := s.create("A", s.mains, "1", true)

	affected, err := s.items.Delete(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(int64(1), affected)

	affected, err = s.items.Delete(s.ctx, id)
	s.Require().NoError(err)
	s.Zero(affected, "borrar dos veces no es error")

	list, err := s.items.List(s.ctx, repository.MenuItemFilter{})
	s.Require().NoError(err)
	s.Empty(list)
}

// ---------------------------------------------------------------------------
// Estadísticas y transacciones
// ---------------------------------------------------------------------------

func (s *RepositorySuite) TestStats_Conteos() {
	s.create("A", s.mains, "1", true)
	s.create("B", s.mains, "1", false)
	s.create("C", s.drinks, "1", true)

	st, err := s.stats.GetMenuStats(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(3), st.TotalItems)
	s.Equal(int64(2), st.AvailableItems)
	s.Equal(int64(2), st.Categories)
}

func (s *RepositorySuite) TestTxRunner_RollbackAnteError() {
	runner := sqlite.NewTxRunner(s.db)
	boom := errors.New("boom")

	err := runner.Run(s.ctx, func(_ repository.UserRepository, cats repository.CategoryRepository) error {
		s.Require().NoError(cats.Create(s.ctx, &entity.Category{Name: "Desserts"}))
		return boom
	})
	s.ErrorIs(err, boom)

	list, err := s.categories.List(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 2, "la categoría no debe quedar tras el rollback")
}

func (s *RepositorySuite) TestTxRunner_Commit() {
	runner := sqlite.NewTxRunner(s.db)

	err := runner.Run(s.ctx, func(users repository.UserRepository, cats repository.CategoryRepository) error {
		if err := cats.Create(s.ctx, &entity.Category{Name: "Desserts"}); err != nil {
			return err
		}
		return users.Create(s.ctx, &entity.User{Username: "chef", PasswordHash: "x"})
	})
	s.Require().NoError(err)

	list, err := s.categories.List(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 3)
	u, err := s.users.FindByUsername(s.ctx, "chef")
	s.Require().NoError(err)
	s.NotNil(u)
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}
