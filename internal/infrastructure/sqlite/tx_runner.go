package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción gorm.
type TxRunner struct {
	db *gorm.DB
}

// NewTxRunner construye el runner.
func NewTxRunner(db *gorm.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run ejecuta fn con repos atados a la tx; gorm hace Commit si fn devuelve nil y Rollback si no.
func (r *TxRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	categories repository.CategoryRepository,
) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewUserRepository(tx), NewCategoryRepository(tx))
	})
}
