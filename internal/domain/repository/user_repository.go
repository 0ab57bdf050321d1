package repository

import (
	"context"

	"github.com/jhoicas/menu-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// FindByUsername devuelve nil, nil si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// Create solo lo usa el seeder; la API no crea usuarios.
	Create(ctx context.Context, user *entity.User) error
}
