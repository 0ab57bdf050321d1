package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre SQLite.
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepository construye el adaptador. db puede ser una transacción.
func NewUserRepository(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// FindByUsername obtiene un usuario por username; nil, nil si no existe.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).Where("username = ?", username).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &entity.User{ID: m.ID, Username: m.Username, PasswordHash: m.PasswordHash}, nil
}

// Create persiste un nuevo usuario y asigna user.ID.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	m := userModel{Username: user.Username, PasswordHash: user.PasswordHash}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = m.ID
	return nil
}
