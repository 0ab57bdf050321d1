package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
	"github.com/jhoicas/menu-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación del administrador.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica usuario/contraseña (bcrypt) y emite el token de sesión admin.
// Usuario inexistente y contraseña incorrecta devuelven ambos domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Username != username {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, true, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    dto.UserResponse{ID: user.ID, Username: user.Username},
		Token:   token,
	}, nil
}

// RegisterAdmin crea un administrador con la contraseña hasheada (uso exclusivo del seeder).
func (uc *AuthUseCase) RegisterAdmin(ctx context.Context, username, password string) (*dto.UserResponse, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{Username: username, PasswordHash: string(hash)}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("crear usuario: %w", err)
	}
	return &dto.UserResponse{ID: user.ID, Username: user.Username}, nil
}

// SessionMinutes duración de la sesión emitida por Login.
func (uc *AuthUseCase) SessionMinutes() int {
	return uc.jwtCfg.ExpMinutes
}
