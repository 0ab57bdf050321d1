package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/menu-api/internal/application/auth"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/menu-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

type memUserRepo struct {
	users  map[string]*entity.User
	nextID int64
	err    error
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.users[username], nil
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrDuplicate
	}
	r.nextID++
	u.ID = r.nextID
	r.users[u.Username] = u
	return nil
}

func newAuthUC(t *testing.T) (*auth.AuthUseCase, *memUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &memUserRepo{
		users:  map[string]*entity.User{"admin": {ID: 1, Username: "admin", PasswordHash: string(hash)}},
		nextID: 1,
	}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 30, Issuer: "menu-api-test"})
	return uc, repo
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := newAuthUC(t)

	out, err := uc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "Login successful", out.Message)
	assert.Equal(t, int64(1), out.User.ID)
	assert.Equal(t, "admin", out.User.Username)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.True(t, claims.Admin, "el token lleva la bandera de sesión admin")
	assert.Equal(t, int64(1), claims.UserID)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthUC(t)

	out, err := uc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, out)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(context.Background(), "nobody", "admin123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_ErrorDeRepositorio(t *testing.T) {
	uc, repo := newAuthUC(t)
	repo.err = assert.AnError

	_, err := uc.Login(context.Background(), "admin", "admin123")
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegisterAdmin_HasheaPassword(t *testing.T) {
	uc, repo := newAuthUC(t)

	out, err := uc.RegisterAdmin(context.Background(), "chef", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, "chef", out.Username)

	stored := repo.users["chef"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret!", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret!")))

	_, err = uc.Login(context.Background(), "chef", "s3cret!")
	assert.NoError(t, err)
}

func TestRegisterAdmin_Duplicado(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.RegisterAdmin(context.Background(), "admin", "otra")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegisterAdmin_CamposVacios(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.RegisterAdmin(context.Background(), "", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
