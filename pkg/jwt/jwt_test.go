package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/menu-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "menu-api-test"
)

func TestGenerateAndParse_ConservaClaims(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 7, "admin", true, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.Admin)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID, "cada token lleva un jti")
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "admin", true, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "admin", true, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "admin", true, testIssuer, 60)
	assert.Error(t, err)
}

func TestGenerate_JTIUnicoPorToken(t *testing.T) {
	a, err := pkgjwt.Generate(testSecret, 1, "admin", true, testIssuer, 60)
	require.NoError(t, err)
	b, err := pkgjwt.Generate(testSecret, 1, "admin", true, testIssuer, 60)
	require.NoError(t, err)

	ca, err := pkgjwt.Parse(testSecret, a)
	require.NoError(t, err)
	cb, err := pkgjwt.Parse(testSecret, b)
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID)
}
