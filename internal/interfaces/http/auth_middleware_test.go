package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-api/internal/application/dto"
	apphttp "github.com/jhoicas/menu-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/menu-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testIssuer     = "menu-api-test"
	testCookieName = "menu_session"
	testExpMin     = 60
)

// buildProtectedApp construye una aplicación Fiber mínima con RequireAdmin y un handler dummy
// que devuelve 200 y los datos de sesión si pasa el middleware.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.RequireAdmin(testJWTSecret, testCookieName),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"ok":       true,
				"user_id":  apphttp.GetUserID(c),
				"username": apphttp.GetUsername(c),
			})
		},
	)
	return app
}

func tokenFor(t *testing.T, admin bool, expMin int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, 7, "admin", admin, testIssuer, expMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

func getProtected(t *testing.T, app *fiber.App, setup func(r *http.Request)) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if setup != nil {
		setup(req)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func assertUnauthorized(t *testing.T, resp *http.Response) {
	t.Helper()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Unauthorized", body.Error)
	assert.Equal(t, dto.CodeUnauthorized, body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAdmin_CookieDeSesion(t *testing.T) {
	tok := tokenFor(t, true, testExpMin)
	resp := getProtected(t, buildProtectedApp(), func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: testCookieName, Value: tok})
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(7), body["user_id"])
	assert.Equal(t, "admin", body["username"])
}

func TestRequireAdmin_BearerToken(t *testing.T) {
	tok := tokenFor(t, true, testExpMin)
	resp := getProtected(t, buildProtectedApp(), func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_SinToken(t *testing.T) {
	assertUnauthorized(t, getProtected(t, buildProtectedApp(), nil))
}

func TestRequireAdmin_FormatoInvalido(t *testing.T) {
	tok := tokenFor(t, true, testExpMin)
	assertUnauthorized(t, getProtected(t, buildProtectedApp(), func(r *http.Request) {
		r.Header.Set("Authorization", "Token "+tok)
	}))
}

func TestRequireAdmin_TokenExpirado(t *testing.T) {
	tok := tokenFor(t, true, -1)
	assertUnauthorized(t, getProtected(t, buildProtectedApp(), func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: testCookieName, Value: tok})
	}))
}

func TestRequireAdmin_SinFlagAdmin(t *testing.T) {
	tok := tokenFor(t, false, testExpMin)
	assertUnauthorized(t, getProtected(t, buildProtectedApp(), func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
	}))
}

func TestRequireAdmin_FirmaDeOtroSecret(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", 7, "admin", true, testIssuer, testExpMin)
	require.NoError(t, err)
	assertUnauthorized(t, getProtected(t, buildProtectedApp(), func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
	}))
}
