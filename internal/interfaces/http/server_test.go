package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-api/internal/application/auth"
	"github.com/jhoicas/menu-api/internal/application/export"
	"github.com/jhoicas/menu-api/internal/application/usecase"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/infrastructure/feed"
	"github.com/jhoicas/menu-api/internal/infrastructure/pdf"
	"github.com/jhoicas/menu-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/menu-api/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/menu-api/internal/interfaces/http"
	"github.com/jhoicas/menu-api/pkg/config"
	"github.com/jhoicas/menu-api/pkg/money"
)

const (
	testImageBase     = "http://localhost/rms/img/"
	testAdminUser     = "admin"
	testAdminPassword = "admin123"
)

// testServer API completa sobre SQLite en memoria, con un admin y dos categorías sembradas.
type testServer struct {
	app    *fiber.App
	repos  *storage.Repositories
	mains  int64
	drinks int64
}

type serverOption func(*apphttp.RouterDeps)

func withHiddenErrors() serverOption {
	return func(d *apphttp.RouterDeps) { d.HideErrorDetail = true }
}

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()
	ctx := context.Background()
	repos, err := storage.Open(ctx, config.DBConfig{Driver: config.DriverSQLite, SQLitePath: sqlite.MemoryPath, AutoMigrate: true}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})
	_, err = authUC.RegisterAdmin(ctx, testAdminUser, testAdminPassword)
	require.NoError(t, err)

	mains := &entity.Category{Name: "Mains"}
	drinks := &entity.Category{Name: "Drinks"}
	require.NoError(t, repos.Categories.Create(ctx, mains))
	require.NoError(t, repos.Categories.Create(ctx, drinks))

	deps := apphttp.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: usecase.NewCategoryUseCase(repos.Categories),
		MenuUC:     usecase.NewMenuUseCase(repos.MenuItems, testImageBase),
		StatsUC:    usecase.NewStatsUseCase(repos.Stats),
		ExportUC: export.NewUseCase(repos.MenuItems, money.MustFormatter("AUD", "AU$"), "Thai Corner",
			pdf.NewMarotoMenuGenerator(), feed.NewXMLFeedBuilder()),
		JWTSecret: testJWTSecret,
		Session:   apphttp.SessionCookie{Name: testCookieName},
	}
	for _, o := range opts {
		o(&deps)
	}
	app := apphttp.NewApp("menu-api-test", nil)
	apphttp.Router(app, deps)

	return &testServer{app: app, repos: repos, mains: mains.ID, drinks: drinks.ID}
}

// do envía una petición JSON. body nil = sin cuerpo; cookie vacía = sin sesión.
func (s *testServer) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// login inicia sesión como admin y devuelve la cookie de sesión.
func (s *testServer) login(t *testing.T) *http.Cookie {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/api/auth", map[string]string{"username": testAdminUser, "password": testAdminPassword}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	t.Fatal("login sin cookie de sesión")
	return nil
}

// createItem crea un ítem como admin y devuelve su id.
func (s *testServer) createItem(t *testing.T, cookie *http.Cookie, body map[string]any) int64 {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/api/menu", body, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out struct {
		ID int64 `json:"id"`
	}
	decode(t, resp, &out)
	return out.ID
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}
