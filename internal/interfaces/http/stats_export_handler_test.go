package http_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-api/internal/application/dto"
	apphttp "github.com/jhoicas/menu-api/internal/interfaces/http"
)

func TestCategories_OrdenadasPorNombre(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/api/categories", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out []dto.CategoryResponse
	decode(t, resp, &out)
	require.Len(t, out, 2)
	assert.Equal(t, "Drinks", out[0].Name)
	assert.Equal(t, "Mains", out[1].Name)

	resp = s.do(t, http.MethodPost, "/api/categories", map[string]string{"name": "Desserts"}, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestStats_Conteos(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)
	s.createItem(t, cookie, map[string]any{"name": "A", "price": 1, "category_id": s.mains})
	s.createItem(t, cookie, map[string]any{"name": "B", "price": 1, "category_id": s.mains, "is_available": false})

	resp := s.do(t, http.MethodGet, "/api/stats", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.StatsResponse
	decode(t, resp, &out)
	assert.Equal(t, dto.StatsResponse{TotalItems: 2, AvailableItems: 1, Categories: 2}, out)

	resp = s.do(t, http.MethodDelete, "/api/stats", nil, cookie)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestExport_PDF(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)
	s.createItem(t, cookie, map[string]any{"name": "Pad Thai", "price": 15.5, "category_id": s.mains})

	resp := s.do(t, http.MethodGet, "/api/export/menu.pdf", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "menu.pdf")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
}

func TestExport_XMLSoloDisponiblesConDigest(t *testing.T) {
	s := newTestServer(t)
	cookie := s.login(t)
	s.createItem(t, cookie, map[string]any{"name": "Pad Thai", "price": 15.5, "category_id": s.mains})
	s.createItem(t, cookie, map[string]any{"name": "Secret Dish", "price": 99, "category_id": s.mains, "is_available": false})

	resp := s.do(t, http.MethodGet, "/api/export/menu.xml", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	sum := sha256.Sum256(body)
	assert.Equal(t, hex.EncodeToString(sum[:]), resp.Header.Get(apphttp.HeaderContentSHA256))
	assert.Contains(t, string(body), "Pad Thai")
	assert.Contains(t, string(body), "<price currency=\"AUD\">15.50</price>")
	assert.NotContains(t, string(body), "Secret Dish", "los no disponibles no se publican")
}

func TestRutaInexistente_JSON404(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/api/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Equal(t, dto.CodeNotFound, out.Code)
}
