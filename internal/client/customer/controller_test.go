package customer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/client/customer"
	"github.com/jhoicas/menu-api/pkg/money"
)

type fakeAPI struct {
	itemCalls int
	items     []dto.MenuItemResponse
	err       error
}

func (f *fakeAPI) Categories(context.Context) ([]dto.CategoryResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []dto.CategoryResponse{{ID: 1, Name: "Drinks"}, {ID: 2, Name: "Mains"}}, nil
}

func (f *fakeAPI) ListItems(context.Context, int64) ([]dto.MenuItemResponse, error) {
	f.itemCalls++
	return f.items, nil
}

func menu() []dto.MenuItemResponse {
	return []dto.MenuItemResponse{
		{ID: 1, Name: "Thai Iced Tea", Price: decimal.RequireFromString("5"), CategoryID: 1, CategoryName: "Drinks", IsAvailable: true},
		{ID: 2, Name: "Mango Lassi", Price: decimal.RequireFromString("6"), CategoryID: 1, CategoryName: "Drinks", IsAvailable: false},
		{ID: 3, Name: "Pad Thai", Description: "Rice noodles", Price: decimal.RequireFromString("15.5"), CategoryID: 2, CategoryName: "Mains", IsAvailable: true},
	}
}

func newController(api *fakeAPI) *customer.Controller {
	return customer.NewController(api, money.MustFormatter("AUD", "AU$"), nil)
}

func TestLoad_SoloItemsDisponibles(t *testing.T) {
	c := newController(&fakeAPI{items: menu()})

	require.NoError(t, c.Load(context.Background()))
	names := lo.Map(c.Visible(), func(it dto.MenuItemResponse, _ int) string { return it.Name })
	assert.Equal(t, []string{"Thai Iced Tea", "Pad Thai"}, names)
	assert.NotContains(t, names, "Mango Lassi")
}

func TestFilter_EnMemoriaSinNuevaConsulta(t *testing.T) {
	api := &fakeAPI{items: menu()}
	c := newController(api)
	require.NoError(t, c.Load(context.Background()))

	c.Filter(2)
	visible := c.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "Pad Thai", visible[0].Name)

	c.Filter(customer.AllCategories)
	assert.Len(t, c.Visible(), 2)
	assert.Equal(t, 1, api.itemCalls, "filtrar no vuelve a llamar a la API")
}

func TestRender_PrecioEnMonedaDelMenu(t *testing.T) {
	c := newController(&fakeAPI{items: menu()})
	require.NoError(t, c.Load(context.Background()))
	var buf bytes.Buffer

	require.NoError(t, c.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "AU$15.50")
	assert.Contains(t, out, "Rice noodles")
	assert.NotContains(t, out, "Mango Lassi")
}

func TestRender_CategoriaSinItems(t *testing.T) {
	c := newController(&fakeAPI{items: menu()})
	require.NoError(t, c.Load(context.Background()))
	c.Filter(42)
	var buf bytes.Buffer

	require.NoError(t, c.Render(&buf))
	assert.Contains(t, buf.String(), "No items available")
}

func TestRender_ErrorDeCargaMuestraMensajeGenerico(t *testing.T) {
	c := newController(&fakeAPI{err: errors.New("connection refused")})
	require.Error(t, c.Load(context.Background()))
	var buf bytes.Buffer

	require.NoError(t, c.Render(&buf))
	assert.Equal(t, customer.FallbackMessage+"\n", buf.String())
	assert.NotContains(t, buf.String(), "connection refused")
}

func TestRenderFilters_MarcaSeleccion(t *testing.T) {
	c := newController(&fakeAPI{items: menu()})
	require.NoError(t, c.Load(context.Background()))
	c.Filter(1)
	var buf bytes.Buffer

	require.NoError(t, c.RenderFilters(&buf))
	assert.Contains(t, buf.String(), "[ ] 0 All")
	assert.Contains(t, buf.String(), "[*] 1 Drinks")
}
