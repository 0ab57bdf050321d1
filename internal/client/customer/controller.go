// Package customer controlador de la carta para clientes: solo lectura, solo ítems
// disponibles, filtro por categoría en memoria.
package customer

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/samber/lo"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/pkg/logger"
	"github.com/jhoicas/menu-api/pkg/money"
)

// FallbackMessage texto mostrado cuando no se pudo cargar la carta.
const FallbackMessage = "Sorry, the menu could not be loaded. Please try again later."

// AllCategories filtro sin categoría.
const AllCategories int64 = 0

// API lecturas públicas de la API (implementada por menuclient.Client).
type API interface {
	Categories(ctx context.Context) ([]dto.CategoryResponse, error)
	ListItems(ctx context.Context, categoryID int64) ([]dto.MenuItemResponse, error)
}

// Controller estado de la carta. No es seguro para uso concurrente.
type Controller struct {
	api       API
	formatter *money.Formatter
	log       *logger.Logger

	categories []dto.CategoryResponse
	items      []dto.MenuItemResponse
	filter     int64
	loadErr    error
}

// NewController construye el controlador.
func NewController(api API, formatter *money.Formatter, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{api: api, formatter: formatter, log: log.Component("customer")}
}

// Load trae categorías e ítems una sola vez y conserva solo los disponibles.
// El error se registra en el log y Render muestra FallbackMessage.
func (c *Controller) Load(ctx context.Context) error {
	c.loadErr = nil
	cats, err := c.api.Categories(ctx)
	if err != nil {
		return c.failed("cargar categorías", err)
	}
	items, err := c.api.ListItems(ctx, AllCategories)
	if err != nil {
		return c.failed("cargar ítems", err)
	}
	c.categories = cats
	c.items = lo.Filter(items, func(it dto.MenuItemResponse, _ int) bool { return it.IsAvailable })
	c.filter = AllCategories
	return nil
}

func (c *Controller) failed(op string, err error) error {
	c.log.Warn().Err(err).Msg(op)
	c.loadErr = fmt.Errorf("%s: %w", op, err)
	c.categories = nil
	c.items = nil
	return c.loadErr
}

// Filter selecciona una categoría (AllCategories = todas). No consulta la API.
func (c *Controller) Filter(categoryID int64) {
	c.filter = categoryID
}

// Selected categoría seleccionada.
func (c *Controller) Selected() int64 { return c.filter }

// Categories categorías cargadas.
func (c *Controller) Categories() []dto.CategoryResponse { return c.categories }

// Visible ítems disponibles del filtro actual, en el orden de la API.
func (c *Controller) Visible() []dto.MenuItemResponse {
	if c.filter == AllCategories {
		return c.items
	}
	return lo.Filter(c.items, func(it dto.MenuItemResponse, _ int) bool { return it.CategoryID == c.filter })
}

// Render escribe la carta completa del filtro actual.
func (c *Controller) Render(w io.Writer) error {
	if c.loadErr != nil {
		_, err := fmt.Fprintln(w, FallbackMessage)
		return err
	}
	visible := c.Visible()
	if len(visible) == 0 {
		_, err := fmt.Fprintln(w, "No items available in this category.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, it := range visible {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", it.Name, it.CategoryName, c.formatter.Format(it.Price))
		if it.Description != "" {
			fmt.Fprintf(tw, "  %s\t\t\n", it.Description)
		}
	}
	return tw.Flush()
}

// RenderFilters escribe las categorías disponibles marcando la seleccionada.
func (c *Controller) RenderFilters(w io.Writer) error {
	mark := func(selected bool) string {
		if selected {
			return "*"
		}
		return " "
	}
	if _, err := fmt.Fprintf(w, "[%s] 0 All\n", mark(c.filter == AllCategories)); err != nil {
		return err
	}
	for _, cat := range c.categories {
		if _, err := fmt.Fprintf(w, "[%s] %d %s\n", mark(c.filter == cat.ID), cat.ID, cat.Name); err != nil {
			return err
		}
	}
	return nil
}
