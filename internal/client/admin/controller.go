// Package admin controlador del panel de administración: estado de la lista de ítems,
// el formulario de alta/edición y las estadísticas, sincronizado contra la API.
package admin

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/pkg/logger"
)

// ErrUnknownItem el id no está en la lista cargada en memoria.
var ErrUnknownItem = errors.New("admin: ítem no encontrado en la lista")

// API operaciones de la API que usa el panel (implementada por menuclient.Client).
type API interface {
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)
	Logout(ctx context.Context) error
	Categories(ctx context.Context) ([]dto.CategoryResponse, error)
	Stats(ctx context.Context) (*dto.StatsResponse, error)
	ListItems(ctx context.Context, categoryID int64) ([]dto.MenuItemResponse, error)
	CreateItem(ctx context.Context, in dto.MenuItemInput) (*dto.CreateMenuItemResponse, error)
	UpdateItem(ctx context.Context, id int64, in dto.MenuItemInput) (*dto.MutationResponse, error)
	DeleteItem(ctx context.Context, id int64) (*dto.MutationResponse, error)
}

// Form campos del formulario de alta/edición.
type Form struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  int64
	Image       string
	IsAvailable bool
}

// Input convierte el formulario al cuerpo de la API. Descripción e imagen vacías se omiten.
func (f Form) Input() dto.MenuItemInput {
	in := dto.MenuItemInput{
		Name:        lo.ToPtr(f.Name),
		Price:       lo.ToPtr(f.Price),
		CategoryID:  lo.ToPtr(f.CategoryID),
		IsAvailable: lo.ToPtr(f.IsAvailable),
	}
	if f.Description != "" {
		in.Description = lo.ToPtr(f.Description)
	}
	if f.Image != "" {
		in.Image = lo.ToPtr(f.Image)
	}
	return in
}

// Controller estado del panel. No es seguro para uso concurrente.
type Controller struct {
	api API
	log *logger.Logger

	categories []dto.CategoryResponse
	stats      dto.StatsResponse
	items      []dto.MenuItemResponse

	modalOpen bool
	editID    *int64
	loggedIn  bool
	user      *dto.UserResponse
}

// NewController construye el controlador. loggedIn refleja la sesión persistida por el cliente.
func NewController(api API, loggedIn bool, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{api: api, loggedIn: loggedIn, log: log.Component("admin")}
}

// Init carga categorías, estadísticas e ítems, en ese orden.
func (c *Controller) Init(ctx context.Context) error {
	if err := c.loadCategories(ctx); err != nil {
		return err
	}
	if err := c.loadStats(ctx); err != nil {
		return err
	}
	return c.loadItems(ctx)
}

func (c *Controller) loadCategories(ctx context.Context) error {
	list, err := c.api.Categories(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("cargar categorías")
		return fmt.Errorf("cargar categorías: %w", err)
	}
	c.categories = list
	return nil
}

func (c *Controller) loadStats(ctx context.Context) error {
	stats, err := c.api.Stats(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("cargar estadísticas")
		return fmt.Errorf("cargar estadísticas: %w", err)
	}
	c.stats = *stats
	return nil
}

func (c *Controller) loadItems(ctx context.Context) error {
	list, err := c.api.ListItems(ctx, 0)
	if err != nil {
		c.log.Warn().Err(err).Msg("cargar ítems")
		return fmt.Errorf("cargar ítems: %w", err)
	}
	c.items = list
	return nil
}

// OpenCreate abre el formulario vacío (disponible por defecto).
func (c *Controller) OpenCreate() Form {
	c.modalOpen = true
	c.editID = nil
	return Form{IsAvailable: true}
}

// OpenEdit abre el formulario precargado con el ítem id de la lista en memoria.
func (c *Controller) OpenEdit(id int64) (Form, error) {
	item, ok := c.Item(id)
	if !ok {
		return Form{}, fmt.Errorf("%w: id %d", ErrUnknownItem, id)
	}
	c.modalOpen = true
	c.editID = lo.ToPtr(id)

	form := Form{
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		CategoryID:  item.CategoryID,
		IsAvailable: item.IsAvailable,
	}
	if item.ImageURL != nil {
		form.Image = path.Base(*item.ImageURL)
	}
	return form, nil
}

// Close cierra el formulario y descarta el id en edición.
func (c *Controller) Close() {
	c.modalOpen = false
	c.editID = nil
}

// Save envía el formulario: POST sin id en edición, PUT con id. Si la API acepta, cierra el
// formulario y recarga ítems y estadísticas. Devuelve el mensaje del servidor.
func (c *Controller) Save(ctx context.Context, form Form) (string, error) {
	var message string
	if c.editID == nil {
		out, err := c.api.CreateItem(ctx, form.Input())
		if err != nil {
			return "", fmt.Errorf("crear ítem: %w", err)
		}
		message = out.Message
	} else {
		out, err := c.api.UpdateItem(ctx, *c.editID, form.Input())
		if err != nil {
			return "", fmt.Errorf("actualizar ítem %d: %w", *c.editID, err)
		}
		message = out.Message
	}
	c.Close()
	if err := c.refresh(ctx); err != nil {
		return message, err
	}
	return message, nil
}

// Delete pide confirmación con el nombre del ítem y, si se acepta, lo borra y recarga.
// Devuelve false sin error cuando el usuario cancela.
func (c *Controller) Delete(ctx context.Context, id int64, confirm func(name string) bool) (bool, error) {
	item, ok := c.Item(id)
	if !ok {
		return false, fmt.Errorf("%w: id %d", ErrUnknownItem, id)
	}
	if !confirm(item.Name) {
		return false, nil
	}
	if _, err := c.api.DeleteItem(ctx, id); err != nil {
		return false, fmt.Errorf("borrar ítem %d: %w", id, err)
	}
	return true, c.refresh(ctx)
}

// refresh recarga ítems y luego estadísticas.
func (c *Controller) refresh(ctx context.Context) error {
	if err := c.loadItems(ctx); err != nil {
		return err
	}
	return c.loadStats(ctx)
}

// Login inicia sesión y marca el panel como autenticado.
func (c *Controller) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	out, err := c.api.Login(ctx, username, password)
	if err != nil {
		c.loggedIn = false
		return nil, err
	}
	c.loggedIn = true
	c.user = lo.ToPtr(out.User)
	return out, nil
}

// Logout cierra la sesión. El estado local se limpia aunque falle la llamada.
func (c *Controller) Logout(ctx context.Context) error {
	c.loggedIn = false
	c.user = nil
	c.Close()
	return c.api.Logout(ctx)
}

// Item busca un ítem por id en la lista cargada.
func (c *Controller) Item(id int64) (dto.MenuItemResponse, bool) {
	return lo.Find(c.items, func(it dto.MenuItemResponse) bool { return it.ID == id })
}

// CategoryName devuelve el nombre de la categoría id ("" si no está cargada).
func (c *Controller) CategoryName(id int64) string {
	cat, _ := lo.Find(c.categories, func(cat dto.CategoryResponse) bool { return cat.ID == id })
	return cat.Name
}

func (c *Controller) Categories() []dto.CategoryResponse { return c.categories }
func (c *Controller) Items() []dto.MenuItemResponse      { return c.items }
func (c *Controller) Stats() dto.StatsResponse           { return c.stats }
func (c *Controller) ModalOpen() bool                    { return c.modalOpen }
func (c *Controller) LoggedIn() bool                     { return c.loggedIn }
func (c *Controller) User() *dto.UserResponse            { return c.user }

// EditID id en edición, nil cuando el formulario es de alta o está cerrado.
func (c *Controller) EditID() *int64 { return c.editID }
