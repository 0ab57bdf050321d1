// Package menuclient cliente HTTP tipado de la API del menú.
package menuclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/menu-api/internal/application/dto"
)

const (
	// DefaultTimeout timeout de red por petición.
	DefaultTimeout = 15 * time.Second
	// HeaderContentSHA256 digest del feed XML canónico.
	HeaderContentSHA256 = "X-Content-SHA256"

	maxBodyBytes = 8 << 20
)

// APIError respuesta no-2xx de la API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("menuclient: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("menuclient: %d: %s", e.Status, e.Message)
}

// IsUnauthorized indica si err es un 401 de la API.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// Client cliente de la API. El token de sesión se envía como Authorization: Bearer.
// No es seguro para uso concurrente mientras se cambia el token (Login/Logout/SetToken).
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configura el cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el http.Client por defecto.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken arranca el cliente con un token de sesión ya emitido.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout cambia el timeout del http.Client por defecto.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New construye el cliente. baseURL es el origen de la API, ej: http://localhost:8080.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Token devuelve el token de sesión actual ("" sin sesión).
func (c *Client) Token() string { return c.token }

// SetToken fija el token de sesión.
func (c *Client) SetToken(token string) { c.token = token }

// Login inicia sesión y guarda el token para las siguientes llamadas.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	body := dto.LoginRequest{Username: &username, Password: &password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth", body, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out, nil
}

// Logout cierra la sesión en el servidor y olvida el token local.
func (c *Client) Logout(ctx context.Context) error {
	var out dto.MessageResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, &out)
	c.token = ""
	return err
}

// Categories lista las categorías ordenadas por nombre.
func (c *Client) Categories(ctx context.Context) ([]dto.CategoryResponse, error) {
	var out []dto.CategoryResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListItems lista los ítems del menú. categoryID 0 = todas las categorías.
func (c *Client) ListItems(ctx context.Context, categoryID int64) ([]dto.MenuItemResponse, error) {
	path := "/api/menu"
	if categoryID != 0 {
		path += "?" + url.Values{"category_id": {strconv.FormatInt(categoryID, 10)}}.Encode()
	}
	var out []dto.MenuItemResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateItem crea un ítem (admin).
func (c *Client) CreateItem(ctx context.Context, in dto.MenuItemInput) (*dto.CreateMenuItemResponse, error) {
	var out dto.CreateMenuItemResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/menu", dto.CreateMenuItemRequest{MenuItemInput: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateItem sobrescribe el ítem id (admin).
func (c *Client) UpdateItem(ctx context.Context, id int64, in dto.MenuItemInput) (*dto.MutationResponse, error) {
	var out dto.MutationResponse
	if err := c.doJSON(ctx, http.MethodPut, "/api/menu", dto.UpdateMenuItemRequest{ID: &id, MenuItemInput: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteItem borra el ítem id (admin).
func (c *Client) DeleteItem(ctx context.Context, id int64) (*dto.MutationResponse, error) {
	var out dto.MutationResponse
	if err := c.doJSON(ctx, http.MethodDelete, "/api/menu", dto.DeleteMenuItemRequest{ID: &id}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats devuelve los contadores del panel (admin).
func (c *Client) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	var out dto.StatsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportPDF descarga la carta imprimible.
func (c *Client) ExportPDF(ctx context.Context) ([]byte, error) {
	body, _, err := c.doRaw(ctx, http.MethodGet, "/api/export/menu.pdf", nil)
	return body, err
}

// ExportXML descarga el feed XML y devuelve también su digest SHA-256 (hex).
func (c *Client) ExportXML(ctx context.Context) ([]byte, string, error) {
	body, header, err := c.doRaw(ctx, http.MethodGet, "/api/export/menu.xml", nil)
	if err != nil {
		return nil, "", err
	}
	return body, header.Get(HeaderContentSHA256), nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	raw, _, err := c.doRaw(ctx, method, path, in)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("menuclient: decodificar %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, in any) ([]byte, http.Header, error) {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, nil, fmt.Errorf("menuclient: serializar request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("menuclient: crear request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, fmt.Errorf("menuclient: timeout o cancelación: %w", ctx.Err())
		}
		return nil, nil, fmt.Errorf("menuclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("menuclient: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, decodeAPIError(resp.StatusCode, raw)
	}
	return raw, resp.Header, nil
}

func decodeAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{Status: status}
	var body dto.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		apiErr.Code = body.Code
		apiErr.Message = body.Error
		return apiErr
	}
	apiErr.Message = http.StatusText(status)
	return apiErr
}
