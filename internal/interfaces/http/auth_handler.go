package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menu-api/internal/application/auth"
	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/domain"
)

// SessionCookie parámetros de la cookie de sesión admin.
type SessionCookie struct {
	Name   string
	Secure bool
}

// AuthHandler maneja login y logout del administrador.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie SessionCookie
	dbErr  dbErrorResponder
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie SessionCookie, dbErr dbErrorResponder) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie, dbErr: dbErr}
}

// Login godoc
// @Summary      Iniciar sesión de administrador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/auth [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, dto.CodeInvalidBody, msgInvalidBody)
	}
	if in.Username == nil || in.Password == nil || *in.Username == "" || *in.Password == "" {
		return errorJSON(c, fiber.StatusBadRequest, dto.CodeValidation, "Username and password required")
	}
	out, err := h.uc.Login(c.UserContext(), *in.Username, *in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrUserNotFound) {
			return errorJSON(c, fiber.StatusUnauthorized, dto.CodeUnauthorized, "Invalid credentials")
		}
		return h.dbErr.read(c, err)
	}
	maxAge := h.uc.SessionMinutes() * 60
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    out.Token,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  time.Now().Add(time.Duration(maxAge) * time.Second),
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (expira la cookie)
// @Tags         auth
// @Produce      json
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.MessageResponse{Success: true, Message: "Logged out"})
}
