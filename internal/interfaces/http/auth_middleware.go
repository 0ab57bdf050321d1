package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/pkg/jwt"
)

// Locals keys para los datos de la sesión admin en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
)

// RequireAdmin valida el token de sesión admin. Se lee de la cookie de sesión y, para clientes
// sin cookies, de Authorization: Bearer. Token ausente, inválido, expirado o sin admin=true → 401.
func RequireAdmin(jwtSecret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(cookieName)
		if tokenString == "" {
			tokenString = bearerToken(c.Get(fiber.HeaderAuthorization))
		}
		if tokenString == "" {
			return errorJSON(c, fiber.StatusUnauthorized, dto.CodeUnauthorized, msgUnauthorized)
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || !claims.Admin {
			return errorJSON(c, fiber.StatusUnauthorized, dto.CodeUnauthorized, msgUnauthorized)
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		return c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUserID devuelve el UserID del contexto (después de RequireAdmin); 0 si no hay sesión.
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetUsername devuelve el username del contexto (después de RequireAdmin).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}
