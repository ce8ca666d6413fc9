package http

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dualsaude-api/internal/application/auth"
	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
)

// Locals keys.
const (
	LocalUser      = "user"
	LocalPanelUser = "panel_user"
)

// AuthMiddleware valida el Bearer Token y deja el usuario en c.Locals.
// Cualquier falla termina en 401 con WWW-Authenticate: Bearer (ver NewErrorHandler).
func AuthMiddleware(uc *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return domain.ErrUnauthenticated
		}
		user, err := uc.ResolveBearer(c.UserContext(), strings.TrimSpace(parts[1]))
		if err != nil {
			return err
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// GetUser devuelve el usuario autenticado por AuthMiddleware.
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// GetCompanyID devuelve la empresa del usuario autenticado (API o painel).
func GetCompanyID(c *fiber.Ctx) string {
	if u := GetUser(c); u != nil {
		return u.CompanyID
	}
	if u := GetPanelUser(c); u != nil {
		return u.CompanyID
	}
	return ""
}

// AdminKeyMiddleware protege la administración con el header X-Admin-Key.
func AdminKeyMiddleware(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := c.Get("X-Admin-Key")
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			return domain.ErrForbidden
		}
		return c.Next()
	}
}
