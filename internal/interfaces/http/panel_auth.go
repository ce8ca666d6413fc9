package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dualsaude-api/internal/application/auth"
	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
)

// CookieConfig cookie de sesión del painel.
type CookieConfig struct {
	Name   string
	Secure bool
}

// PanelAuthHandler login y logout del painel con cookie http-only.
type PanelAuthHandler struct {
	uc     *auth.AuthUseCase
	cookie CookieConfig
}

// NewPanelAuthHandler construye el handler.
func NewPanelAuthHandler(uc *auth.AuthUseCase, cookie CookieConfig) *PanelAuthHandler {
	return &PanelAuthHandler{uc: uc, cookie: cookie}
}

// LoginPage GET /painel/login
func (h *PanelAuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title": "Entrar",
		"Error": c.Query("err") == "1",
	}, "layouts/main")
}

// Login POST /painel/login (form email, senha).
func (h *PanelAuthHandler) Login(c *fiber.Ctx) error {
	token, err := h.uc.LoginPanel(c.UserContext(), c.FormValue("email"), c.FormValue("senha"))
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return c.Redirect("/painel/login?err=1", fiber.StatusSeeOther)
	}
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   h.uc.PanelSessionMinutes() * 60,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/painel", fiber.StatusSeeOther)
}

// Logout GET /painel/logout
func (h *PanelAuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/painel/login", fiber.StatusSeeOther)
}

// RequireSession resuelve la cookie; sin sesión válida redirige al login con 303.
func (h *PanelAuthHandler) RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := h.uc.ResolvePanelSession(c.UserContext(), c.Cookies(h.cookie.Name))
		if err != nil {
			return err
		}
		if res.State != auth.SessionAuthenticated {
			return c.Redirect("/painel/login", fiber.StatusSeeOther)
		}
		c.Locals(LocalPanelUser, res.User)
		return c.Next()
	}
}

// GetPanelUser devuelve el usuario de la sesión del painel.
func GetPanelUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalPanelUser).(*entity.User)
	return u
}
