package http

import (
	"errors"
	"html"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/internal/application/validation"
	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/pkg/logger"
)

const internalMessage = "Erro interno. Tente novamente mais tarde."

// errorMapping asocia un error de dominio con su status HTTP y código.
type errorMapping struct {
	err    error
	status int
	code   string
}

// El orden importa: los errores específicos van antes que ErrInvalidInput.
var errorMappings = []errorMapping{
	{domain.ErrCompanyNotFound, fiber.StatusBadRequest, "COMPANY_NOT_FOUND"},
	{domain.ErrDuplicateEmail, fiber.StatusBadRequest, "EMAIL_EXISTS"},
	{domain.ErrDuplicateNationalID, fiber.StatusBadRequest, "CPF_EXISTS"},
	{domain.ErrNotAuthorized, fiber.StatusForbidden, "CPF_NOT_AUTHORIZED"},
	{domain.ErrAlreadyClaimed, fiber.StatusBadRequest, "CPF_ALREADY_LINKED"},
	{domain.ErrRegistrationFailed, fiber.StatusInternalServerError, "REGISTRATION_FAILED"},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrUnauthenticated, fiber.StatusUnauthorized, "UNAUTHENTICATED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
}

// classify traduce un error a status + cuerpo. Los errores desconocidos son 500 con mensaje genérico.
func classify(err error) (int, dto.ErrorResponse) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: verr.Error()}
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			msg := err.Error()
			if m.status == fiber.StatusInternalServerError {
				msg = m.err.Error()
			}
			return m.status, dto.ErrorResponse{Code: m.code, Message: msg}
		}
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, dto.ErrorResponse{Code: strings.ToUpper(strings.ReplaceAll(utils.StatusMessage(fe.Code), " ", "_")), Message: fe.Message}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: internalMessage}
}

// NewErrorHandler devuelve el ErrorHandler de fiber: JSON para la API y una página simple para el painel.
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := classify(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
		}
		if status == fiber.StatusUnauthorized {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		}

		if isPanelPath(c.Path()) {
			c.Status(status)
			if rerr := c.Render("error", fiber.Map{"Title": "Erro", "Status": status, "Message": body.Message}, "layouts/main"); rerr == nil {
				return nil
			}
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return c.SendString("<h1>Erro " + html.EscapeString(body.Code) + "</h1><p>" + html.EscapeString(body.Message) + "</p>")
		}
		return c.Status(status).JSON(body)
	}
}

func isPanelPath(p string) bool {
	return p == "/painel" || strings.HasPrefix(p, "/painel/")
}
