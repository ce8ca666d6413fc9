package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dualsaude-api/internal/application/usecase"
)

// DemoHandler expone el setup de demostración.
type DemoHandler struct {
	uc *usecase.DemoUseCase
}

func NewDemoHandler(uc *usecase.DemoUseCase) *DemoHandler {
	return &DemoHandler{uc: uc}
}

// Setup godoc
// @Summary      Criar dados de demonstração (idempotente)
// @Tags         demo
// @Produce      json
// @Success      200  {object}  dto.DemoSetupResponse
// @Router       /api/setup-demo [post]
func (h *DemoHandler) Setup(c *fiber.Ctx) error {
	out, err := h.uc.Setup(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}
