package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/internal/application/finance"
)

// FinanceHandler API financiera con bearer token; todo se acota a la empresa del usuario.
type FinanceHandler struct {
	entries *finance.EntryUseCase
	reports *finance.ReportUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(entries *finance.EntryUseCase, reports *finance.ReportUseCase) *FinanceHandler {
	return &FinanceHandler{entries: entries, reports: reports}
}

// Report godoc
// @Summary      Relatório mensal (competência e caixa)
// @Tags         financeiro
// @Produce      json
// @Security     BearerAuth
// @Param        ym  query  string  false  "mês YYYY-MM (padrão: mês atual)"
// @Success      200  {object}  dto.ReportResponse
// @Router       /api/financeiro/relatorio [get]
func (h *FinanceHandler) Report(c *fiber.Ctx) error {
	out, err := h.reports.Report(c.UserContext(), GetCompanyID(c), c.Query("ym"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListEntries godoc
// @Summary      Lançamentos do mês
// @Tags         financeiro
// @Produce      json
// @Security     BearerAuth
// @Param        ym            query  string  false  "mês YYYY-MM"
// @Param        status        query  string  false  "PENDENTE | PAGO"
// @Param        tipo          query  string  false  "RECEITA | DESPESA"
// @Param        categoria_id  query  string  false  "categoria"
// @Success      200  {object}  dto.EntryListResponse
// @Router       /api/financeiro/lancamentos [get]
func (h *FinanceHandler) ListEntries(c *fiber.Ctx) error {
	var q dto.EntryListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	out, err := h.entries.List(c.UserContext(), GetCompanyID(c), q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CreateEntry godoc
// @Summary      Criar lançamento
// @Tags         financeiro
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateEntryRequest  true  "lançamento"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/financeiro/lancamentos [post]
func (h *FinanceHandler) CreateEntry(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.entries.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MarkPaid godoc
// @Summary      Marcar lançamento como pago
// @Tags         financeiro
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do lançamento"
// @Success      200  {object}  dto.EntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/financeiro/lancamentos/{id}/pagar [post]
func (h *FinanceHandler) MarkPaid(c *fiber.Ctx) error {
	out, err := h.entries.MarkPaid(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteEntry godoc
// @Summary      Excluir lançamento
// @Tags         financeiro
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do lançamento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/financeiro/lancamentos/{id} [delete]
func (h *FinanceHandler) DeleteEntry(c *fiber.Ctx) error {
	if err := h.entries.Delete(c.UserContext(), GetCompanyID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
