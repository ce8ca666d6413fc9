package http

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/internal/application/finance"
	"github.com/jhoicas/dualsaude-api/internal/application/importer"
	"github.com/jhoicas/dualsaude-api/internal/domain"
	domainfinance "github.com/jhoicas/dualsaude-api/internal/domain/finance"
	"github.com/jhoicas/dualsaude-api/pkg/money"
)

const panelLayout = "layouts/main"

// PanelHandler páginas HTML del painel. Las mutaciones siempre terminan en redirect 303.
type PanelHandler struct {
	categories      *finance.CategoryUseCase
	entries         *finance.EntryUseCase
	reports         *finance.ReportUseCase
	destinations    *finance.PaymentDestinationUseCase
	importer        *importer.ImportUseCase
	paymentsEnabled bool
	maxUploadBytes  int64
}

// PanelDeps dependencias del painel.
type PanelDeps struct {
	Categories      *finance.CategoryUseCase
	Entries         *finance.EntryUseCase
	Reports         *finance.ReportUseCase
	Destinations    *finance.PaymentDestinationUseCase
	Importer        *importer.ImportUseCase
	PaymentsEnabled bool
	MaxUploadMB     int
}

// NewPanelHandler construye el handler del painel.
func NewPanelHandler(d PanelDeps) *PanelHandler {
	return &PanelHandler{
		categories:      d.Categories,
		entries:         d.Entries,
		reports:         d.Reports,
		destinations:    d.Destinations,
		importer:        d.Importer,
		paymentsEnabled: d.PaymentsEnabled,
		maxUploadBytes:  int64(d.MaxUploadMB) << 20,
	}
}

// render agrega los datos comunes del layout.
func (h *PanelHandler) render(c *fiber.Ctx, view, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["User"] = GetPanelUser(c)
	data["PaymentsEnabled"] = h.paymentsEnabled
	return c.Render(view, data, panelLayout)
}

func (h *PanelHandler) periodNav(ym string) fiber.Map {
	p := domainfinance.ParsePeriod(ym, time.Now())
	return fiber.Map{"YM": p.String(), "Label": p.Label(), "Prev": p.Prev().String(), "Next": p.Next().String()}
}

func redirect(c *fiber.Ctx, path string, ym string) error {
	if ym != "" {
		path += "?ym=" + url.QueryEscape(ym)
	}
	return c.Redirect(path, fiber.StatusSeeOther)
}

// Home GET /painel
func (h *PanelHandler) Home(c *fiber.Ctx) error {
	return h.render(c, "home", "Painel", nil)
}

// ─── Financeiro ───────────────────────────────────────────────────────────────

// Dashboard GET /painel/financeiro?ym=
func (h *PanelHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.reports.Dashboard(c.UserContext(), GetCompanyID(c), c.Query("ym"))
	if err != nil {
		return err
	}
	return h.render(c, "financeiro/dashboard", "Financeiro", fiber.Map{
		"Dashboard": d,
		"Nav":       h.periodNav(d.Period),
	})
}

// Categories GET /painel/financeiro/categorias
func (h *PanelHandler) Categories(c *fiber.Ctx) error {
	list, err := h.categories.List(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return err
	}
	return h.render(c, "financeiro/categorias", "Categorias", fiber.Map{"Categories": list})
}

// CreateCategory POST /painel/financeiro/categorias/criar. Tipo inválido o duplicado no hace nada.
func (h *PanelHandler) CreateCategory(c *fiber.Ctx) error {
	_, err := h.categories.Create(c.UserContext(), GetCompanyID(c), dto.CreateCategoryRequest{
		Name: c.FormValue("nome"),
		Kind: c.FormValue("tipo"),
	})
	if err != nil && !errors.Is(err, domain.ErrInvalidInput) {
		return err
	}
	return c.Redirect("/painel/financeiro/categorias", fiber.StatusSeeOther)
}

// DeleteCategory GET /painel/financeiro/categorias/excluir/:id
func (h *PanelHandler) DeleteCategory(c *fiber.Ctx) error {
	err := h.categories.Delete(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return c.Redirect("/painel/financeiro/categorias", fiber.StatusSeeOther)
}

// Entries GET /painel/financeiro/lancamentos?ym=&status=&tipo=&categoria_id=
func (h *PanelHandler) Entries(c *fiber.Ctx) error {
	var q dto.EntryListQuery
	if err := c.QueryParser(&q); err != nil {
		return err
	}
	companyID := GetCompanyID(c)
	list, err := h.entries.List(c.UserContext(), companyID, q)
	if err != nil {
		return err
	}
	cats, err := h.categories.List(c.UserContext(), companyID)
	if err != nil {
		return err
	}
	return h.render(c, "financeiro/lancamentos", "Lançamentos", fiber.Map{
		"List":       list,
		"Categories": cats,
		"Filter":     q,
		"Nav":        h.periodNav(list.Period),
		"Today":      time.Now().Format(dto.DateLayout),
		"Error":      c.Query("err") == "1",
	})
}

// CreateEntry POST /painel/financeiro/lancamentos/criar. El valor llega en formato BRL ("1.234,56").
func (h *PanelHandler) CreateEntry(c *fiber.Ctx) error {
	ym := c.FormValue("ym")
	in := dto.CreateEntryRequest{
		Kind:          strings.ToUpper(strings.TrimSpace(c.FormValue("tipo"))),
		CategoryID:    c.FormValue("categoria_id"),
		Description:   c.FormValue("descricao"),
		Notes:         c.FormValue("observacao"),
		Amount:        money.ParseBRL(c.FormValue("valor")),
		AccrualDate:   c.FormValue("data_lancamento"),
		DueDate:       c.FormValue("data_vencimento"),
		PaymentDate:   c.FormValue("data_pagamento"),
		Status:        c.FormValue("status"),
		PaymentMethod: c.FormValue("forma_pagamento"),
	}
	out, err := h.entries.Create(c.UserContext(), GetCompanyID(c), in)
	if errors.Is(err, domain.ErrInvalidInput) {
		target := "/painel/financeiro/lancamentos?err=1"
		if ym != "" {
			target += "&ym=" + url.QueryEscape(ym)
		}
		return c.Redirect(target, fiber.StatusSeeOther)
	}
	if err != nil {
		return err
	}
	if ym == "" {
		ym = domainfinance.NewPeriod(out.AccrualDate).String()
	}
	return redirect(c, "/painel/financeiro/lancamentos", ym)
}

// DeleteEntry GET /painel/financeiro/lancamentos/excluir/:id?ym=
func (h *PanelHandler) DeleteEntry(c *fiber.Ctx) error {
	err := h.entries.Delete(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return redirect(c, "/painel/financeiro/lancamentos", c.Query("ym"))
}

// MarkPaid GET /painel/financeiro/lancamentos/marcar-pago/:id?ym=
func (h *PanelHandler) MarkPaid(c *fiber.Ctx) error {
	_, err := h.entries.MarkPaid(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return redirect(c, "/painel/financeiro/lancamentos", c.Query("ym"))
}

// Reports GET /painel/financeiro/relatorios?ym=
func (h *PanelHandler) Reports(c *fiber.Ctx) error {
	r, err := h.reports.Report(c.UserContext(), GetCompanyID(c), c.Query("ym"))
	if err != nil {
		return err
	}
	return h.render(c, "financeiro/relatorios", "Relatórios", fiber.Map{
		"Report": r,
		"Nav":    h.periodNav(r.Period),
	})
}

// ReportPDF GET /painel/financeiro/relatorios/pdf?ym=
func (h *PanelHandler) ReportPDF(c *fiber.Ctx) error {
	data, r, err := h.reports.ReportPDF(c.UserContext(), GetCompanyID(c), c.Query("ym"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="relatorio-%s.pdf"`, r.Period))
	return c.Send(data)
}

// ─── Dados de pagamento ───────────────────────────────────────────────────────

// Destinations GET /painel/financeiro/pagamentos
func (h *PanelHandler) Destinations(c *fiber.Ctx) error {
	list, err := h.destinations.List(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return err
	}
	return h.render(c, "financeiro/pagamentos", "Dados de pagamento", fiber.Map{
		"Destinations": list,
		"Error":        c.Query("err") == "1",
	})
}

// CreateDestination POST /painel/financeiro/pagamentos/criar
func (h *PanelHandler) CreateDestination(c *fiber.Ctx) error {
	var in dto.CreatePaymentDestinationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Redirect("/painel/financeiro/pagamentos?err=1", fiber.StatusSeeOther)
	}
	_, err := h.destinations.Create(c.UserContext(), GetCompanyID(c), in)
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Redirect("/painel/financeiro/pagamentos?err=1", fiber.StatusSeeOther)
	}
	if err != nil {
		return err
	}
	return c.Redirect("/painel/financeiro/pagamentos", fiber.StatusSeeOther)
}

// DeleteDestination GET /painel/financeiro/pagamentos/excluir/:id
func (h *PanelHandler) DeleteDestination(c *fiber.Ctx) error {
	err := h.destinations.Delete(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return c.Redirect("/painel/financeiro/pagamentos", fiber.StatusSeeOther)
}

// ─── Importação ───────────────────────────────────────────────────────────────

// ImportPage GET /painel/importacao
func (h *PanelHandler) ImportPage(c *fiber.Ctx) error {
	return h.render(c, "importacao", "Importação", nil)
}

// Import POST /painel/importacao (multipart, campo "file").
func (h *PanelHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || !strings.EqualFold(filepath.Ext(fh.Filename), ".xlsx") {
		return h.importError(c, "Envie um arquivo .xlsx (Excel).")
	}
	if fh.Size > h.maxUploadBytes {
		return h.importError(c, fmt.Sprintf("Arquivo maior que %d MB.", h.maxUploadBytes>>20))
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	data := make([]byte, fh.Size)
	if _, err := io.ReadFull(f, data); err != nil {
		return err
	}

	res, err := h.importer.ImportXLSX(c.UserContext(), data)
	if errors.Is(err, domain.ErrInvalidInput) {
		msg := err.Error()
		var mc *importer.MissingColumnsError
		if !errors.As(err, &mc) {
			msg = "Não foi possível ler a planilha. Envie um arquivo .xlsx (Excel)."
		}
		return h.importError(c, msg)
	}
	if err != nil {
		return err
	}
	return h.render(c, "importacao", "Importação", fiber.Map{"Result": res})
}

func (h *PanelHandler) importError(c *fiber.Ctx, msg string) error {
	c.Status(fiber.StatusBadRequest)
	return h.render(c, "importacao", "Importação", fiber.Map{"Error": msg})
}
