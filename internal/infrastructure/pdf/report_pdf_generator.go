// Package pdf genera el reporte financiero mensual en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + CNPJ        │  Relatório + Período        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DRE (competência)             │  Fluxo de caixa             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Descrição | Categoria | Tipo | Status | Valor│
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/internal/application/finance"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/pkg/money"
)

var _ finance.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 105, Blue: 92}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// MarotoReportGenerator implementa finance.ReportPDFGenerator con Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF arma el PDF del mes y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(
	_ context.Context,
	company *entity.Company,
	report *dto.ReportResponse,
	entries []dto.EntryResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório financeiro "+report.Label, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(entries) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(text.New("Nenhum lançamento no período.", props.Text{
			Size: 8, Top: 2, Color: colorGray, Align: align.Center,
		}))))
	}
	for _, e := range entries {
		m.AddRows(entryRow(e))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(company *entity.Company, report *dto.ReportResponse) core.Row {
	cnpj := company.TaxID
	if cnpj == "" {
		cnpj = "-"
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("CNPJ: "+cnpj, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("RELATÓRIO FINANCEIRO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(report.Label, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
		),
	)
}

// totalsRow: DRE a la izquierda, caja a la derecha.
func totalsRow(report *dto.ReportResponse) core.Row {
	block := func(title string, lines [][2]string, net decimal.Decimal, netLabel string) core.Col {
		c := col.New(6).Add(text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}))
		top := 8.0
		for _, l := range lines {
			c.Add(text.New(l[0]+": "+l[1], props.Text{Size: 9, Top: top}))
			top += 5
		}
		netColor := colorPrimary
		if net.IsNegative() {
			netColor = colorRed
		}
		c.Add(text.New(netLabel+": "+money.FormatBRL(net), props.Text{
			Style: fontstyle.Bold, Size: 10, Top: top + 1, Color: netColor,
		}))
		return c
	}

	return row.New(30).Add(
		block("DRE (competência)", [][2]string{
			{"Receitas", money.FormatBRL(report.Accrual.Revenue)},
			{"Despesas", money.FormatBRL(report.Accrual.Expense)},
			{"Pendente", money.FormatBRL(report.Accrual.Pending)},
		}, report.Accrual.Net, "Resultado"),
		block("Fluxo de caixa", [][2]string{
			{"Entradas", money.FormatBRL(report.Cash.Revenue)},
			{"Saídas", money.FormatBRL(report.Cash.Expense)},
		}, report.Cash.Net, "Líquido"),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("Descrição", 4, align.Left),
		h("Categoria", 2, align.Left),
		h("Status", 2, align.Center),
		h("Valor", 2, align.Right),
	)
}

func entryRow(e dto.EntryResponse) core.Row {
	amount := money.FormatBRL(e.Amount)
	amountColor := colorPrimary
	if e.Kind == entity.KindExpense {
		amount = "- " + amount
		amountColor = colorRed
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(e.AccrualDate.Format("02/01/2006"), props.Text{Size: 8, Top: 1})),
		col.New(4).Add(text.New(e.Description, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(e.CategoryName, props.Text{Size: 8, Top: 1, Color: colorGray})),
		col.New(2).Add(text.New(e.Status, props.Text{Size: 8, Top: 1, Align: align.Center})),
		col.New(2).Add(text.New(amount, props.Text{Size: 8, Top: 1, Align: align.Right, Color: amountColor})),
	)
}
