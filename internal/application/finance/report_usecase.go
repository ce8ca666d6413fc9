package finance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/finance"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
)

// dashboardRecent cantidad de lanzamientos recientes del dashboard.
const dashboardRecent = 8

// ReportUseCase dashboard y reportes mensuales (competencia y caja).
type ReportUseCase struct {
	reports   repository.FinanceReportRepository
	entries   repository.FinanceEntryRepository
	companies repository.CompanyRepository
	pdf       ReportPDFGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se exporta.
func NewReportUseCase(
	reports repository.FinanceReportRepository,
	entries repository.FinanceEntryRepository,
	companies repository.CompanyRepository,
	pdf ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		reports:   reports,
		entries:   entries,
		companies: companies,
		pdf:       pdf,
		now:       time.Now,
	}
}

// Dashboard totales de competencia del mes y los últimos lanzamientos.
func (uc *ReportUseCase) Dashboard(ctx context.Context, companyID, ym string) (*dto.DashboardResponse, error) {
	period := finance.ParsePeriod(ym, uc.now())
	start, end := period.Bounds()

	totals, err := uc.reports.AccrualTotals(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}
	recent, err := uc.entries.List(ctx, repository.EntryFilter{
		CompanyID: companyID,
		Start:     start,
		End:       end,
		Limit:     dashboardRecent,
	})
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Period: period.String(),
		Label:  period.Label(),
		Totals: toTotals(totals),
		Recent: toEntryResponses(recent),
	}, nil
}

// Report DRE por competencia y flujo de caja (PAGO con fecha de pago en el mes).
func (uc *ReportUseCase) Report(ctx context.Context, companyID, ym string) (*dto.ReportResponse, error) {
	period := finance.ParsePeriod(ym, uc.now())
	start, end := period.Bounds()

	accrual, err := uc.reports.AccrualTotals(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}
	cash, err := uc.reports.CashTotals(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}
	cash.Pending = decimal.Zero
	return &dto.ReportResponse{
		Period:  period.String(),
		Label:   period.Label(),
		Accrual: toTotals(accrual),
		Cash:    toTotals(cash),
	}, nil
}

// ReportPDF genera el PDF del reporte con los lanzamientos del mes.
func (uc *ReportUseCase) ReportPDF(ctx context.Context, companyID, ym string) ([]byte, *dto.ReportResponse, error) {
	if uc.pdf == nil {
		return nil, nil, domain.ErrNotFound
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	if company == nil {
		return nil, nil, domain.ErrCompanyNotFound
	}
	report, err := uc.Report(ctx, companyID, ym)
	if err != nil {
		return nil, nil, err
	}
	start, end := finance.ParsePeriod(report.Period, uc.now()).Bounds()
	list, err := uc.entries.List(ctx, repository.EntryFilter{CompanyID: companyID, Start: start, End: end})
	if err != nil {
		return nil, nil, err
	}
	pdf, err := uc.pdf.GenerateReportPDF(ctx, company, report, toEntryResponses(list))
	if err != nil {
		return nil, nil, err
	}
	return pdf, report, nil
}
