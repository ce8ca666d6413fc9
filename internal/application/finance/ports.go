package finance

import (
	"context"

	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
)

// ReportPDFGenerator genera el PDF del reporte mensual a partir de datos ya calculados.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, company *entity.Company, report *dto.ReportResponse, entries []dto.EntryResponse) ([]byte, error)
}
