package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodTotals totales crudos de un período. Lo produce la DB; el use case calcula el neto.
type PeriodTotals struct {
	Revenue decimal.Decimal
	Expense decimal.Decimal
	Pending decimal.Decimal // solo régimen de competencia
}

// FinanceReportRepository consultas de lectura para el dashboard y los reportes.
// Usa COALESCE para devolver cero si no hay lanzamientos en el período.
type FinanceReportRepository interface {
	// AccrualTotals suma por fecha de competencia dentro de [start, end].
	AccrualTotals(ctx context.Context, companyID string, start, end time.Time) (PeriodTotals, error)
	// CashTotals suma lanzamientos PAGO cuya fecha de pago cae dentro de [start, end].
	CashTotals(ctx context.Context, companyID string, start, end time.Time) (PeriodTotals, error)
}
