package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
)

var _ repository.FinanceReportRepository = (*FinanceReportRepo)(nil)

// FinanceReportRepo consultas agregadas de solo lectura para dashboard y reportes.
type FinanceReportRepo struct {
	q Querier
}

func NewFinanceReportRepository(q Querier) *FinanceReportRepo {
	return &FinanceReportRepo{q: q}
}

// AccrualTotals régimen de competencia: todo lo lanzado en el mes, pagado o no.
func (r *FinanceReportRepo) AccrualTotals(ctx context.Context, companyID string, start, end time.Time) (repository.PeriodTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(valor) FILTER (WHERE tipo = 'RECEITA'), 0),
			COALESCE(SUM(valor) FILTER (WHERE tipo = 'DESPESA'), 0),
			COALESCE(SUM(valor) FILTER (WHERE status = 'PENDENTE'), 0)
		FROM financeiro_lancamentos
		WHERE empresa_id = $1 AND data_lancamento >= $2 AND data_lancamento <= $3`
	var t repository.PeriodTotals
	if err := r.q.QueryRow(ctx, query, companyID, start, end).Scan(&t.Revenue, &t.Expense, &t.Pending); err != nil {
		return repository.PeriodTotals{}, fmt.Errorf("totais competencia: %w", err)
	}
	return t, nil
}

// CashTotals régimen de caja: solo lo PAGO con fecha de pago dentro del mes.
func (r *FinanceReportRepo) CashTotals(ctx context.Context, companyID string, start, end time.Time) (repository.PeriodTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(valor) FILTER (WHERE tipo = 'RECEITA'), 0),
			COALESCE(SUM(valor) FILTER (WHERE tipo = 'DESPESA'), 0)
		FROM financeiro_lancamentos
		WHERE empresa_id = $1 AND status = 'PAGO'
		  AND data_pagamento IS NOT NULL AND data_pagamento >= $2 AND data_pagamento <= $3`
	var t repository.PeriodTotals
	if err := r.q.QueryRow(ctx, query, companyID, start, end).Scan(&t.Revenue, &t.Expense); err != nil {
		return repository.PeriodTotals{}, fmt.Errorf("totais caixa: %w", err)
	}
	return t, nil
}
