package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/infrastructure/pdf"
)

func TestGenerateReportPDF(t *testing.T) {
	g := pdf.NewMarotoReportGenerator()
	report := &dto.ReportResponse{
		Period:  "2024-01",
		Label:   "01/2024",
		Accrual: dto.TotalsDTO{Revenue: decimal.NewFromInt(100), Expense: decimal.NewFromInt(150), Net: decimal.NewFromInt(-50)},
		Cash:    dto.TotalsDTO{Revenue: decimal.Zero, Expense: decimal.Zero, Net: decimal.Zero},
	}
	entries := []dto.EntryResponse{
		{Kind: entity.KindRevenue, Description: "Mensalidade", Amount: decimal.NewFromInt(100), AccrualDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), Status: entity.StatusPaid},
		{Kind: entity.KindExpense, Description: "Aluguel", Amount: decimal.NewFromInt(150), AccrualDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Status: entity.StatusPending},
	}

	out, err := g.GenerateReportPDF(context.Background(), &entity.Company{Name: "Empresa Demo"}, report, entries)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
