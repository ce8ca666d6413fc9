package finance

import (
	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
)

func toCategoryResponse(c *entity.FinanceCategory) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name, Kind: c.Kind, Active: c.Active}
}

// ToEntryResponse convierte un lanzamiento a su salida JSON/vista.
func ToEntryResponse(e *entity.FinanceEntry) dto.EntryResponse {
	return dto.EntryResponse{
		ID:            e.ID,
		Kind:          e.Kind,
		CategoryID:    e.CategoryID,
		CategoryName:  e.CategoryName,
		Description:   e.Description,
		Notes:         e.Notes,
		Amount:        e.Amount,
		AccrualDate:   e.AccrualDate,
		DueDate:       e.DueDate,
		PaymentDate:   e.PaymentDate,
		Status:        e.Status,
		PaymentMethod: e.PaymentMethod,
	}
}

func toEntryResponses(list []*entity.FinanceEntry) []dto.EntryResponse {
	out := make([]dto.EntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, ToEntryResponse(e))
	}
	return out
}

func toDestinationResponse(d *entity.PaymentDestination) dto.PaymentDestinationResponse {
	return dto.PaymentDestinationResponse{
		ID:          d.ID,
		Name:        d.Name,
		ServiceType: d.ServiceType,
		Method:      d.Method,
		PixKey:      d.PixKey,
		Bank:        d.Bank,
		Branch:      d.Branch,
		Account:     d.Account,
		AccountType: d.AccountType,
		Active:      d.Active,
	}
}

// toTotals calcula el saldo; el pendiente solo viene informado en competencia.
func toTotals(t repository.PeriodTotals) dto.TotalsDTO {
	return dto.TotalsDTO{
		Revenue: t.Revenue,
		Expense: t.Expense,
		Pending: t.Pending,
		Net:     t.Revenue.Sub(t.Expense),
	}
}
