package finance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/internal/application/validation"
	"github.com/jhoicas/dualsaude-api/internal/domain"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/domain/finance"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
)

// EntryUseCase lanzamientos: lista del mes, alta, baja y marcar como pago.
type EntryUseCase struct {
	entries    repository.FinanceEntryRepository
	categories repository.FinanceCategoryRepository
	now        func() time.Time
}

// NewEntryUseCase construye el caso de uso.
func NewEntryUseCase(entries repository.FinanceEntryRepository, categories repository.FinanceCategoryRepository) *EntryUseCase {
	return &EntryUseCase{entries: entries, categories: categories, now: time.Now}
}

// List devuelve los lanzamientos del mes (por competencia). Filtros con valores desconocidos se ignoran.
func (uc *EntryUseCase) List(ctx context.Context, companyID string, q dto.EntryListQuery) (*dto.EntryListResponse, error) {
	period := finance.ParsePeriod(q.YM, uc.now())
	start, end := period.Bounds()
	f := repository.EntryFilter{
		CompanyID:  companyID,
		Start:      start,
		End:        end,
	}
	if id := strings.TrimSpace(q.CategoryID); entity.ValidID(id) {
		f.CategoryID = id
	}
	if s := strings.ToUpper(strings.TrimSpace(q.Status)); s == entity.StatusPending || s == entity.StatusPaid {
		f.Status = s
	}
	if k := strings.ToUpper(strings.TrimSpace(q.Kind)); entity.ValidKind(k) {
		f.Kind = k
	}

	list, err := uc.entries.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &dto.EntryListResponse{Period: period.String(), Items: toEntryResponses(list)}, nil
}

// Create registra un lanzamiento. Sin status queda PENDENTE; PAGO sin fecha de pago toma la de hoy.
func (uc *EntryUseCase) Create(ctx context.Context, companyID string, in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	in.Kind = strings.ToUpper(strings.TrimSpace(in.Kind))
	in.Status = strings.ToUpper(strings.TrimSpace(in.Status))
	in.Description = strings.TrimSpace(in.Description)
	in.Notes = strings.TrimSpace(in.Notes)
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	in.CategoryID = strings.TrimSpace(in.CategoryID)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if !entity.ValidKind(in.Kind) {
		return nil, fmt.Errorf("%w: tipo deve ser RECEITA ou DESPESA", domain.ErrInvalidInput)
	}
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: valor não pode ser negativo", domain.ErrInvalidInput)
	}
	switch in.Status {
	case "":
		in.Status = entity.StatusPending
	case entity.StatusPending, entity.StatusPaid:
	default:
		return nil, fmt.Errorf("%w: status deve ser PENDENTE ou PAGO", domain.ErrInvalidInput)
	}

	accrual, err := parseDate(in.AccrualDate)
	if err != nil || accrual == nil {
		return nil, fmt.Errorf("%w: data_lancamento inválida", domain.ErrInvalidInput)
	}
	due, err := parseDate(in.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: data_vencimento inválida", domain.ErrInvalidInput)
	}
	paid, err := parseDate(in.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: data_pagamento inválida", domain.ErrInvalidInput)
	}

	var categoryID *string
	categoryName := ""
	if in.CategoryID != "" {
		if !entity.ValidID(in.CategoryID) {
			return nil, fmt.Errorf("%w: categoria inexistente", domain.ErrInvalidInput)
		}
		cat, err := uc.categories.GetByID(ctx, companyID, in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, fmt.Errorf("%w: categoria inexistente", domain.ErrInvalidInput)
		}
		categoryID = &cat.ID
		categoryName = cat.Name
	}

	now := uc.now()
	e := &entity.FinanceEntry{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Kind:          in.Kind,
		CategoryID:    categoryID,
		CategoryName:  categoryName,
		Description:   in.Description,
		Notes:         in.Notes,
		Amount:        in.Amount.Round(2),
		AccrualDate:   *accrual,
		DueDate:       due,
		PaymentDate:   paid,
		Status:        in.Status,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
	}
	e.ApplyStatusRules(now)

	if err := uc.entries.Create(ctx, e); err != nil {
		return nil, err
	}
	out := ToEntryResponse(e)
	return &out, nil
}

// MarkPaid pasa el lanzamiento a PAGO; si no tenía fecha de pago usa hoy.
func (uc *EntryUseCase) MarkPaid(ctx context.Context, companyID, id string) (*dto.EntryResponse, error) {
	if !entity.ValidID(id) {
		return nil, domain.ErrNotFound
	}
	e, err := uc.entries.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	e.MarkPaid(uc.now())
	if err := uc.entries.Update(ctx, e); err != nil {
		return nil, err
	}
	out := ToEntryResponse(e)
	return &out, nil
}

// Delete borra el lanzamiento de la empresa. Fuera de alcance es ErrNotFound.
func (uc *EntryUseCase) Delete(ctx context.Context, companyID, id string) error {
	if !entity.ValidID(id) {
		return domain.ErrNotFound
	}
	return uc.entries.Delete(ctx, companyID, id)
}

// parseDate acepta vacío (nil) o YYYY-MM-DD.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
