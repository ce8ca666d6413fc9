package repository

import (
	"context"
	"time"

	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
)

// EntryFilter filtros AND de la lista de lanzamientos. Start/End acotan la fecha de competencia (inclusive).
type EntryFilter struct {
	CompanyID  string
	Start      time.Time
	End        time.Time
	Status     string
	Kind       string
	CategoryID string
	Limit      int // 0 = sin límite
}

// FinanceEntryRepository persistencia de lanzamientos.
type FinanceEntryRepository interface {
	Create(ctx context.Context, entry *entity.FinanceEntry) error
	GetByID(ctx context.Context, companyID, id string) (*entity.FinanceEntry, error)
	// List ordena por fecha de competencia descendente y luego por creación descendente.
	List(ctx context.Context, f EntryFilter) ([]*entity.FinanceEntry, error)
	Update(ctx context.Context, entry *entity.FinanceEntry) error
	Delete(ctx context.Context, companyID, id string) error
}
