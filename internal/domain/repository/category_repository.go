package repository

import (
	"context"

	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
)

// FinanceCategoryRepository categorías de lanzamientos, siempre acotadas por empresa.
type FinanceCategoryRepository interface {
	Create(ctx context.Context, cat *entity.FinanceCategory) error
	GetByID(ctx context.Context, companyID, id string) (*entity.FinanceCategory, error)
	// GetByName busca por (empresa, tipo, nombre) sin distinguir mayúsculas.
	GetByName(ctx context.Context, companyID, kind, name string) (*entity.FinanceCategory, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.FinanceCategory, error)
	// Delete deja categoria_id en NULL en los lanzamientos asociados.
	Delete(ctx context.Context, companyID, id string) error
}
