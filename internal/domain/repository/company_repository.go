package repository

import (
	"context"

	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Los Get devuelven (nil, nil) si no existe.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// GetByName busca por nombre exacto sin distinguir mayúsculas.
	GetByName(ctx context.Context, name string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	// Delete elimina la empresa y en cascada todo lo que cuelga de ella.
	Delete(ctx context.Context, id string) error
}
