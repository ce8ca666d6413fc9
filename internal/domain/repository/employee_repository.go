package repository

import (
	"context"

	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
)

// AuthorizedEmployeeRepository persistencia de la lista de CPFs autorizados por empresa.
type AuthorizedEmployeeRepository interface {
	Create(ctx context.Context, emp *entity.AuthorizedEmployee) error
	GetByCompanyAndNationalID(ctx context.Context, companyID, nationalID string) (*entity.AuthorizedEmployee, error)
	// GetActiveByCompanyAndNationalID igual que el anterior pero ignora los inactivos.
	GetActiveByCompanyAndNationalID(ctx context.Context, companyID, nationalID string) (*entity.AuthorizedEmployee, error)
	Update(ctx context.Context, emp *entity.AuthorizedEmployee) error
	// LinkUser vincula el usuario solo si el registro sigue libre; si no toca filas devuelve domain.ErrAlreadyClaimed.
	LinkUser(ctx context.Context, employeeID, userID string) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.AuthorizedEmployee, error)
}
