package auth

import (
	"context"

	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
)

// RegistrationTxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que el alta del usuario y el vínculo con el funcionario se confirmen juntos o no se confirmen.
type RegistrationTxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		users repository.UserRepository,
		employees repository.AuthorizedEmployeeRepository,
	) error) error
}
