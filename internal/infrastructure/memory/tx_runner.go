package memory

import (
	"context"

	"github.com/jhoicas/dualsaude-api/internal/application/auth"
	"github.com/jhoicas/dualsaude-api/internal/application/importer"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
)

var _ auth.RegistrationTxRunner = (*TxRunner)(nil)
var _ importer.ImportTxRunner = (*TxRunner)(nil)

// TxRunner emula una transacción: serializa los callbacks y, si fn falla, restaura la foto previa.
// Escrituras concurrentes fuera de transacción durante un rollback se pierden.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

func (r *TxRunner) run(ctx context.Context, fn func() error) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.RLock()
	snap := r.store.snapshot()
	r.store.mu.RUnlock()

	if err := fn(); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

// RunRegistration ejecuta el alta de usuario y el vínculo con el funcionario de forma atómica.
func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	users repository.UserRepository,
	employees repository.AuthorizedEmployeeRepository,
) error) error {
	return r.run(ctx, func() error {
		return fn(NewUserRepository(r.store), NewAuthorizedEmployeeRepository(r.store))
	})
}

// RunImport ejecuta la importación de una planilla de forma atómica.
func (r *TxRunner) RunImport(ctx context.Context, fn func(
	companies repository.CompanyRepository,
	employees repository.AuthorizedEmployeeRepository,
) error) error {
	return r.run(ctx, func() error {
		return fn(NewCompanyRepository(r.store), NewAuthorizedEmployeeRepository(r.store))
	})
}
