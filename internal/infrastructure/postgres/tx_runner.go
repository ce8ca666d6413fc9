package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/dualsaude-api/internal/application/auth"
	"github.com/jhoicas/dualsaude-api/internal/application/importer"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
)

var _ auth.RegistrationTxRunner = (*TxRunner)(nil)
var _ importer.ImportTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia la transacción, ejecuta fn y hace Commit; cualquier error deja el Rollback diferido.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRegistration alta de usuario + vínculo del funcionario en la misma transacción.
func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	users repository.UserRepository,
	employees repository.AuthorizedEmployeeRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewUserRepository(tx), NewAuthorizedEmployeeRepository(tx))
	})
}

// RunImport importación completa de una planilla en una transacción.
func (r *TxRunner) RunImport(ctx context.Context, fn func(
	companies repository.CompanyRepository,
	employees repository.AuthorizedEmployeeRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewCompanyRepository(tx), NewAuthorizedEmployeeRepository(tx))
	})
}
