// Package storage resuelve el driver configurado (postgres o memory) y expone los repositorios.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/dualsaude-api/internal/application/auth"
	"github.com/jhoicas/dualsaude-api/internal/application/importer"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
	"github.com/jhoicas/dualsaude-api/internal/infrastructure/memory"
	"github.com/jhoicas/dualsaude-api/internal/infrastructure/postgres"
	"github.com/jhoicas/dualsaude-api/pkg/config"
	"github.com/jhoicas/dualsaude-api/pkg/logger"
)

// TxRunner transacciones de registro e importación.
type TxRunner interface {
	auth.RegistrationTxRunner
	importer.ImportTxRunner
}

// Repositories repositorios del driver activo.
type Repositories struct {
	Companies    repository.CompanyRepository
	Employees    repository.AuthorizedEmployeeRepository
	Users        repository.UserRepository
	Categories   repository.FinanceCategoryRepository
	Entries      repository.FinanceEntryRepository
	Reports      repository.FinanceReportRepository
	Destinations repository.PaymentDestinationRepository
	TxRunner     TxRunner

	close func()
}

// Close libera el pool si lo hay.
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// Open abre el almacenamiento según cfg.App.StorageDriver.
// Con postgres aplica las migraciones embebidas si DB_AUTO_MIGRATE está activo.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Repositories, error) {
	log = log.Component("storage")
	switch cfg.App.StorageDriver {
	case config.StorageMemory:
		log.Warn().Msg("driver memory: los datos se pierden al reiniciar")
		return Memory(), nil
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.DB.AutoMigrate {
			applied, err := postgres.Migrate(pool)
			if err != nil {
				pool.Close()
				return nil, err
			}
			log.Info().Bool("applied", applied).Msg("migraciones")
		}
		return &Repositories{
			Companies:    postgres.NewCompanyRepository(pool),
			Employees:    postgres.NewAuthorizedEmployeeRepository(pool),
			Users:        postgres.NewUserRepository(pool),
			Categories:   postgres.NewFinanceCategoryRepository(pool),
			Entries:      postgres.NewFinanceEntryRepository(pool),
			Reports:      postgres.NewFinanceReportRepository(pool),
			Destinations: postgres.NewPaymentDestinationRepository(pool),
			TxRunner:     postgres.NewTxRunner(pool),
			close:        pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido %q", cfg.App.StorageDriver)
	}
}

// Memory devuelve repositorios en memoria sobre un store nuevo.
func Memory() *Repositories {
	s := memory.NewStore()
	return &Repositories{
		Companies:    memory.NewCompanyRepository(s),
		Employees:    memory.NewAuthorizedEmployeeRepository(s),
		Users:        memory.NewUserRepository(s),
		Categories:   memory.NewFinanceCategoryRepository(s),
		Entries:      memory.NewFinanceEntryRepository(s),
		Reports:      memory.NewFinanceReportRepository(s),
		Destinations: memory.NewPaymentDestinationRepository(s),
		TxRunner:     memory.NewTxRunner(s),
	}
}
