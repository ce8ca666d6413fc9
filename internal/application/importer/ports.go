package importer

import (
	"context"

	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
)

// ImportTxRunner ejecuta la importación completa de una planilla en una sola transacción.
type ImportTxRunner interface {
	RunImport(ctx context.Context, fn func(
		companies repository.CompanyRepository,
		employees repository.AuthorizedEmployeeRepository,
	) error) error
}

// SheetReader extrae las filas de la primera hoja de una planilla.
type SheetReader interface {
	ReadRows(data []byte) ([][]string, error)
}
