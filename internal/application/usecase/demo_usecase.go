package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/dualsaude-api/internal/application/dto"
	"github.com/jhoicas/dualsaude-api/internal/application/importer"
	"github.com/jhoicas/dualsaude-api/internal/domain/entity"
	"github.com/jhoicas/dualsaude-api/internal/domain/repository"
	"github.com/jhoicas/dualsaude-api/pkg/logger"
)

// Datos fijos de la demostración.
const (
	DemoCompanyName   = "Empresa Demo Dual Saúde"
	DemoCompanyTaxID  = "00.000.000/0001-00"
	DemoEmployeeName  = "Colaborador Demo"
	DemoEmployeeCPF   = "12345678900"
	DemoEmployeeEmail = "colaborador.demo@empresa.com"
	demoMessage       = "Dados de demonstração criados/atualizados com sucesso."
)

// DemoUseCase crea o reactiva la empresa y el funcionario de demostración.
type DemoUseCase struct {
	txRunner importer.ImportTxRunner
	log      *logger.Logger
}

// NewDemoUseCase construye el caso de uso.
func NewDemoUseCase(txRunner importer.ImportTxRunner, log *logger.Logger) *DemoUseCase {
	return &DemoUseCase{txRunner: txRunner, log: log.Component("demo")}
}

// Setup es idempotente: una segunda llamada devuelve los mismos ids.
func (uc *DemoUseCase) Setup(ctx context.Context) (*dto.DemoSetupResponse, error) {
	var company *entity.Company
	var employee *entity.AuthorizedEmployee

	err := uc.txRunner.RunImport(ctx, func(companies repository.CompanyRepository, employees repository.AuthorizedEmployeeRepository) error {
		now := time.Now()
		c, err := companies.GetByName(ctx, DemoCompanyName)
		if err != nil {
			return err
		}
		switch {
		case c == nil:
			c = &entity.Company{
				ID:        uuid.New().String(),
				Name:      DemoCompanyName,
				TaxID:     DemoCompanyTaxID,
				Active:    true,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := companies.Create(ctx, c); err != nil {
				return err
			}
		case !c.Active:
			c.Active = true
			c.UpdatedAt = now
			if err := companies.Update(ctx, c); err != nil {
				return err
			}
		}

		e, err := employees.GetByCompanyAndNationalID(ctx, c.ID, DemoEmployeeCPF)
		if err != nil {
			return err
		}
		switch {
		case e == nil:
			e = &entity.AuthorizedEmployee{
				ID:         uuid.New().String(),
				CompanyID:  c.ID,
				Name:       DemoEmployeeName,
				NationalID: DemoEmployeeCPF,
				Email:      DemoEmployeeEmail,
				Active:     true,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := employees.Create(ctx, e); err != nil {
				return err
			}
		case !e.Active:
			e.Active = true
			e.UpdatedAt = now
			if err := employees.Update(ctx, e); err != nil {
				return err
			}
		}
		company, employee = c, e
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("company_id", company.ID).Msg("demo lista")
	return &dto.DemoSetupResponse{
		Message: demoMessage,
		Company: dto.DemoCompany{ID: company.ID, Name: company.Name},
		Employee: dto.DemoEmployee{
			ID:         employee.ID,
			Name:       employee.Name,
			NationalID: employee.NationalID,
			Email:      employee.Email,
		},
		Instructions: dto.DemoInstructions{
			CompanyName:    company.Name,
			NationalID:     employee.NationalID,
			SuggestedEmail: DemoEmployeeEmail,
		},
	}, nil
}
